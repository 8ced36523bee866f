// Package cmd wires the rm pipeline: classify arguments, expand wildcards,
// delete, report.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/rm/internal/config"
	"github.com/harrison/rm/internal/display"
	"github.com/harrison/rm/internal/fileutil"
	"github.com/harrison/rm/internal/remove"
)

const usageText = `Usage: rm [options] <target>...

Remove the named files and directories. Targets containing * or ? are
expanded against the current working directory; a pattern that matches
nothing is handled like an ordinary nonexistent target.

Options:
  -r, -R      remove directories and their contents recursively
  -f          ignore nonexistent targets, clear protective attributes
              (read-only/hidden/system), and suppress errors
  -v          report each removed target
  -?, --help  show this help and exit`

// NewRootCommand creates and returns the root cobra command for rm.
//
// Flag parsing is disabled on the command: rm treats every token it does not
// recognize as a path target, including dash-prefixed ones, so tokens are
// classified by config.Parse instead of a flag set.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "rm [options] <target>...",
		Short:              "Remove files and directories",
		Long:               usageText,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, targets, help := config.Parse(args)
			if help || len(targets) == 0 {
				return cmd.Help()
			}

			rep := display.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			remove.New(opts, rep).Run(fileutil.ExpandTargets(targets))

			// per-target failures deliberately leave the exit status at zero
			return nil
		},
	}

	cmd.SetHelpTemplate(`{{.Long | trimTrailingWhitespaces}}
`)

	return cmd
}
