// Package config holds the run configuration for rm and builds it from
// the raw argument list.
package config

// Options represents the flags controlling a single run. It is constructed
// once by Parse and passed by value; nothing mutates it afterwards.
type Options struct {
	// Recursive permits deletion of directories and their contents
	Recursive bool

	// Force suppresses errors and clears protective attributes before deletion
	Force bool

	// Verbose reports each successfully removed target
	Verbose bool
}

// Parse classifies raw command-line tokens into options and path targets.
// Recognized flags are the exact tokens -r, -R, -f, -v, -? and --help; every
// other token is a target in encounter order, whether or not it starts with a
// dash. Duplicate targets are kept as given.
//
// The returned bool reports whether help was requested, in which case
// classification stops and any remaining tokens are ignored.
func Parse(args []string) (Options, []string, bool) {
	var opts Options
	var targets []string

	for _, arg := range args {
		switch arg {
		case "-r", "-R":
			opts.Recursive = true
		case "-f":
			opts.Force = true
		case "-v":
			opts.Verbose = true
		case "-?", "--help":
			return opts, nil, true
		default:
			targets = append(targets, arg)
		}
	}

	return opts, targets, false
}
