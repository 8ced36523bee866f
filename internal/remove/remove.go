// Package remove implements the delete engine: it classifies each target
// fresh, clears protective attributes when forced, and invokes the
// appropriate OS delete call. Targets are independent; no failure stops
// the run.
package remove

import (
	"errors"
	"io/fs"
	"iter"
	"os"

	"github.com/harrison/rm/internal/config"
	"github.com/harrison/rm/internal/fileutil"
)

// Reporter receives the user-facing outcome of each target.
type Reporter interface {
	Removed(path string)
	CannotRemove(path, reason string)
}

// Remover deletes targets one at a time according to the run options.
type Remover struct {
	opts config.Options
	rep  Reporter
}

// New creates a Remover with the given options and reporter.
func New(opts config.Options, rep Reporter) *Remover {
	return &Remover{opts: opts, rep: rep}
}

// Run consumes the target sequence exactly once, processing each target to
// completion before the next. There is no rollback and no cross-target
// atomicity; a failed target never blocks the ones after it.
func (r *Remover) Run(targets iter.Seq[string]) {
	for target := range targets {
		r.removeOne(target)
	}
}

func (r *Remover) removeOne(target string) {
	// Lstat so a symlink counts as the link itself, never its destination.
	info, err := os.Lstat(target)
	switch {
	case err != nil:
		if errors.Is(err, fs.ErrNotExist) {
			if !r.opts.Force {
				r.rep.CannotRemove(target, "No such file or directory")
			}
			return
		}
		r.fail(target, err)
	case info.IsDir():
		r.removeDir(target)
	default:
		r.removeFile(target)
	}
}

func (r *Remover) removeFile(target string) {
	if r.opts.Force {
		fileutil.ClearAttributes(target)
	}
	if err := os.Remove(target); err != nil {
		r.fail(target, err)
		return
	}
	if r.opts.Verbose {
		r.rep.Removed(target)
	}
}

func (r *Remover) removeDir(target string) {
	// Force never implies recursion; directories need the explicit opt-in.
	if !r.opts.Recursive {
		r.rep.CannotRemove(target, "Is a directory")
		return
	}
	if r.opts.Force {
		fileutil.ClearTreeAttributes(target)
	}
	if err := os.RemoveAll(target); err != nil {
		r.fail(target, err)
		return
	}
	if r.opts.Verbose {
		r.rep.Removed(target)
	}
}

func (r *Remover) fail(target string, err error) {
	if r.opts.Force {
		return
	}
	r.rep.CannotRemove(target, reason(err))
}

// reason unwraps the system-level message from a path error so reports read
// "cannot remove 'x': permission denied" instead of repeating the path.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
