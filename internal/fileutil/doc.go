// Package fileutil provides the filesystem helpers behind rm: wildcard
// expansion of targets against the working directory and best-effort
// clearing of protective file attributes prior to deletion.
package fileutil
