// Package process runs the external tools a generation run drives (git, rake,
// ruby with sdoc and sdoc-merge).
//
// Every invocation goes through a Runner so that failure handling and
// diagnostics are uniform: a command that cannot be started or exits with a
// non-zero status becomes a fatal process error naming the shell-escaped
// command line, its environment overrides, its working directory and the exit
// status. Commands run to completion one at a time; there is no timeout.
package process
