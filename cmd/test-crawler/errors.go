package main

// errExitSilently indicates that the program should exit with the given code
// without printing any additional information. It is meant for commands that
// manage their own error output but still need a non-zero exit code (since
// returning nil from RunE would cause an exit with a zero code).
type errExitSilently struct {
	ExitCode int
}

func (e errExitSilently) Error() string {
	return "<exit silently>"
}
