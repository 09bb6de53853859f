package nhmmer

import (
	"fmt"
	"strings"
)

// A ConfigError is returned when a Config or Options cannot be turned into
// a valid nhmmer command. No process has been started when one is returned.
type ConfigError struct {
	Msg string

	// The offending flags, if any.
	Keys []string
}

func (e *ConfigError) Error() string {
	if len(e.Keys) == 0 {
		return e.Msg + "."
	}
	return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.Keys, " "))
}

// An ExecError is returned when nhmmer could not be started or did not exit
// successfully.
type ExecError struct {
	// The command line that was run.
	Command string

	// The exit status, or -1 if nhmmer did not exit normally.
	Exit int

	// Everything nhmmer wrote to stderr.
	Stderr string

	// Set when the process could not be started or was killed by a signal.
	Err error
}

func (e *ExecError) Error() string {
	reason := fmt.Sprintf("exit status %d", e.Exit)
	if e.Err != nil {
		reason = e.Err.Error()
	}
	msg := fmt.Sprintf("Error running '%s': %s", e.Command, reason)
	if len(e.Stderr) > 0 {
		msg += "\n\n" + e.Stderr
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
