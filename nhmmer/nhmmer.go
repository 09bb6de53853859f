package nhmmer

import (
	"fmt"
	"strings"
)

// Config describes a single nhmmer invocation. A Config is a plain value:
// copy Default, change what you need and call Run. Nothing is remembered
// between runs.
type Config struct {
	// The nhmmer executable, looked up in PATH if it has no slashes.
	Exec string

	// Direct nhmmer's main output to this file instead of stdout (-o).
	Output string

	// Save a parseable table of hits to this file (--tblout).
	TableOutput string

	// Don't output alignments (--noali).
	NoAlign bool

	// Prefer accessions over names in output (--acc).
	Accessions bool

	// Report sequences <= this E-value threshold (-E). Must be positive.
	EValue float64

	// Number of worker threads nhmmer should use (--cpu). Must be positive.
	CPUs int

	// When true, Run reports the sequences with no hit in TableOutput.
	// TableOutput must be set.
	Artifacts bool

	// When true, the command is printed to stderr before it is run and
	// nhmmer's stdout and stderr are copied to the current process' stdout
	// and stderr.
	Verbose bool
}

var Default = Config{
	Exec:        "nhmmer",
	Output:      "",
	TableOutput: "",
	NoAlign:     false,
	Accessions:  false,
	EValue:      1e-5,
	CPUs:        1,
	Artifacts:   false,
	Verbose:     false,
}

// Validate checks conf for errors that can be caught without running
// nhmmer. Any error returned is a *ConfigError.
func (conf Config) Validate() error {
	switch {
	case len(conf.Exec) == 0:
		return &ConfigError{Msg: "No nhmmer executable given"}
	case conf.CPUs <= 0:
		return &ConfigError{
			Msg: fmt.Sprintf("Thread count must be a positive integer, "+
				"got %d", conf.CPUs),
			Keys: []string{FlagCPU},
		}
	case !(conf.EValue > 0):
		return &ConfigError{
			Msg:  fmt.Sprintf("E-value must be positive, got %g", conf.EValue),
			Keys: []string{FlagEValue},
		}
	case conf.Artifacts && len(conf.TableOutput) == 0:
		return &ConfigError{
			Msg: "Artifacts can only be computed from a table of hits, " +
				"so a table output path is required",
			Keys: []string{FlagTableOutput},
		}
	case len(conf.Output) > 0 && conf.Output == conf.TableOutput:
		return &ConfigError{
			Msg:  fmt.Sprintf("Output and table output are both '%s'", conf.Output),
			Keys: []string{FlagOutput, FlagTableOutput},
		}
	}
	return nil
}

// Args returns the arguments nhmmer is run with for the given profile (an
// HMM file, or an alignment or sequence file to build one from) and
// sequence database (a FASTA file). Enabled parameters come first, in the
// order of Parameters, followed by the profile and the database.
//
// No process is started. An error is returned if conf is not valid.
func (conf Config) Args(profile, seqdb string) ([]string, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if len(profile) == 0 || len(seqdb) == 0 {
		return nil, &ConfigError{
			Msg: "Both a profile and a sequence database are required",
		}
	}

	opts := conf.Options()
	args := make([]string, 0, 2*len(Parameters)+2)
	for _, p := range Parameters {
		value, ok := opts[p.Flag()]
		if !ok {
			continue
		}
		args = append(args, p.Args(value)...)
	}
	return append(args, profile, seqdb), nil
}

// CommandLine returns the full command Run would execute, as a single
// string suitable for logging.
func (conf Config) CommandLine(profile, seqdb string) (string, error) {
	args, err := conf.Args(profile, seqdb)
	if err != nil {
		return "", err
	}
	return commandLine(conf.Exec, args), nil
}

func commandLine(exec string, args []string) string {
	return strings.Join(append([]string{exec}, args...), " ")
}
