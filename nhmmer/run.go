package nhmmer

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-cmd/cmd"
)

// Logical names of the files nhmmer may write.
const (
	PrimaryOutput = "PrimaryOutput"
	TableOutput   = "TableOutput"
)

// A ResultPath is a file nhmmer was asked to write.
type ResultPath struct {
	Path string

	// False when the corresponding parameter was off, in which case Path is
	// empty and there is nothing to open.
	IsWritten bool
}

// Open opens the file for reading.
func (rp ResultPath) Open() (*os.File, error) {
	if !rp.IsWritten {
		return nil, fmt.Errorf("Output '%s' was not written by nhmmer.", rp.Path)
	}
	return os.Open(rp.Path)
}

type Result struct {
	// Keyed by PrimaryOutput and TableOutput.
	Paths map[string]ResultPath

	// nhmmer's stdout, one line per element. This is the main output when
	// Config.Output is empty.
	Stdout []string

	// The sequences in the database with no hit, sorted. Only set when
	// Config.Artifacts is true.
	Artifacts []string
}

// Run will execute nhmmer using the given configuration, profile and sequence
// database paths, and wait for it to finish. (See Config.Args.)
//
// When conf.Verbose is set, the command and everything nhmmer printed are
// copied to stderr. Nothing is written to stdout.
//
// A *ConfigError is returned without starting nhmmer if the configuration is
// invalid. An *ExecError is returned if nhmmer fails, carrying whatever it
// wrote to stderr. Errors reading the hit table or database while computing
// artifacts are returned as is.
func (conf Config) Run(profile, seqdb string) (*Result, error) {
	args, err := conf.Args(profile, seqdb)
	if err != nil {
		return nil, err
	}

	c := cmd.NewCmd(conf.Exec, args...)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", commandLine(conf.Exec, args))
	}
	status := <-c.Start()
	if conf.Verbose {
		// Both go to stderr so that stdout is left to the caller.
		relay(os.Stderr, status.Stdout)
		relay(os.Stderr, status.Stderr)
	}
	if status.Error != nil || status.Exit != 0 || !status.Complete {
		return nil, &ExecError{
			Command: commandLine(conf.Exec, args),
			Exit:    status.Exit,
			Stderr:  strings.Join(status.Stderr, "\n"),
			Err:     status.Error,
		}
	}

	res := &Result{
		Paths: map[string]ResultPath{
			PrimaryOutput: {
				Path:      conf.Output,
				IsWritten: len(conf.Output) > 0,
			},
			TableOutput: {
				Path:      conf.TableOutput,
				IsWritten: len(conf.TableOutput) > 0,
			},
		},
		Stdout: status.Stdout,
	}
	if conf.Artifacts {
		res.Artifacts, err = Artifacts(conf.TableOutput, seqdb)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// RunNhmmer searches the sequences in the FASTA file seqdb with profile,
// using Default with opts applied (see FromOptions). When artifacts is true,
// opts must include '--tblout', and the result lists the sequences that
// failed to match the profile.
func RunNhmmer(seqdb, profile string, opts Options, artifacts bool) (*Result, error) {
	conf, err := FromOptions(opts)
	if err != nil {
		return nil, err
	}
	conf.Artifacts = artifacts
	return conf.Run(profile, seqdb)
}

func relay(f *os.File, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(f, line)
	}
}
