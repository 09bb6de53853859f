package nhmmer

import (
	"sort"
	"strconv"
)

// The command line flags supported by this package.
const (
	FlagOutput      = "-o"
	FlagNoAlign     = "--noali"
	FlagTableOutput = "--tblout"
	FlagAccessions  = "--acc"
	FlagEValue      = "-E"
	FlagCPU         = "--cpu"
)

// A Parameter describes one nhmmer command line option.
type Parameter struct {
	Prefix string
	Name   string

	// Separates the flag from its value. Only used by valued parameters.
	Delimiter string

	// Valued parameters take a value. Others are on/off flags.
	Valued bool

	// Set when the value is a file path, which may not be empty.
	IsPath bool

	// The value used when a valued parameter is not given. Parameters with
	// no default are off unless given.
	Default string

	Help string
}

// Parameters is every option this package will pass to nhmmer, in the order
// they appear on the command line.
var Parameters = []Parameter{
	{
		Prefix: "-", Name: "o", Delimiter: " ", Valued: true, IsPath: true,
		Help: "direct output to file, not stdout",
	},
	{
		Prefix: "--", Name: "noali",
		Help: "don't output alignments, so output is smaller",
	},
	{
		Prefix: "--", Name: "tblout", Delimiter: " ", Valued: true,
		IsPath: true,
		Help:   "save parseable table of hits to file",
	},
	{
		Prefix: "--", Name: "acc",
		Help: "prefer accessions over names in output",
	},
	{
		Prefix: "-", Name: "E", Delimiter: " ", Valued: true, Default: "1e-05",
		Help: "report sequences <= this E-value threshold in output",
	},
	{
		Prefix: "--", Name: "cpu", Delimiter: " ", Valued: true, Default: "1",
		Help: "number of parallel CPU workers to use for multithreads",
	},
}

// Flag returns the parameter as it is written on the command line, e.g.,
// '--tblout'.
func (p Parameter) Flag() string {
	return p.Prefix + p.Name
}

// Args returns the command line arguments for this parameter set to value.
// The value is ignored for flags.
func (p Parameter) Args(value string) []string {
	switch {
	case !p.Valued:
		return []string{p.Flag()}
	case p.Delimiter == " ":
		return []string{p.Flag(), value}
	}
	return []string{p.Flag() + p.Delimiter + value}
}

// LookupParameter returns the parameter for a flag such as '-E'.
func LookupParameter(flag string) (Parameter, bool) {
	for _, p := range Parameters {
		if p.Flag() == flag {
			return p, true
		}
	}
	return Parameter{}, false
}

// Options is the loosely typed form of a Config: a map from flag to value.
// Flags such as '--noali' take the value "" or "true" to turn them on and
// "false" to turn them off.
type Options map[string]string

// FromOptions returns Default with opts applied. See Config.WithOptions.
func FromOptions(opts Options) (Config, error) {
	return Default.WithOptions(opts)
}

// WithOptions returns a copy of conf in which every parameter has been reset
// to its default (or turned off, if it has none) and then set from opts.
// Nothing set on conf's parameters carries over; Exec, Artifacts and Verbose
// do.
//
// Any key in opts that is not a supported flag is an error naming every such
// key. The resulting Config is validated.
func (conf Config) WithOptions(opts Options) (Config, error) {
	var unsupported []string
	for flag := range opts {
		if _, ok := LookupParameter(flag); !ok {
			unsupported = append(unsupported, flag)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return Config{}, &ConfigError{
			Msg:  "Unsupported parameter(s) passed when calling nhmmer",
			Keys: unsupported,
		}
	}

	conf.Output = Default.Output
	conf.NoAlign = Default.NoAlign
	conf.TableOutput = Default.TableOutput
	conf.Accessions = Default.Accessions
	conf.EValue = Default.EValue
	conf.CPUs = Default.CPUs
	for _, p := range Parameters {
		value, ok := opts[p.Flag()]
		if !ok {
			continue
		}
		if err := conf.set(p, value); err != nil {
			return Config{}, err
		}
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Options returns every parameter that is on in conf.
func (conf Config) Options() Options {
	opts := Options{
		FlagEValue: strconv.FormatFloat(conf.EValue, 'g', -1, 64),
		FlagCPU:    strconv.Itoa(conf.CPUs),
	}
	if len(conf.Output) > 0 {
		opts[FlagOutput] = conf.Output
	}
	if conf.NoAlign {
		opts[FlagNoAlign] = ""
	}
	if len(conf.TableOutput) > 0 {
		opts[FlagTableOutput] = conf.TableOutput
	}
	if conf.Accessions {
		opts[FlagAccessions] = ""
	}
	return opts
}

func (conf *Config) set(p Parameter, value string) error {
	if p.IsPath && len(value) == 0 {
		return &ConfigError{
			Msg:  "A file path is required for parameter(s)",
			Keys: []string{p.Flag()},
		}
	}

	var err error
	switch p.Flag() {
	case FlagOutput:
		conf.Output = value
	case FlagTableOutput:
		conf.TableOutput = value
	case FlagNoAlign:
		conf.NoAlign, err = parseFlag(value)
	case FlagAccessions:
		conf.Accessions, err = parseFlag(value)
	case FlagEValue:
		conf.EValue, err = strconv.ParseFloat(value, 64)
	case FlagCPU:
		conf.CPUs, err = strconv.Atoi(value)
	}
	if err != nil {
		return &ConfigError{
			Msg:  "Invalid value '" + value + "' for parameter(s)",
			Keys: []string{p.Flag()},
		}
	}
	return nil
}

func parseFlag(value string) (bool, error) {
	if len(value) == 0 {
		return true, nil
	}
	return strconv.ParseBool(value)
}
