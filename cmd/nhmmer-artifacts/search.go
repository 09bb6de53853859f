package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TuftsBCB/hmmer/hmm"
	"github.com/TuftsBCB/hmmer/nhmmer"
)

// File names used inside a fresh directory under --workdir.
const (
	workOutput = "nhmmer.out"
	workTable  = "nhmmer.tbl"
)

func newSearchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [flags] profile seqdb",
		Short: "Run nhmmer and optionally report the sequences without a hit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, v, args[0], args[1])
		},
	}
	addSearchFlags(cmd)
	return cmd
}

func newArgsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args [flags] profile seqdb",
		Short: "Print the nhmmer command line without running it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := searchConfig(v, false)
			if err != nil {
				return err
			}
			cmdline, err := conf.CommandLine(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cmdline)
			return nil
		},
	}
	addSearchFlags(cmd)
	return cmd
}

func addSearchFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("exec", nhmmer.Default.Exec, "the nhmmer executable")
	flags.StringP("output", "o", "", "write nhmmer's main output to this file")
	flags.String("tblout", "", "write a table of hits to this file")
	flags.Bool("noali", false, "leave alignments out of the main output")
	flags.Bool("acc", false, "prefer accessions over names in output")
	flags.Float64P("evalue", "E", nhmmer.Default.EValue,
		"report hits with an E-value at or below this threshold")
	flags.Int("cpu", nhmmer.Default.CPUs, "number of nhmmer worker threads")
	flags.Bool("artifacts", false,
		"print the sequences in seqdb without a hit (needs --tblout or --workdir)")
	flags.String("workdir", "",
		"when no output files are given, write them to a new directory here")
	addSequencesFlag(cmd)
}

// searchConfig builds an nhmmer configuration from the layered flags. When
// create is false, a --workdir directory is named but not made.
func searchConfig(v *viper.Viper, create bool) (nhmmer.Config, error) {
	opts := nhmmer.Options{
		nhmmer.FlagNoAlign:    strconv.FormatBool(v.GetBool("noali")),
		nhmmer.FlagAccessions: strconv.FormatBool(v.GetBool("acc")),
		nhmmer.FlagEValue:     v.GetString("evalue"),
		nhmmer.FlagCPU:        v.GetString("cpu"),
	}
	output, table := v.GetString("output"), v.GetString("tblout")
	if workdir := v.GetString("workdir"); len(workdir) > 0 &&
		len(output) == 0 && len(table) == 0 {

		dir := filepath.Join(workdir, uuid.New().String())
		if create {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return nhmmer.Config{}, fmt.Errorf(
					"Could not create work directory: %s", err)
			}
		}
		output = filepath.Join(dir, workOutput)
		table = filepath.Join(dir, workTable)
	}
	if len(output) > 0 {
		opts[nhmmer.FlagOutput] = output
	}
	if len(table) > 0 {
		opts[nhmmer.FlagTableOutput] = table
	}

	conf := nhmmer.Default
	conf.Exec = v.GetString("exec")
	conf.Artifacts = v.GetBool("artifacts")
	conf.Verbose = v.GetBool("verbose")
	return conf.WithOptions(opts)
}

// checkProfile refuses HMMER3 profiles built from protein alignments, which
// nhmmer cannot search with. Anything that isn't a profile is left to nhmmer,
// since it also accepts alignments and sequences as queries.
func checkProfile(path string) (hmm.Meta, error) {
	ok, err := hmm.IsProfile(path)
	if err != nil {
		return hmm.Meta{}, err
	}
	if !ok {
		return hmm.Meta{}, nil
	}
	meta, err := hmm.ReadMetaFile(path)
	if err != nil {
		return hmm.Meta{}, err
	}
	if !meta.Nucleotide() {
		return hmm.Meta{}, fmt.Errorf(
			"Profile '%s' uses the '%s' alphabet, but nhmmer needs a DNA "+
				"or RNA profile.", path, meta.Alph)
	}
	return meta, nil
}

func runSearch(cmd *cobra.Command, v *viper.Viper, profile, seqdb string) error {
	lg := logger(cmd, v)
	conf, err := searchConfig(v, true)
	if err != nil {
		return err
	}
	meta, err := checkProfile(profile)
	if err != nil {
		return err
	}
	if len(meta.Name) > 0 {
		lg.Printf("Searching with profile %s (%s, length %d).",
			meta.Name, meta.Alph, meta.Leng)
	}

	res, err := conf.Run(profile, seqdb)
	if err != nil {
		return err
	}
	for _, name := range []string{nhmmer.PrimaryOutput, nhmmer.TableOutput} {
		if rp := res.Paths[name]; rp.IsWritten {
			lg.Printf("%s: %s", name, rp.Path)
		}
	}

	out := cmd.OutOrStdout()
	if conf.Artifacts {
		lg.Printf("%d sequence(s) without a hit.", len(res.Artifacts))
		return printArtifacts(out, v, res.Artifacts, seqdb)
	}
	if !res.Paths[nhmmer.PrimaryOutput].IsWritten {
		for _, line := range res.Stdout {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
