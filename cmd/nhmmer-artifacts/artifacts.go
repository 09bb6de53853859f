package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TuftsBCB/hmmer/fasta"
	"github.com/TuftsBCB/hmmer/nhmmer"
)

func newArtifactsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts [flags] tblout seqdb",
		Short: "Print the sequences in seqdb without a hit in an nhmmer table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := nhmmer.Artifacts(args[0], args[1])
			if err != nil {
				return err
			}
			logger(cmd, v).Printf("%d sequence(s) without a hit.", len(artifacts))
			return printArtifacts(cmd.OutOrStdout(), v, artifacts, args[1])
		},
	}
	addSequencesFlag(cmd)
	return cmd
}

func addSequencesFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("sequences", false,
		"print artifacts as FASTA records from seqdb instead of labels")
}

// printArtifacts writes one label per line, or with --sequences, the
// artifacts' records from seqdb in FASTA format.
func printArtifacts(w io.Writer, v *viper.Viper, artifacts []string, seqdb string) error {
	if !v.GetBool("sequences") {
		for _, label := range artifacts {
			fmt.Fprintln(w, label)
		}
		return nil
	}
	seqs, err := nhmmer.ArtifactSequences(artifacts, seqdb)
	if err != nil {
		return err
	}
	return fasta.NewWriter(w).WriteAll(seqs)
}
