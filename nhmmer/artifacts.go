package nhmmer

import (
	"io"
	"sort"

	"github.com/TuftsBCB/seq"

	"github.com/TuftsBCB/hmmer/fasta"
	"github.com/TuftsBCB/hmmer/tblout"
)

// Artifacts returns the labels of the sequences in the FASTA file seqdb that
// do not appear as a target in the nhmmer hit table at tableOutput. The
// labels are sorted and each appears once.
//
// If the table has no hits, every sequence is an artifact. If the database
// is empty, there are no artifacts.
func Artifacts(tableOutput, seqdb string) ([]string, error) {
	targets, err := tblout.ReadTargetsFile(tableOutput)
	if err != nil {
		return nil, err
	}
	labels, err := fasta.ReadLabelsFile(seqdb)
	if err != nil {
		return nil, err
	}
	return missing(labels, targets), nil
}

// FindArtifacts is Artifacts for a hit table and FASTA input that are
// already open.
func FindArtifacts(table, seqs io.Reader) ([]string, error) {
	targets, err := tblout.ReadTargets(table)
	if err != nil {
		return nil, err
	}
	labels, err := fasta.ReadLabels(seqs)
	if err != nil {
		return nil, err
	}
	return missing(labels, targets), nil
}

// ArtifactSequences reads the FASTA file seqdb and returns the records whose
// label is in artifacts, in database order. When a label is repeated, only
// its first record is returned. Residues are checked (see fasta.Reader.Read).
func ArtifactSequences(artifacts []string, seqdb string) ([]seq.Sequence, error) {
	f, err := fasta.Open(seqdb)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := f.ReadAll()
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]bool, len(artifacts))
	for _, label := range artifacts {
		wanted[label] = true
	}
	seqs := make([]seq.Sequence, 0, len(artifacts))
	for _, s := range all {
		label := fasta.Label(s.Name)
		if !wanted[label] {
			continue
		}
		wanted[label] = false
		seqs = append(seqs, s)
	}
	return seqs, nil
}

func missing(labels []string, targets map[string]bool) []string {
	seen := make(map[string]bool, len(labels))
	artifacts := make([]string, 0)
	for _, label := range labels {
		if targets[label] || seen[label] {
			continue
		}
		seen[label] = true
		artifacts = append(artifacts, label)
	}
	sort.Strings(artifacts)
	return artifacts
}
