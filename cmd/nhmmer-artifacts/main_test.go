package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const testDNAProfile = `HMMER3/f [3.1b2 | February 2015]
NAME  MADE1
ACC   DF0000629.2
LENG  80
ALPH  DNA
NSEQ  1997
HMM          A        C        G        T
//
`

const testAminoProfile = `HMMER3/f [3.1b2 | February 2015]
NAME  fn3
LENG  86
ALPH  amino
HMM          A        C        D        E
//
`

const testTable = `# target name  accession  query name  accession  hmmfrom hmm to alifrom  ali to envfrom  env to  sq len strand   E-value  score  bias  description of target
A  -  MADE1  -  1  80  1  80  1  80  100  +  1.1e-17  64.2  4.1  -
C  -  MADE1  -  1  80  20  99  19  100  100  -  3.2e-08  31.0  0.2  -
# [ok]
`

const testSeqs = `>A first
ACGTACGTAC
>B
GGGCCCAAAT
>C third
TTTTGGGGCC
>D
ACACACACAC
`

// Writes the --tblout file it is given with hits for A and C.
const testStub = `#!/bin/sh
tbl=""
while [ $# -gt 2 ]; do
	case "$1" in
	--tblout) tbl="$2"; shift 2 ;;
	*) shift ;;
	esac
done
if [ -n "$tbl" ]; then
	cat > "$tbl" <<EOF
A  -  MADE1  -  1  80  1  80  1  80  100  +  1.1e-17  64.2  4.1  -
C  -  MADE1  -  1  80  20  99  19  100  100  -  3.2e-08  31.0  0.2  -
EOF
fi
echo "[ok]"
`

func execute(t *testing.T, args ...string) (string, error) {
	var out, errs bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, contents string, mode os.FileMode) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), mode); err != nil {
		t.Fatalf("%s", err)
	}
	return path
}

func TestArtifactsCommand(t *testing.T) {
	dir := t.TempDir()
	table := writeFile(t, dir, "hits.tbl", testTable, 0666)
	seqdb := writeFile(t, dir, "db.fa", testSeqs, 0666)

	out, err := execute(t, "artifacts", table, seqdb)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if out != "B\nD\n" {
		t.Fatalf("Expected artifacts B and D but got\n%s", out)
	}

	out, err = execute(t, "artifacts", "--sequences", table, seqdb)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if out != ">B\nGGGCCCAAAT\n>D\nACACACACAC\n" {
		t.Fatalf("Expected FASTA records for B and D but got\n%s", out)
	}

	if _, err := execute(t, "artifacts", table); err == nil {
		t.Fatalf("Expected an error with a missing argument.")
	}
}

func TestArgsCommand(t *testing.T) {
	out, err := execute(t, "args",
		"--exec", "/opt/nhmmer", "--noali", "--tblout", "hits.tbl",
		"--cpu", "4", "q.hmm", "db.fa")
	if err != nil {
		t.Fatalf("%s", err)
	}
	answer := "/opt/nhmmer --noali --tblout hits.tbl -E 1e-05 --cpu 4 q.hmm db.fa"
	if strings.TrimSpace(out) != answer {
		t.Fatalf("Expected\n%s\nbut got\n%s", answer, out)
	}

	if _, err := execute(t, "args", "--cpu", "0", "q.hmm", "db.fa"); err == nil {
		t.Fatalf("Expected an error for --cpu 0.")
	}
	if _, err := execute(t, "args", "--artifacts", "q.hmm", "db.fa"); err == nil {
		t.Fatalf("Expected an error for --artifacts without --tblout.")
	}
}

func TestArgsCommandLayers(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "conf.yaml", "cpu: 3\nacc: true\n", 0666)

	out, err := execute(t, "args", "--config", config, "q.hmm", "db.fa")
	if err != nil {
		t.Fatalf("%s", err)
	}
	answer := "nhmmer --acc -E 1e-05 --cpu 3 q.hmm db.fa"
	if strings.TrimSpace(out) != answer {
		t.Fatalf("Expected\n%s\nbut got\n%s", answer, out)
	}

	// The environment wins over the config file, and flags over both.
	t.Setenv("NHMMER_CPU", "6")
	out, err = execute(t, "args", "--config", config, "q.hmm", "db.fa")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !strings.Contains(out, "--cpu 6") {
		t.Fatalf("NHMMER_CPU should override the config file: %s", out)
	}
	out, err = execute(t, "args", "--config", config, "--cpu", "2",
		"q.hmm", "db.fa")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !strings.Contains(out, "--cpu 2") {
		t.Fatalf("--cpu should override NHMMER_CPU: %s", out)
	}

	missing := filepath.Join(dir, "missing.yaml")
	if _, err := execute(t, "args", "--config", missing, "q.hmm", "db.fa"); err == nil {
		t.Fatalf("Expected an error for a missing config file.")
	}
}

func TestSearchCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("The nhmmer stub is a shell script.")
	}
	dir := t.TempDir()
	stub := writeFile(t, dir, "nhmmer", testStub, 0755)
	profile := writeFile(t, dir, "MADE1.hmm", testDNAProfile, 0666)
	seqdb := writeFile(t, dir, "db.fa", testSeqs, 0666)
	workdir := filepath.Join(dir, "work")

	out, err := execute(t, "search", "--exec", stub, "--artifacts",
		"--workdir", workdir, profile, seqdb)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if out != "B\nD\n" {
		t.Fatalf("Expected artifacts B and D but got\n%s", out)
	}

	runs, err := os.ReadDir(workdir)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(runs) != 1 || !runs[0].IsDir() {
		t.Fatalf("Expected one run directory in %s but got %v.", workdir, runs)
	}
	table := filepath.Join(workdir, runs[0].Name(), workTable)
	if _, err := os.Stat(table); err != nil {
		t.Fatalf("%s", err)
	}

	// Verbose output stays off stdout, which only lists artifacts.
	out, err = execute(t, "search", "--exec", stub, "--artifacts", "--verbose",
		"--tblout", filepath.Join(dir, "verbose.tbl"), profile, seqdb)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if out != "B\nD\n" {
		t.Fatalf("Expected only artifacts B and D but got\n%s", out)
	}

	// nhmmer's stdout is passed on when there is no output file.
	out, err = execute(t, "search", "--exec", stub, profile, seqdb)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if strings.TrimSpace(out) != "[ok]" {
		t.Fatalf("Expected nhmmer's output but got\n%s", out)
	}
}

func TestSearchCommandAminoProfile(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, dir, "fn3.hmm", testAminoProfile, 0666)
	seqdb := writeFile(t, dir, "db.fa", testSeqs, 0666)

	_, err := execute(t, "search", "--exec", filepath.Join(dir, "nope"),
		profile, seqdb)
	if err == nil || !strings.Contains(err.Error(), "amino") {
		t.Fatalf("Expected a protein profile to be refused but got %v.", err)
	}
}
