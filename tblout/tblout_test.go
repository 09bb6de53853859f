package tblout

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
)

var testTable = []byte(`# target name        accession  query name           accession  hmmfrom hmm to alifrom  ali to envfrom  env to  sq len strand   E-value  score  bias  description of target
#------------------- ---------- -------------------- ---------- ------- ------- ------- ------- ------- ------- ------- ------ --------- ------ ----- ---------------------
seq1                 -          MADE1                DF0000629.2       1      80      21     100      19     101     120    +     1.1e-17   64.2   4.1  Chr1 reverse strand
contig_17            -          MADE1                DF0000629.2       3      78     131      54     133      52     131    -     4.7e-09   36.0   2.2  -
seq1                 -          MADE1                DF0000629.2      40      80      60     100      58     101     120    +       0.002   14.9   0.3  Chr1 reverse strand
#
# Program:         nhmmer
# Version:         3.1b2 (February 2015)
# Pipeline mode:   SEARCH
# Query file:      MADE1.hmm
# Target file:     db.fa
# Option settings: nhmmer --tblout db.tbl --noali -E 1e-05 --cpu 1 MADE1.hmm db.fa
# Current dir:     /tmp/search
# Date:            Mon Jan  6 10:31:54 2025
# [ok]
`)

var testEmptyTable = []byte(`# target name        accession  query name           accession  hmmfrom hmm to alifrom  ali to envfrom  env to  sq len strand   E-value  score  bias  description of target
#------------------- ---------- -------------------- ---------- ------- ------- ------- ------- ------- ------- ------- ------ --------- ------ ----- ---------------------
#
# Program:         nhmmer
# [ok]
`)

func init() {
	log.SetFlags(0)
}

func ExampleRead() {
	table, err := Read(bytes.NewReader(testTable))
	if err != nil {
		log.Fatalf("%s", err)
	}

	hit := table.Hits[1]
	fmt.Println(hit.TargetName)
	fmt.Println(hit.QueryName)
	fmt.Println(hit.QueryAcc)
	fmt.Println(hit.AliFrom, hit.AliTo)
	fmt.Println(hit.SeqLen)
	fmt.Println(hit.Strand)
	fmt.Println(hit.EValue)
	fmt.Println(hit.Score)
	fmt.Println(hit.Desc)
	fmt.Println(table.Program)
	fmt.Println(table.Version)
	fmt.Println(table.Date)
	// Output:
	// contig_17
	// MADE1
	// DF0000629.2
	// 131 54
	// 131
	// -
	// 4.7e-09
	// 36
	// -
	// nhmmer
	// 3.1b2 (February 2015)
	// Mon Jan  6 10:31:54 2025
}

func TestRead(t *testing.T) {
	table, err := Read(bytes.NewReader(testTable))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(table.Hits) != 3 {
		t.Fatalf("Expected 3 hits but got %d.", len(table.Hits))
	}

	hit := table.Hits[0]
	if hit.Desc != "Chr1 reverse strand" {
		t.Fatalf("Expected description 'Chr1 reverse strand' but got '%s'.",
			hit.Desc)
	}
	if hit.HMMFrom != 1 || hit.HMMTo != 80 || hit.EnvFrom != 19 {
		t.Fatalf("Bad coordinates in hit: %+v", hit)
	}
	if hit.Bias != 4.1 {
		t.Fatalf("Expected bias 4.1 but got %f.", hit.Bias)
	}
	if table.QueryFile != "MADE1.hmm" || table.TargetFile != "db.fa" {
		t.Fatalf("Bad query/target files: '%s', '%s'.",
			table.QueryFile, table.TargetFile)
	}
	answer := "nhmmer --tblout db.tbl --noali -E 1e-05 --cpu 1 MADE1.hmm db.fa"
	if table.Options != answer {
		t.Fatalf("Expected options\n%s\nbut got\n%s", answer, table.Options)
	}

	targets := table.Targets()
	if len(targets) != 2 || !targets["seq1"] || !targets["contig_17"] {
		t.Fatalf("Expected targets {seq1, contig_17} but got %v.", targets)
	}
}

func TestReadEmpty(t *testing.T) {
	table, err := Read(bytes.NewReader(testEmptyTable))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(table.Hits) != 0 {
		t.Fatalf("Expected no hits but got %d.", len(table.Hits))
	}
	if table.Program != "nhmmer" {
		t.Fatalf("Expected program 'nhmmer' but got '%s'.", table.Program)
	}
}

func TestReadErrors(t *testing.T) {
	bad := []string{
		"seq1 - MADE1 - 1 80\n",
		"seq1 - MADE1 - one 80 21 100 19 101 120 + 1e-17 64.2 4.1\n",
		"seq1 - MADE1 - 1 80 21 100 19 101 120 x 1e-17 64.2 4.1\n",
		"seq1 - MADE1 - 1 80 21 100 19 101 120 + small 64.2 4.1\n",
	}
	for _, input := range bad {
		if _, err := Read(bytes.NewBufferString(input)); err == nil {
			t.Fatalf("Expected an error reading\n%s", input)
		}
	}
}

func TestReadTargets(t *testing.T) {
	targets, err := ReadTargets(bytes.NewReader(testTable))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(targets) != 2 || !targets["seq1"] || !targets["contig_17"] {
		t.Fatalf("Expected targets {seq1, contig_17} but got %v.", targets)
	}

	// Only the first field matters, even for rows Read would reject.
	targets, err = ReadTargets(bytes.NewBufferString("# x\nA\n\nC 1 2\n"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(targets) != 2 || !targets["A"] || !targets["C"] {
		t.Fatalf("Expected targets {A, C} but got %v.", targets)
	}

	targets, err = ReadTargets(bytes.NewReader(testEmptyTable))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(targets) != 0 {
		t.Fatalf("Expected no targets but got %v.", targets)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.tbl")
	if err := os.WriteFile(path, testTable, 0666); err != nil {
		t.Fatalf("%s", err)
	}

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(table.Hits) != 3 {
		t.Fatalf("Expected 3 hits but got %d.", len(table.Hits))
	}

	targets, err := ReadTargetsFile(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets but got %d.", len(targets))
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tbl")
	if err := os.WriteFile(path, nil, 0666); err != nil {
		t.Fatalf("%s", err)
	}

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(table.Hits) != 0 {
		t.Fatalf("Expected no hits but got %d.", len(table.Hits))
	}

	targets, err := ReadTargetsFile(path)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(targets) != 0 {
		t.Fatalf("Expected no targets but got %v.", targets)
	}
}
