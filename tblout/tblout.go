package tblout

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shenwei356/xopen"
)

// The number of fixed columns in an nhmmer hit table. Everything after them
// is the free text description of the target.
const numColumns = 15

type Table struct {
	Program    string
	Version    string
	QueryFile  string
	TargetFile string
	Options    string
	Date       string
	Hits       []Hit
}

type Hit struct {
	TargetName string
	TargetAcc  string
	QueryName  string
	QueryAcc   string
	HMMFrom    int
	HMMTo      int
	AliFrom    int
	AliTo      int
	EnvFrom    int
	EnvTo      int
	SeqLen     int
	Strand     string
	EValue     float64
	Score      float64
	Bias       float64
	Desc       string
}

// Targets returns the set of target names with at least one hit.
func (t *Table) Targets() map[string]bool {
	targets := make(map[string]bool, len(t.Hits))
	for _, hit := range t.Hits {
		targets[hit.TargetName] = true
	}
	return targets
}

// Read parses every hit and the run summary in an nhmmer hit table.
func Read(r io.Reader) (*Table, error) {
	table := &Table{Hits: make([]Hit, 0, 10)}

	buf := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := buf.ReadBytes('\n')
		if err == io.EOF && len(line) == 0 {
			break
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("Error reading tblout: %s", err)
		}
		line = trim(line)

		switch {
		case len(line) == 0:
			continue
		case line[0] == '#':
			readMeta(table, line)
			continue
		}

		hit, err := readHit(line)
		if err != nil {
			return nil, fmt.Errorf("Error reading hit on line %d: %s",
				lineno, err)
		}
		table.Hits = append(table.Hits, hit)
	}
	return table, nil
}

// ReadFile is Read for the table at path. Compressed tables are read
// transparently, and an empty file is a table with no hits.
func ReadFile(path string) (*Table, error) {
	f, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return &Table{Hits: make([]Hit, 0)}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// ReadTargets returns the set of target names in an nhmmer hit table. Only
// the first field of each non-comment line is looked at, so this works for
// any table whose first column names the target.
func ReadTargets(r io.Reader) (map[string]bool, error) {
	targets := make(map[string]bool)

	buf := bufio.NewReader(r)
	for {
		line, err := buf.ReadBytes('\n')
		if err == io.EOF && len(line) == 0 {
			break
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("Error reading tblout: %s", err)
		}
		line = trim(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		targets[string(bytes.Fields(line)[0])] = true
	}
	return targets, nil
}

// ReadTargetsFile is ReadTargets for the table at path. An empty file has
// no targets.
func ReadTargetsFile(path string) (map[string]bool, error) {
	f, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTargets(f)
}

func readMeta(table *Table, line []byte) {
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return
	}
	key, val := str(line[1:colon]), str(line[colon+1:])
	switch key {
	case "Program":
		table.Program = val
	case "Version":
		table.Version = val
	case "Query file":
		table.QueryFile = val
	case "Target file":
		table.TargetFile = val
	case "Option settings":
		table.Options = val
	case "Date":
		table.Date = val
	}
}

func readHit(line []byte) (hit Hit, err error) {
	fields := bytes.Fields(line)
	if len(fields) < numColumns {
		return Hit{}, fmt.Errorf("Expected at least %d columns but got %d.",
			numColumns, len(fields))
	}

	hit.TargetName = str(fields[0])
	hit.TargetAcc = str(fields[1])
	hit.QueryName = str(fields[2])
	hit.QueryAcc = str(fields[3])

	ints := []*int{
		&hit.HMMFrom, &hit.HMMTo,
		&hit.AliFrom, &hit.AliTo,
		&hit.EnvFrom, &hit.EnvTo,
		&hit.SeqLen,
	}
	for i, dst := range ints {
		if *dst, err = strconv.Atoi(str(fields[4+i])); err != nil {
			return Hit{}, err
		}
	}

	hit.Strand = str(fields[11])
	if hit.Strand != "+" && hit.Strand != "-" {
		return Hit{}, fmt.Errorf("Invalid strand '%s'.", hit.Strand)
	}

	floats := []*float64{&hit.EValue, &hit.Score, &hit.Bias}
	for i, dst := range floats {
		if *dst, err = readFloat(fields[12+i]); err != nil {
			return Hit{}, err
		}
	}

	// The description may itself contain spaces, so rejoin the rest.
	if len(fields) > numColumns {
		hit.Desc = str(bytes.Join(fields[numColumns:], []byte{' '}))
	}
	return hit, nil
}

func trim(bs []byte) []byte {
	return bytes.TrimSpace(bs)
}

func readFloat(bs []byte) (float64, error) {
	f, err := strconv.ParseFloat(str(bs), 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

func str(bs []byte) string {
	return string(bytes.TrimSpace(bs))
}
