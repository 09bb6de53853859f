// Package hmm reads the header of profile HMM files produced by HMMER 3
// (hmmbuild). Only the meta data before the model body is parsed; it is
// enough to check what kind of profile a search is about to use.
package hmm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

type Meta struct {
	// The first line of the file, e.g., 'HMMER3/f [3.1b2 | February 2015]'.
	FormatVersion string

	Name string
	Acc  string
	Desc string

	// Number of match states.
	Leng int

	// One of 'amino', 'DNA' or 'RNA'.
	Alph string

	// Number of sequences the profile was built from. Zero if absent.
	NSeq int

	// Set when the 'HMM' line that starts the model body was seen.
	HasModel bool
}

// Nucleotide reports whether the profile is over a DNA or RNA alphabet, which
// is what nhmmer requires of its query.
func (m Meta) Nucleotide() bool {
	switch strings.ToUpper(m.Alph) {
	case "DNA", "RNA":
		return true
	}
	return false
}

// ReadMeta reads the header of an hmm file produced by HMMER 3.
func ReadMeta(r io.Reader) (Meta, error) {
	meta := Meta{}
	seenFormat := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := trim(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !seenFormat {
			if !hasPrefix(line, "HMMER3") {
				return Meta{}, fmt.Errorf("Expected 'HMMER3' format line, "+
					"got '%s'.", line)
			}
			meta.FormatVersion = str(line)
			seenFormat = true
			continue
		}

		var err error
		switch {
		case hasPrefix(line, "NAME"):
			meta.Name = str(line[4:])
		case hasPrefix(line, "ACC"):
			meta.Acc = str(line[3:])
		case hasPrefix(line, "DESC"):
			meta.Desc = str(line[4:])
		case hasPrefix(line, "LENG"):
			meta.Leng, err = strconv.Atoi(str(line[4:]))
		case hasPrefix(line, "ALPH"):
			meta.Alph = str(line[4:])
		case hasPrefix(line, "NSEQ"):
			meta.NSeq, err = strconv.Atoi(str(line[4:]))
		case hasPrefix(line, "HMM"):
			// Catches 'HMM' but not 'HMMER3', which was handled above.
			meta.HasModel = true
			return meta, nil
		}
		if err != nil {
			return Meta{}, fmt.Errorf("Error reading meta data from hmm: %s",
				err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Meta{}, fmt.Errorf("Error reading hmm: %s", err)
	}
	if !seenFormat {
		return Meta{}, fmt.Errorf("Empty hmm file.")
	}
	return meta, nil
}

// ReadMetaFile is ReadMeta for the hmm file at path, which may be
// compressed.
func ReadMetaFile(path string) (Meta, error) {
	f, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return Meta{}, fmt.Errorf("Empty hmm file.")
	}
	if err != nil {
		return Meta{}, err
	}
	defer f.Close()

	return ReadMeta(f)
}

// IsProfile reports whether the file at path looks like an HMMER 3 profile,
// as opposed to an alignment or sequence file (which nhmmer also accepts as
// a query).
func IsProfile(path string) (bool, error) {
	f, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len("HMMER3"))
	n, err := io.ReadFull(f, head)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(head[:n], []byte("HMMER3")), nil
}

func hasPrefix(bs []byte, prefix string) bool {
	return bytes.HasPrefix(bs, []byte(prefix))
}

func trim(bs []byte) []byte {
	return bytes.TrimSpace(bs)
}

func str(bs []byte) string {
	return string(bytes.TrimSpace(bs))
}
