package fasta

import (
	"errors"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

// File is a Reader over a file opened with Open. It must be closed.
type File struct {
	*Reader
	fh *xopen.Reader
}

// Open opens the FASTA file at path for reading. Compressed files (gzip,
// xz, zstd or bzip2) are decompressed transparently and the path "-" reads
// from stdin. An empty file reads as zero sequences.
func Open(path string) (*File, error) {
	fh, err := xopen.Ropen(path)
	if errors.Is(err, xopen.ErrNoContent) {
		return &File{Reader: NewReader(strings.NewReader(""))}, nil
	}
	if err != nil {
		return nil, err
	}
	return &File{Reader: NewReader(fh), fh: fh}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	if f.fh == nil {
		return nil
	}
	return f.fh.Close()
}

// Label returns the identifier part of a FASTA header: everything up to the
// first whitespace character. This is the name search tools like nhmmer
// report for a target sequence.
func Label(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ReadLabels reads every sequence in the FASTA input and returns their
// labels in input order. Sequence data is not validated.
func ReadLabels(r io.Reader) ([]string, error) {
	return readLabels(NewReader(r))
}

// ReadLabelsFile is ReadLabels for the FASTA file at path. See Open.
func ReadLabelsFile(path string) ([]string, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLabels(f.Reader)
}

func readLabels(r *Reader) ([]string, error) {
	r.TrustSequences = true

	labels := make([]string, 0, 100)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		labels = append(labels, Label(s.Name))
	}
	return labels, nil
}
