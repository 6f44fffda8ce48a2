package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/walk"
)

// WriteWalks writes one walk per line, steps separated by tabs.
func WriteWalks(w io.Writer, m *walk.Matrix) error {
	return writeRows(w, m.Rows, m.Cols, func(buf []byte, i, k int) []byte {
		return strconv.AppendUint(buf, uint64(m.At(i, k)), 10)
	})
}

// WriteWeights writes the edge weights of each walk, one walk per line.
func WriteWeights(w io.Writer, m *walk.WeightMatrix) error {
	return writeRows(w, m.Rows, m.Cols, func(buf []byte, i, k int) []byte {
		return strconv.AppendFloat(buf, float64(m.At(i, k)), 'g', -1, 32)
	})
}

// WriteSimilarity writes the 0/1 transition labels, one walk per line.
func WriteSimilarity(w io.Writer, s *corrupt.Similarity) error {
	return writeRows(w, s.Rows, s.Cols, func(buf []byte, i, k int) []byte {
		return strconv.AppendUint(buf, uint64(s.At(i, k)), 10)
	})
}

// WriteFile creates path and hands a buffered writer to fn.
func WriteFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to write %s", path)
	}
	return errors.Wrapf(f.Close(), "unable to close %s", path)
}

// writeRows emits rows×cols cells through cell, tab-separated.
func writeRows(w io.Writer, rows, cols int, cell func(buf []byte, i, k int) []byte) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16*cols+1)
	for i := 0; i < rows; i++ {
		buf = buf[:0]
		for k := 0; k < cols; k++ {
			if k > 0 {
				buf = append(buf, '\t')
			}
			buf = cell(buf, i, k)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}
