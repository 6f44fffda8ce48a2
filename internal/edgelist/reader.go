// Package edgelist reads graphs from whitespace-separated edge lists and
// writes walk, weight and similarity matrices as TSV.
package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvwalk/csr"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// ReadFile opens path and parses it with Read.
func ReadFile(path string, directed bool) (*csr.EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open edge list %s", path)
	}
	defer f.Close()

	el, err := Read(f, directed)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read edge list %s", path)
	}
	return el, nil
}

// Read parses lines of the form "u v [w]". Node ids are dense
// non-negative integers; the order of the result is max id + 1. Blank
// lines and lines starting with '#' are skipped; w defaults to 1.
// Undirected input mirrors every edge.
func Read(r io.Reader, directed bool) (*csr.EdgeList, error) {
	el := csr.NewEdgeList(0, directed)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Errorf("line %d: expected \"u v [w]\", got %q", lineNo, line)
		}
		u, err := parseNode(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		v, err := parseNode(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		w := 1.0
		if len(parts) == 3 {
			if w, err = strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, errors.Wrapf(err, "line %d: weight", lineNo)
			}
		}
		if err := el.AddEdge(u, v, w); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	return el, nil
}

// parseNode accepts ids that fit the uint32 CSR index space.
func parseNode(s string) (int, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "node id %q", s)
	}
	return int(id), nil
}
