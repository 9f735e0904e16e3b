package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrMalformedLine = errors.New("malformed line")

// Load reads a graph file from disk. See Parse for the grammar.
func Load(path string, k float64) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, k)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return g, nil
}

// Parse reads the ASCII graph format:
//
//	#V 4        ; number of vertices, all start as empty houses
//	#V 1 S      ; shelter
//	#V 2 P 3    ; house with 3 people
//	#E 1 2 W5   ; edge of weight 5
//	#D 20       ; deadline
//
// Anything after ';' is a comment.
func Parse(r io.Reader, k float64) (*Graph, error) {
	g := NewGraph(0, k)
	var edges [][]string
	sawCount, sawDeadline := false, false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(stripComment(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		malformed := fmt.Errorf("line %d %q: %w", lineNo, scanner.Text(), ErrMalformedLine)
		switch strings.ToUpper(fields[0]) {
		case "#V":
			switch {
			case len(fields) == 2 && !sawCount:
				n, err := strconv.Atoi(fields[1])
				if err != nil || n < 0 {
					return nil, malformed
				}
				for i := 1; i <= n; i++ {
					g.AddHouse(Tag(i), 0)
				}
				sawCount = true
			case len(fields) == 3 && strings.EqualFold(fields[2], "S"):
				tag, err := parseTag(fields[1])
				if err != nil {
					return nil, malformed
				}
				g.AddShelter(tag)
			case len(fields) == 4 && strings.EqualFold(fields[2], "P"):
				tag, err := parseTag(fields[1])
				if err != nil {
					return nil, malformed
				}
				people, err := strconv.Atoi(fields[3])
				if err != nil || people < 0 {
					return nil, malformed
				}
				g.AddHouse(tag, people)
			default:
				return nil, malformed
			}
		case "#E":
			if len(fields) != 4 {
				return nil, malformed
			}
			// Edges are added once all vertices are known
			edges = append(edges, append(fields[1:], strconv.Itoa(lineNo)))
		case "#D":
			if len(fields) < 2 {
				return nil, malformed
			}
			d, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || d < 0 {
				return nil, malformed
			}
			g.deadline = d
			sawDeadline = true
		default:
			return nil, malformed
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	if !sawDeadline {
		return nil, fmt.Errorf("missing deadline line: %w", ErrMalformedLine)
	}

	for _, e := range edges {
		a, errA := parseTag(e[0])
		b, errB := parseTag(e[1])
		w, errW := strconv.ParseFloat(strings.TrimPrefix(strings.ToUpper(e[2]), "W"), 64)
		if errA != nil || errB != nil || errW != nil {
			return nil, fmt.Errorf("line %s: %w", e[3], ErrMalformedLine)
		}
		if err := g.AddEdge(a, b, w); err != nil {
			return nil, fmt.Errorf("line %s: %w: %w", e[3], ErrMalformedLine, err)
		}
	}
	return g, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, ";"); i >= 0 {
		return line[:i]
	}
	return line
}

func parseTag(s string) (Tag, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("tag must be positive, got %d", n)
	}
	return Tag(n), nil
}
