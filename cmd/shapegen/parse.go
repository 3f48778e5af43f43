package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// cellCount is the number of cells every shape must have.
const cellCount = 4

type cell struct {
	X, Y int
}

type shapeDef struct {
	Name   string
	Cells  []cell
	PivotX int
	PivotY int
}

// parseCatalog reads shape blocks separated by blank lines. Lines starting
// with // are comments.
func parseCatalog(r io.Reader) ([]shapeDef, error) {
	var (
		defs    []shapeDef
		current *shapeDef
		row     int
		lineNo  int
	)

	finish := func() error {
		if current == nil {
			return nil
		}
		if len(current.Cells) != cellCount {
			return errors.Errorf("shape %s has %d cells, want %d", current.Name, len(current.Cells), cellCount)
		}
		defs = append(defs, *current)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		switch {
		case strings.HasPrefix(line, "//"):
			continue
		case line == "":
			if err := finish(); err != nil {
				return nil, err
			}
		case current == nil:
			def, err := parseHeader(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			for _, d := range defs {
				if d.Name == def.Name {
					return nil, errors.Errorf("line %d: shape %s defined twice", lineNo, def.Name)
				}
			}
			current = &def
			row = 0
		default:
			for x, ch := range line {
				switch ch {
				case '#':
					current.Cells = append(current.Cells, cell{X: x, Y: row})
				case '.':
				default:
					return nil, errors.Errorf("line %d: unexpected %q in shape %s", lineNo, ch, current.Name)
				}
			}
			row++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return defs, nil
}

func parseHeader(line string) (shapeDef, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return shapeDef{}, errors.Errorf("want \"<name> <x2>,<y2>\", got %q", line)
	}
	name := fields[0]
	if !strings.Contains("IJLOSTZ", name) || len(name) != 1 {
		return shapeDef{}, errors.Errorf("unknown shape name %q", name)
	}

	x, y, ok := strings.Cut(fields[1], ",")
	if !ok {
		return shapeDef{}, errors.Errorf("pivot %q is not x2,y2", fields[1])
	}
	px, err := strconv.Atoi(x)
	if err != nil {
		return shapeDef{}, errors.Wrap(err, "pivot x")
	}
	py, err := strconv.Atoi(y)
	if err != nil {
		return shapeDef{}, errors.Wrap(err, "pivot y")
	}
	if (px+py)%2 != 0 {
		return shapeDef{}, errors.Errorf("pivot %d,%d does not map cells onto cells", px, py)
	}
	return shapeDef{Name: name, PivotX: px, PivotY: py}, nil
}
