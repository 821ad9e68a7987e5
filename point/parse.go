package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse converts one record "x,y,z" into a Point.
//
// Steps:
//  1. Trim surrounding whitespace and split on ','.
//  2. Require exactly three fields.
//  3. Parse each trimmed field as an unsigned decimal integer ≤ MaxCoordinate.
//
// Any failure returns ErrMalformedRecord wrapped with the record text.
func Parse(record string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(record), ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrMalformedRecord, record, len(fields))
	}

	var coords [3]uint32
	for i, f := range fields {
		// ParseUint rejects signs, so negative values fail here as well.
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil || v > MaxCoordinate {
			return Point{}, fmt.Errorf("%w: %q: field %d", ErrMalformedRecord, record, i+1)
		}
		coords[i] = uint32(v)
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParseAll parses a block of records, one per line. Leading and trailing
// blank lines are ignored; any other line that fails Parse aborts the whole
// parse with an error naming its 1-based line number.
func ParseAll(text string) ([]Point, error) {
	// Count lines consumed by the leading trim so reported numbers match the input.
	trimmed := strings.TrimLeft(text, " \t\r\n")
	offset := strings.Count(text[:len(text)-len(trimmed)], "\n")
	trimmed = strings.TrimRight(trimmed, " \t\r\n")
	if trimmed == "" {
		return []Point{}, nil
	}

	lines := strings.Split(trimmed, "\n")
	pts := make([]Point, 0, len(lines))
	for i, line := range lines {
		p, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1+offset, err)
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// Read consumes r completely and parses it with ParseAll.
func Read(r io.Reader) ([]Point, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		sb.WriteString(sc.Text())
		sb.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return ParseAll(sb.String())
}
