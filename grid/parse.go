package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid in text form:
//
//	W,H
//	<H rows of exactly W terrain characters>
//
// The header separator may be a comma or whitespace. Trailing '\r' is
// stripped from every line; anything after the H-th row is ignored.
// All validation of New applies, plus ErrBadHeader and ErrRowCount.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("grid: read header: %w", err)
		}

		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	w, h, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}
	// the header is untrusted: check it before sizing anything from it
	if err = checkDimensions(w, h, cfg); err != nil {
		return nil, err
	}

	rows := make([]string, 0, h)
	for len(rows) < h && sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read rows: %w", err)
	}

	return build(w, h, rows, cfg)
}

// parseHeader splits "W,H" (or "W H") into two integers.
func parseHeader(line string) (w, h int, err error) {
	line = strings.TrimSpace(strings.TrimRight(line, "\r"))
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if w, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", ErrBadHeader, fields[0])
	}
	if h, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", ErrBadHeader, fields[1])
	}

	return w, h, nil
}
