// Package fileparse reads the line-oriented key=value text files used for the
// menu layout, save slots and the shared stash.
package fileparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser walks a key=value file one entry at a time. Blank lines and lines
// starting with '#' are skipped and values are trimmed of surrounding spaces.
// A line without '=' is split at its first comma instead.
type Parser struct {
	Key string
	Val string

	scanner *bufio.Scanner
	closer  io.Closer
	rest    string
	line    int
}

// Open opens the named file for parsing.
func Open(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	p := New(f)
	p.closer = f
	return p, nil
}

// New returns a parser reading from r.
func New(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next entry. It returns false at end of input.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			// layout files may also be written as name,x,y,w,h,align
			key, val, ok = strings.Cut(line, ",")
		}
		if !ok {
			continue
		}
		p.Key = strings.TrimSpace(key)
		p.Val = strings.TrimSpace(val)
		p.rest = p.Val
		return true
	}
	return false
}

// NextValue consumes the next comma-separated field of the current value.
// It returns "" once the value is exhausted.
func (p *Parser) NextValue() string {
	if p.rest == "" {
		return ""
	}
	field, rest, _ := strings.Cut(p.rest, ",")
	p.rest = rest
	return strings.TrimSpace(field)
}

// Line returns the line number of the current entry.
func (p *Parser) Line() int {
	return p.line
}

// Err returns the first read error, if any.
func (p *Parser) Err() error {
	return p.scanner.Err()
}

// Close releases the underlying file when the parser was created by Open.
func (p *Parser) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// ToInt parses s as a decimal integer. Malformed input yields def.
func ToInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// SplitInts splits a comma-joined list of integers. Malformed fields yield def.
func SplitInts(s string, def int) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = ToInt(f, def)
	}
	return out
}

// JoinInts joins integers with commas.
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
