package transport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a problem from a YAML or JSON file.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads a problem document from r and validates it. Unknown keys
// are rejected.
//
//	supply: [140, 180, 160]
//	demand: [60, 70, 120, 130, 100]
//	costs:
//	  - [2, 3, 4, 2, 4]
//	  - [8, 4, 1, 4, 1]
//	  - [9, 7, 3, 7, 2]
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSources
		}
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseVector parses a comma-separated list of numbers such as "140,180,160".
func ParseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseMatrix parses rows separated by semicolons, each a comma-separated
// list: "2,3,4;8,4,1".
func ParseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	rows := strings.Split(s, ";")
	out := make([][]float64, 0, len(rows))
	for i, row := range rows {
		v, err := ParseVector(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
