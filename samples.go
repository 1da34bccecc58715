package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// loadSamples reads every numeric line of the file at path. The file is closed on
// every return path.
func loadSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CalcError{Kind: KindIO, Path: path, Err: err}
	}
	defer f.Close()

	values, err := readSamples(f)
	if err != nil {
		if ce, ok := err.(*CalcError); ok {
			ce.Path = path
		}
		return nil, err
	}
	return values, nil
}

// readSamples parses one float per line, in order. Empty lines are skipped; any other
// line, whitespace-only included, that is not a finite number fails the whole read.
func readSamples(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	values := make([]float64, 0, 64)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := parseSample(strings.TrimSpace(line))
		if err != nil {
			return nil, &CalcError{Kind: KindInvalidData, Line: lineNo, Err: err}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		// no number needs a line longer than the scanner buffer
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &CalcError{Kind: KindInvalidData, Line: lineNo + 1, Err: err}
		}
		return nil, &CalcError{Kind: KindIO, Line: lineNo + 1, Err: err}
	}
	return values, nil
}

func parseSample(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %q: not a finite number", s)
	}
	return v, nil
}
