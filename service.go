package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/message"
)

type app struct {
	in      io.Reader
	out     io.Writer
	log     zerolog.Logger
	printer *message.Printer
}

// computeAndReport loads the file at path, summarizes it and writes the report to out.
// The report is rendered first and handed to out in a single Write, so a failed
// calculation never leaves report lines behind.
func computeAndReport(path string, out io.Writer, p *message.Printer) (s Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = Summary{}, &CalcError{Kind: KindUnexpected, Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	values, err := loadSamples(path)
	if err != nil {
		return Summary{}, err
	}
	s, err = summarize(values)
	if err != nil {
		var ce *CalcError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return Summary{}, err
	}
	var buf bytes.Buffer
	if err := writeReport(&buf, p, s); err != nil {
		return Summary{}, &CalcError{Kind: KindUnexpected, Path: path, Err: fmt.Errorf("render report: %w", err)}
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return Summary{}, &CalcError{Kind: KindUnexpected, Path: path, Err: fmt.Errorf("write report: %w", err)}
	}
	return s, nil
}

// processFile runs one calculation and always leaves exactly one outcome on a.out:
// the report, or a single failure line. It returns the process exit code.
func (a *app) processFile(path string) int {
	start := time.Now()
	s, err := computeAndReport(path, a.out, a.printer)
	if err != nil {
		kind := kindOf(err)
		ev := a.log.Warn()
		if kind == KindUnexpected {
			ev = a.log.Error()
		}
		ev.Err(err).Str("path", path).Stringer("kind", kind).Msg("calculation failed")
		_ = writeFailure(a.out, kind)
		return kind.ExitCode()
	}
	a.log.Debug().
		Str("path", path).
		Int("count", s.Count).
		Dur("duration", time.Since(start)).
		Msg("processed file")
	return 0
}

// promptPath asks for a file name on out and reads one line from in.
func promptPath(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, "Enter a file name: "); err != nil {
		return "", &CalcError{Kind: KindIO, Err: err}
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", &CalcError{Kind: KindIO, Err: fmt.Errorf("read file name: %w", err)}
	}
	path := strings.TrimRight(line, "\r\n")
	if path == "" {
		return "", &CalcError{Kind: KindIO, Err: errors.New("no file name given")}
	}
	return path, nil
}

// run handles one invocation. args holds at most the file path.
func (a *app) run(args []string) int {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := promptPath(a.in, a.out)
		if err != nil {
			a.log.Warn().Err(err).Msg("no input file")
			_ = writeFailure(a.out, kindOf(err))
			return kindOf(err).ExitCode()
		}
		path = p
	}
	return a.processFile(path)
}
