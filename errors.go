package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a run could not produce a report.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindIO
	KindInvalidData
	KindEmptyInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInvalidData:
		return "invalid_data"
	case KindEmptyInput:
		return "empty_input"
	default:
		return "unexpected"
	}
}

// Message is the single line shown to the user when a run fails with this kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindIO:
		return "An error occurred trying to read the file."
	case KindInvalidData:
		return "Non-numeric data found in the file"
	case KindEmptyInput:
		return "No numeric data found in the file"
	default:
		return "An error has occurred"
	}
}

// ExitCode maps a kind to the process exit status.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindIO:
		return 2
	case KindInvalidData:
		return 3
	case KindEmptyInput:
		return 4
	default:
		return 1
	}
}

var errEmptyInput = errors.New("no numeric values")

// CalcError is the error returned by every step of computeAndReport.
type CalcError struct {
	Kind ErrorKind
	Path string
	Line int // 1-based, 0 when not tied to a line
	Err  error
}

func (e *CalcError) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(":%d", e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CalcError) Unwrap() error { return e.Err }

// kindOf reports the kind of err. Errors that are not a *CalcError are unexpected.
func kindOf(err error) ErrorKind {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnexpected
}
