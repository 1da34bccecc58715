package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// writeReport prints the three-line summary. Mean and standard deviation use the
// printer's locale for digit grouping.
func writeReport(w io.Writer, p *message.Printer, s Summary) error {
	if _, err := fmt.Fprintf(w, "There were %d numbers in the file.\n", s.Count); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "average %.12f\n", s.Mean); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "standard deviation %.12f\n", s.StdDev)
	return err
}

func writeFailure(w io.Writer, kind ErrorKind) error {
	_, err := fmt.Fprintln(w, kind.Message())
	return err
}
