package main

import "math"

// Summary holds the statistics of one sample. Variance is the population variance.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
}

func summarize(samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, &CalcError{Kind: KindEmptyInput, Err: errEmptyInput}
	}

	total := 0.0
	for _, v := range samples {
		total += v
	}
	mean := total / float64(n)

	var sumsq float64
	for _, v := range samples {
		d := v - mean
		sumsq += d * d
	}
	variance := sumsq / float64(n)

	return Summary{Count: n, Mean: mean, Variance: variance, StdDev: math.Sqrt(variance)}, nil
}
