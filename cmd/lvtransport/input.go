package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvtransport/transport"
)

// Input contains the flag values shared by all commands
type Input struct {
	verbose bool

	// solve
	problemPath string
	algo        algoValue
	maxIter     int
	check       bool
	output      string

	// generate
	rows, cols int
	seed       int64
	balanced   bool

	logger *logrus.Logger
}

// options maps the solve flags onto solver options
func (i *Input) options() transport.Options {
	opts := transport.DefaultOptions()
	opts.Algo = transport.Algorithm(i.algo)
	opts.MaxIterations = i.maxIter
	opts.CheckInvariants = i.check
	opts.Logger = i.logger

	return opts
}
