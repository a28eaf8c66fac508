package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvtransport/transport"
)

// algoValue is a pflag.Value for transport.Algorithm
type algoValue transport.Algorithm

var _ pflag.Value = (*algoValue)(nil)

func (a *algoValue) String() string { return transport.Algorithm(*a).String() }

func (a *algoValue) Set(s string) error {
	algo, err := transport.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = algoValue(algo)

	return nil
}

func (a *algoValue) Type() string { return "algorithm" }
