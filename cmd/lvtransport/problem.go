package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/transport"
)

// problemFile is the on-disk layout of a problem
type problemFile struct {
	Supply []int64   `yaml:"supply,flow" json:"supply"`
	Demand []int64   `yaml:"demand,flow" json:"demand"`
	Cost   []flowRow `yaml:"cost" json:"cost"`
}

// flowRow keeps each cost row on one line in YAML output
type flowRow []int64

func (r flowRow) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(v, 10),
		})
	}
	return node, nil
}

func newProblemFile(p transport.Problem) problemFile {
	f := problemFile{Supply: p.Supply, Demand: p.Demand, Cost: make([]flowRow, len(p.Cost))}
	for i, row := range p.Cost {
		f.Cost[i] = row
	}
	return f
}

func (f problemFile) problem() transport.Problem {
	cost := make([][]int64, len(f.Cost))
	for i, row := range f.Cost {
		cost[i] = row
	}
	return transport.Problem{Supply: f.Supply, Demand: f.Demand, Cost: cost}
}

func demoProblem() transport.Problem {
	return transport.Problem{
		Supply: []int64{30, 80, 40},
		Demand: []int64{50, 60, 10},
		Cost: [][]int64{
			{8, 6, 5},
			{1, 4, 4},
			{8, 2, 3},
		},
	}
}

// loadProblem reads a problem from path; ".json" files are JSON, anything
// else is YAML. An empty path selects the built-in demo instance.
func loadProblem(path string) (transport.Problem, error) {
	if path == "" {
		return demoProblem(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return transport.Problem{}, errors.Wrapf(err, "unable to read problem file '%s'", path)
	}

	var f problemFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	}
	if err != nil {
		return transport.Problem{}, errors.Wrapf(err, "unable to parse problem file '%s'", path)
	}

	return f.problem(), nil
}
