package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/transport"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// resultFile is the machine-readable form of a solve; empty cells are null
type resultFile struct {
	Algorithm        string     `yaml:"algorithm" json:"algorithm"`
	Balance          string     `yaml:"balance" json:"balance"`
	Cost             int64      `yaml:"cost" json:"cost"`
	Pivots           int        `yaml:"pivots" json:"pivots"`
	History          []int64    `yaml:"history,flow" json:"history"`
	Supply           []int64    `yaml:"supply,flow" json:"supply"`
	Demand           []int64    `yaml:"demand,flow" json:"demand"`
	SupplyPotentials []int64    `yaml:"supply_potentials,flow" json:"supply_potentials"`
	DemandPotentials []int64    `yaml:"demand_potentials,flow" json:"demand_potentials"`
	Allocation       [][]*int64 `yaml:"allocation" json:"allocation"`
}

func newResultFile(res transport.Result) resultFile {
	grid := res.Allocation.Grid()
	alloc := make([][]*int64, len(grid))
	for i, row := range grid {
		alloc[i] = make([]*int64, len(row))
		for j := range row {
			if row[j] != transport.Empty {
				q := row[j]
				alloc[i][j] = &q
			}
		}
	}

	return resultFile{
		Algorithm:        res.Algo.String(),
		Balance:          res.Balance.String(),
		Cost:             res.Cost,
		Pivots:           res.Pivots,
		History:          res.History,
		Supply:           res.Supply,
		Demand:           res.Demand,
		SupplyPotentials: res.SupplyPotentials,
		DemandPotentials: res.DemandPotentials,
		Allocation:       alloc,
	}
}

func render(w io.Writer, format string, res transport.Result) error {
	switch strings.ToLower(format) {
	case formatTable, "":
		return renderTable(w, res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResultFile(res)); err != nil {
			return errors.Wrap(err, "unable to encode result")
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newResultFile(res)), "unable to encode result")
	default:
		return errors.Errorf("unknown output format '%s' (want table, yaml or json)", format)
	}
}

// renderTable prints the allocation with row and column totals. Dummy nodes
// carry a trailing '*'; empty cells print as '-'.
func renderTable(w io.Writer, res transport.Result) error {
	a := res.Allocation
	dummyRow, dummyCol := -1, -1
	switch res.Balance {
	case transport.BalanceDummySupply:
		dummyRow = a.Rows() - 1
	case transport.BalanceDummyDemand:
		dummyCol = a.Cols() - 1
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{""}
	for j := 0; j < a.Cols(); j++ {
		header = append(header, label("D", j, j == dummyCol))
	}
	header = append(header, "Supply")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i := 0; i < a.Rows(); i++ {
		row := []string{label("S", i, i == dummyRow)}
		for j := 0; j < a.Cols(); j++ {
			if q := a.Quantity(i, j); q == transport.Empty {
				row = append(row, "-")
			} else {
				row = append(row, strconv.FormatInt(q, 10))
			}
		}
		row = append(row, strconv.FormatInt(res.Supply[i], 10))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	footer := []string{"Demand"}
	for _, d := range res.Demand {
		footer = append(footer, strconv.FormatInt(d, 10))
	}
	fmt.Fprintln(tw, strings.Join(footer, "\t")+"\t\t")
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "unable to write table")
	}

	_, err := fmt.Fprintf(w, "Total cost: %d (%s, %d pivots, balance %s)\n", res.Cost, res.Algo, res.Pivots, res.Balance)
	return err
}

func label(prefix string, idx int, dummy bool) string {
	s := prefix + strconv.Itoa(idx+1)
	if dummy {
		s += "*"
	}
	return s
}
