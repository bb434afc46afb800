// Package transport lays out a transportation problem (supplies, a cost
// matrix and demands) as a text grid built from block primitives.
package transport

import (
	"errors"
	"fmt"
)

var (
	ErrNoSources      = errors.New("transport: no sources")
	ErrNoDestinations = errors.New("transport: no destinations")
	ErrCostRows       = errors.New("transport: cost matrix row count does not match supply")
	ErrCostColumns    = errors.New("transport: cost matrix column count does not match demand")
)

// Problem holds one supply per source, one demand per destination and a
// sources × destinations cost matrix.
type Problem struct {
	Supply []float64   `yaml:"supply"`
	Costs  [][]float64 `yaml:"costs"`
	Demand []float64   `yaml:"demand"`
}

// Example is the 3-source, 5-destination problem used by the CLI when no
// input is given.
func Example() *Problem {
	return &Problem{
		Supply: []float64{140, 180, 160},
		Costs: [][]float64{
			{2, 3, 4, 2, 4},
			{8, 4, 1, 4, 1},
			{9, 7, 3, 7, 2},
		},
		Demand: []float64{60, 70, 120, 130, 100},
	}
}

// Sources returns the number of sources.
func (p *Problem) Sources() int { return len(p.Supply) }

// Destinations returns the number of destinations.
func (p *Problem) Destinations() int { return len(p.Demand) }

// TotalSupply sums the supplies.
func (p *Problem) TotalSupply() float64 {
	var total float64
	for _, s := range p.Supply {
		total += s
	}
	return total
}

// TotalDemand sums the demands.
func (p *Problem) TotalDemand() float64 {
	var total float64
	for _, d := range p.Demand {
		total += d
	}
	return total
}

// Balanced reports whether total supply equals total demand.
func (p *Problem) Balanced() bool {
	return p.TotalSupply() == p.TotalDemand()
}

// Validate checks that the cost matrix matches the supply and demand
// dimensions.
func (p *Problem) Validate() error {
	if len(p.Supply) == 0 {
		return ErrNoSources
	}
	if len(p.Demand) == 0 {
		return ErrNoDestinations
	}
	if len(p.Costs) != len(p.Supply) {
		return fmt.Errorf("%w: %d rows for %d sources", ErrCostRows, len(p.Costs), len(p.Supply))
	}
	for i, row := range p.Costs {
		if len(row) != len(p.Demand) {
			return fmt.Errorf("%w: row %d has %d entries for %d destinations",
				ErrCostColumns, i+1, len(row), len(p.Demand))
		}
	}
	return nil
}
