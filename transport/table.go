package transport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/drake/tabula/block"
)

// Title cells span the three header rows of the grid.
const titleHeight = 3

// Table builds the block tree for p:
//
//	-----------------------------------------------------
//	|        |           Destination           |        |
//	| Source |---------------------------------| Supply |
//	|        |  D1    D2     D3     D4     D5  |        |
//	|--------|---------------------------------|--------|
//	|   A1   | 2.0   3.0    4.0    2.0    4.0  | 140.0  |
//	|   A2   | 8.0   4.0    1.0    4.0    1.0  | 180.0  |
//	|   A3   | 9.0   7.0    3.0    7.0    2.0  | 160.0  |
//	|--------|---------------------------------|--------|
//	| Demand | 60.0  70.0  120.0  130.0  100.0 | 480.0  |
//	-----------------------------------------------------
func Table(p *Problem) (block.Block, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	row := block.NewRow()
	row.Add(block.NewVerticalLine())
	row.Add(sourceColumn(p))
	row.Add(block.NewVerticalLine())
	row.Add(destinationTable(p))
	row.Add(block.NewVerticalLine())
	row.Add(supplyColumn(p))
	row.Add(block.NewVerticalLine())

	table := block.NewColumn()
	table.Add(block.NewHorizontalLine())
	table.Add(row)
	table.Add(block.NewHorizontalLine())
	return table, nil
}

// Format renders p as a newline-separated grid.
func Format(p *Problem) (string, error) {
	table, err := Table(p)
	if err != nil {
		return "", err
	}
	return block.String(table), nil
}

func title(s string) *block.Cell {
	c := block.NewCell(s)
	c.SetHeight(titleHeight)
	return c
}

func sourceColumn(p *Problem) *block.Column {
	col := block.NewColumn()
	col.Add(title("Source"))
	col.Add(block.NewHorizontalLine())
	for i := range p.Supply {
		col.Add(block.NewCell(fmt.Sprintf("A%d", i+1)))
	}
	col.Add(block.NewHorizontalLine())
	col.Add(block.NewCell("Demand"))
	return col
}

func destinationTable(p *Problem) *block.Column {
	header := block.NewCell("Destination")

	cols := make([]*block.Column, 0, len(p.Demand))
	for j, demand := range p.Demand {
		col := block.NewColumn()
		col.Add(block.NewCell(fmt.Sprintf("D%d", j+1)))
		col.Add(block.NewHorizontalLine())
		for i := range p.Supply {
			col.Add(block.NewCell(FormatNumber(p.Costs[i][j])))
		}
		col.Add(block.NewHorizontalLine())
		col.Add(block.NewCell(FormatNumber(demand)))
		cols = append(cols, col)
	}
	spread(cols, header.MinWidth())

	columns := block.NewRow()
	for _, col := range cols {
		columns.Add(col)
	}

	table := block.NewColumn()
	table.Add(header)
	table.Add(block.NewHorizontalLine())
	table.Add(columns)
	return table
}

// spread widens cols so that together they span at least width. A Row never
// hands spare width to its children, so the extra is dealt out here, evenly,
// leftmost first.
func spread(cols []*block.Column, width int) {
	total := 0
	for _, col := range cols {
		total += col.MinWidth()
	}
	need := width - total
	if need <= 0 || len(cols) == 0 {
		return
	}
	n := len(cols)
	for k, col := range cols {
		extra := need / n
		if k < need%n {
			extra++
		}
		col.SetWidth(col.Width() + extra)
	}
}

func supplyColumn(p *Problem) *block.Column {
	col := block.NewColumn()
	col.Add(title("Supply"))
	col.Add(block.NewHorizontalLine())
	for _, s := range p.Supply {
		col.Add(block.NewCell(FormatNumber(s)))
	}
	col.Add(block.NewHorizontalLine())
	col.Add(block.NewCell(FormatNumber(p.TotalSupply())))
	return col
}

// FormatNumber writes v in its shortest round-trip form, always with a
// fractional part or an exponent: 2 → "2.0", 0.25 → "0.25", 1e16 → "1e+16".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
