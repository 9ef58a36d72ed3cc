// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fracmat/grid"
	"github.com/katalvlaran/fracmat/matrix"
)

// errMissingOperand is returned when a command needs an operand that was
// given neither inline nor in the input document.
var errMissingOperand = errors.New("missing operand")

// Cell keeps the raw text of a YAML scalar, so 1, 0.5 and "1/2" all
// reach the cell parser unchanged.
type Cell string

// UnmarshalYAML accepts any scalar node.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cell must be a scalar", node.Line)
	}
	*c = Cell(node.Value)

	return nil
}

// Document is the --input file layout.
type Document struct {
	A [][]Cell `yaml:"a"`
	B [][]Cell `yaml:"b"`
}

func (d Document) cells(rows [][]Cell) [][]string {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]string, len(rows))
	for i := range rows {
		out[i] = make([]string, len(rows[i]))
		for j := range rows[i] {
			out[i][j] = string(rows[i][j])
		}
	}

	return out
}

func readDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("failed to read input: %w", err)
	}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse input: %w", err)
	}

	return doc, nil
}

// operands resolves A and B from the inline flags, falling back to the
// input document. A is always required; B only when needB is set.
func operands(needB bool) (a, b *matrix.Dense, err error) {
	var docA, docB [][]string
	if inputFile != "" {
		doc, err := readDocument(inputFile)
		if err != nil {
			return nil, nil, err
		}
		docA, docB = doc.cells(doc.A), doc.cells(doc.B)
	}
	policy := appCfg.Grid

	if a, err = operand("A", aText, docA, policy); err != nil {
		return nil, nil, err
	}
	if a == nil {
		return nil, nil, fmt.Errorf("matrix A: %w", errMissingOperand)
	}
	if b, err = operand("B", bText, docB, policy); err != nil {
		return nil, nil, err
	}
	if b == nil && needB {
		return nil, nil, fmt.Errorf("matrix B: %w", errMissingOperand)
	}
	logger.Debug("operands parsed", zap.Stringer("a", a), zap.Bool("has_b", b != nil))

	return a, b, nil
}

func operand(name, inline string, doc [][]string, policy grid.Policy) (*matrix.Dense, error) {
	cells := doc
	if inline != "" {
		cells = grid.SplitRows(inline)
	}
	if len(cells) == 0 {
		return nil, nil
	}
	m, err := policy.Build(cells)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}

	return m, nil
}
