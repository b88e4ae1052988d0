package treeio

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treediff"
)

var (
	// ErrTreeRequired marks a missing or empty tree payload.
	ErrTreeRequired = errors.New("tree payload required")
	// ErrTreeInvalid marks a payload that does not decode into nodes.
	ErrTreeInvalid = errors.New("invalid tree payload")
)

// LoadUnits reads a forest of compilation units from a YAML file.
func LoadUnits(path string) ([]*tree.Node, error) {
	data, err := readPayload(path)
	if err != nil {
		return nil, err
	}
	return ParseUnits(data)
}

// LoadPositions reads a position table from a YAML file.
func LoadPositions(path string) (*treediff.PositionContext, error) {
	data, err := readPayload(path)
	if err != nil {
		return nil, err
	}
	return ParsePositions(data)
}

func readPayload(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrTreeRequired)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrTreeRequired, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty payload in %s", ErrTreeRequired, path)
	}
	return data, nil
}
