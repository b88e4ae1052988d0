package treediff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/asttools/treediff/tree"
)

type oneWayJSON struct {
	Side    string     `json:"side"`
	Kind    string     `json:"kind"`
	Path    string     `json:"path"`
	Message string     `json:"message"`
	Span    *tree.Span `json:"span,omitempty"`
}

type pairJSON struct {
	Kind         string     `json:"kind"`
	ExpectedPath string     `json:"expectedPath"`
	ActualPath   string     `json:"actualPath"`
	Message      string     `json:"message"`
	ExpectedSpan *tree.Span `json:"expectedSpan,omitempty"`
	ActualSpan   *tree.Span `json:"actualSpan,omitempty"`
}

type differenceJSON struct {
	Total         int          `json:"total"`
	DifferingPair []pairJSON   `json:"differingPairs"`
	ExtraExpected []oneWayJSON `json:"extraExpected"`
	ExtraActual   []oneWayJSON `json:"extraActual"`
}

// RenderJSON writes a deterministic JSON payload for a difference: findings
// stay in encounter order and all collections are non-nil.
func RenderJSON(out io.Writer, d *Difference, ctx *PositionContext) error {
	payload := differenceJSON{
		Total:         d.Len(),
		DifferingPair: make([]pairJSON, 0, len(d.pairs)),
		ExtraExpected: make([]oneWayJSON, 0, len(d.extraExpected)),
		ExtraActual:   make([]oneWayJSON, 0, len(d.extraActual)),
	}
	for _, f := range d.pairs {
		payload.DifferingPair = append(payload.DifferingPair, pairJSON{
			Kind:         f.Kind.String(),
			ExpectedPath: f.ExpectedPath.String(),
			ActualPath:   f.ActualPath.String(),
			Message:      f.Message,
			ExpectedSpan: spanOf(ctx, f.ExpectedPath),
			ActualSpan:   spanOf(ctx, f.ActualPath),
		})
	}
	for _, f := range d.extraExpected {
		payload.ExtraExpected = append(payload.ExtraExpected, oneWayFindingJSON(ctx, f))
	}
	for _, f := range d.extraActual {
		payload.ExtraActual = append(payload.ExtraActual, oneWayFindingJSON(ctx, f))
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal difference JSON: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write difference JSON: %w", err)
	}
	return nil
}

func oneWayFindingJSON(ctx *PositionContext, f OneWayFinding) oneWayJSON {
	return oneWayJSON{
		Side:    f.Side.String(),
		Kind:    f.Kind.String(),
		Path:    f.Path.String(),
		Message: f.Message,
		Span:    spanOf(ctx, f.Path),
	}
}

func spanOf(ctx *PositionContext, p tree.Path) *tree.Span {
	ex, ok := ctx.Lookup(p)
	if !ok {
		return nil
	}
	span := ex.Span
	return &span
}
