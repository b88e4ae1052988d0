package tree

import "fmt"

// Span is a line/column range in a source unit. Lines and columns are
// 1-based; End is exclusive.
type Span struct {
	Line      int `json:"line" yaml:"line"`
	Column    int `json:"column" yaml:"column"`
	EndLine   int `json:"endLine,omitempty" yaml:"endLine,omitempty"`
	EndColumn int `json:"endColumn,omitempty" yaml:"endColumn,omitempty"`
}

func (s Span) String() string {
	if s.EndLine == 0 || (s.EndLine == s.Line && s.EndColumn == s.Column) {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Line, s.Column, s.EndLine, s.EndColumn)
}

// Excerpt is a source span plus the raw text it covers. Excerpts are
// supplied by the frontend and consumed only when rendering reports; they
// never influence comparison outcomes.
type Excerpt struct {
	Span Span   `json:"span" yaml:"span"`
	Text string `json:"text" yaml:"text"`
}
