package core

import (
	"github.com/google/uuid"
)

// ID represents a unique identifier
type ID string

// NewID generates a new unique ID
func NewID() ID {
	return ID(uuid.New().String())
}

// String returns the string representation of the ID
func (id ID) String() string {
	return string(id)
}

// LineKind represents the kind of a non-blank source line
type LineKind string

const (
	LineKindComment LineKind = "comment"
	LineKindData    LineKind = "data"
)

// CommentMarker prefixes every comment line
const CommentMarker = "//"

// TokenSeparator joins converted tokens on a data line
const TokenSeparator = ", "

// OutputLine is the transformed counterpart of one non-blank source line
type OutputLine struct {
	Kind   LineKind `json:"kind"`
	Text   string   `json:"text"`
	Tokens []string `json:"tokens,omitempty"`
}

// IsComment reports whether the line was passed through unchanged
func (l OutputLine) IsComment() bool {
	return l.Kind == LineKindComment
}
