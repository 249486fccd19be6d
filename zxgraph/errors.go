package zxgraph

import "errors"

var (
	// ErrUnknownGlyph indicates a character outside the diagram vocabulary.
	ErrUnknownGlyph = errors.New("zxgraph: unknown glyph")

	// ErrMisplacedGlyph indicates a recognized glyph at an illegal row/column parity.
	ErrMisplacedGlyph = errors.New("zxgraph: glyph at illegal position")

	// ErrDanglingEdge indicates an edge missing one of its endpoint nodes.
	ErrDanglingEdge = errors.New("zxgraph: edge without both endpoint nodes")

	// ErrBadSerialization indicates malformed serialized text.
	ErrBadSerialization = errors.New("zxgraph: malformed serialized graph")

	// ErrMalformedGraph indicates a node kind outside the closed vocabulary.
	ErrMalformedGraph = errors.New("zxgraph: malformed graph")
)

var (
	// ErrBadDegree indicates a node whose active port count its kind does not allow.
	ErrBadDegree = errors.New("zxgraph: node degree not allowed for its kind")

	// ErrDoubleAssign indicates an attempt to place an edge or node twice.
	ErrDoubleAssign = errors.New("zxgraph: position already assigned")
)
