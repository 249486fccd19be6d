package zxeval

import (
	"errors"

	"github.com/katalvlaran/zxeval/zxgraph"
)

var (
	// ErrBadDegree aliases zxgraph.ErrBadDegree so callers can match either.
	ErrBadDegree = zxgraph.ErrBadDegree

	// ErrUnknownKind indicates a node kind the evaluator cannot compile.
	ErrUnknownKind = errors.New("zxeval: unknown node kind")

	// ErrInconsistentFeedback indicates feedback that fails to make the
	// measured branches agree.
	ErrInconsistentFeedback = errors.New("zxeval: inconsistent feedback")
)
