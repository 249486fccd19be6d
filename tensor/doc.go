// SPDX-License-Identifier: MIT

// Package tensor is the brute-force reference evaluator for ZX diagrams.
//
// What:
//
//   - Dense is a complex tensor whose legs are labelled by zxgraph.Port and
//     all have dimension 2; bit k of the flat index is leg k.
//   - Evaluate contracts every node tensor and edge matrix of a graph into
//     one Dense over the open boundary legs, inputs first, then outputs.
//
// Why:
//
//   - The stabilizer evaluator is cross-checked against this package on
//     small diagrams. Cost is exponential in the number of legs, so callers
//     must keep diagrams small.
//
// Errors:
//
//   - ErrShape: data length does not match the leg count.
//   - ErrUnknownLeg: an operation names a leg the tensor does not carry.
//   - zxgraph.ErrBadDegree: a node has the wrong number of active ports.
package tensor
