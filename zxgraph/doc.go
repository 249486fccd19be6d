// Package zxgraph models ZX-calculus diagrams drawn on an integer grid and
// parses/serializes their ASCII form.
//
// What:
//
//   - Graph maps node positions to NodeKind and edge positions to EdgeKind.
//   - FromDiagram parses the 4-cell-pitch text grammar; String renders it back.
//   - Serialize/Deserialize round-trip the compact "x,y,kind;...:x,y,h|v,kind;..." form.
//   - NodeKind/EdgeKind are closed enums carrying their tensor, fixed points
//     and basis-change descriptors.
//   - NewPortQubitMapping assigns one dense qubit index per port.
//
// Grammar:
//
//	!---@---?      nodes sit where row%4==0 and col%4==0,
//	    |          horizontal edges at col%4==2, vertical edges at row%4==2,
//	!---O---?      '-' and '|' fill the remaining cells of an edge.
//
// Node glyphs: @ O (Z/X spider), z x (phase π), s f (π/2), a w (-π/2), each
// optionally followed by '!' (post-selected, degree 1); + crossing;
// h H Hadamard; ! input; ? output. Edge glyphs: - | (identity), x z s f h.
//
// Errors:
//
//   - ErrUnknownGlyph, ErrMisplacedGlyph, ErrDanglingEdge: FromDiagram failures.
//   - ErrBadSerialization: Deserialize failures.
//   - ErrMalformedGraph: NewPortQubitMapping met an unclassifiable node.
package zxgraph
