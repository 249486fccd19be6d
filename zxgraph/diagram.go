package zxgraph

import (
	"fmt"
	"strings"
)

// isVocabulary reports whether ch appears anywhere in the diagram grammar,
// which separates "misplaced" from "unknown" characters.
func isVocabulary(ch byte) bool {
	if _, ok := nodeGlyphTable[string(ch)]; ok {
		return true
	}
	_, ok := edgeGlyphTable[ch]

	return ok
}

func glyphError(row, col int, ch byte, sentinel error) error {
	return fmt.Errorf("FromDiagram: row %d col %d %q: %w", row, col, ch, sentinel)
}

// FromDiagram parses the 4-cell-pitch ASCII grammar (see package doc).
// Every cell must hold a glyph legal for its row/column parity or a space;
// '-' and '|' filler cells must lie along an existing edge, and every edge
// needs both endpoint nodes.
// Complexity: O(rows·cols).
func FromDiagram(text string) (*Graph, error) {
	g := NewGraph()
	fillers := make(map[Edge][2]int)

	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			ch := line[col]
			if ch == ' ' {
				continue
			}
			if !isVocabulary(ch) {
				return nil, glyphError(row, col, ch, ErrUnknownGlyph)
			}
			rowNode, colNode := row%4 == 0, col%4 == 0
			switch {
			case rowNode && colNode:
				glyph := string(ch)
				if col+1 < len(line) && line[col+1] == '!' {
					if _, ok := nodeGlyphTable[glyph+"!"]; ok {
						glyph += "!"
						col++
					}
				}
				k, ok := nodeGlyphTable[glyph]
				if !ok {
					return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
				}
				if err := g.AddNode(Node{col / 4, row / 4}, k); err != nil {
					return nil, err
				}

			case rowNode && col%4 == 2:
				k, ok := edgeGlyphTable[ch]
				if !ok || ch == '|' {
					return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
				}
				if err := g.AddEdge(Edge{X: col / 4, Y: row / 4, Horizontal: true}, k); err != nil {
					return nil, err
				}

			case rowNode:
				if ch != '-' {
					return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
				}
				fillers[Edge{X: col / 4, Y: row / 4, Horizontal: true}] = [2]int{row, col}

			case colNode && row%4 == 2:
				k, ok := edgeGlyphTable[ch]
				if !ok || ch == '-' {
					return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
				}
				if err := g.AddEdge(Edge{X: col / 4, Y: row / 4, Horizontal: false}, k); err != nil {
					return nil, err
				}

			case colNode:
				if ch != '|' {
					return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
				}
				fillers[Edge{X: col / 4, Y: row / 4, Horizontal: false}] = [2]int{row, col}

			default:
				return nil, glyphError(row, col, ch, ErrMisplacedGlyph)
			}
		}
	}

	for e, at := range fillers {
		if !g.HasEdge(e) {
			return nil, glyphError(at[0], at[1], lines[at[0]][at[1]], ErrMisplacedGlyph)
		}
	}
	for _, e := range g.Edges() {
		a, b := e.Ends()
		if !g.Has(a) || !g.Has(b) {
			return nil, fmt.Errorf("FromDiagram: edge %v: %w", e, ErrDanglingEdge)
		}
	}

	return g, nil
}

// MustFromDiagram is FromDiagram for literals known to be valid.
func MustFromDiagram(text string) *Graph {
	g, err := FromDiagram(text)
	if err != nil {
		panic(err)
	}

	return g
}

// String renders the graph back into diagram text, shifted so the smallest
// coordinates land on row/column 0. Trailing spaces are trimmed.
func (g *Graph) String() string {
	if len(g.nodes) == 0 && len(g.edges) == 0 {
		return ""
	}
	minX, minY, maxX, maxY := g.bounds()
	w, h := 4*(maxX-minX)+2, 4*(maxY-minY)+1
	grid := make([][]byte, h)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", w))
	}

	for e, k := range g.edges {
		r, c := 4*(e.Y-minY), 4*(e.X-minX)
		if e.Horizontal {
			grid[r][c+1], grid[r][c+3] = '-', '-'
			grid[r][c+2] = k.Glyph()[0]
		} else {
			grid[r+1][c], grid[r+3][c] = '|', '|'
			grid[r+2][c] = '|'
			if k != EdgePlain {
				grid[r+2][c] = k.Glyph()[0]
			}
		}
	}
	for n, k := range g.nodes {
		r, c := 4*(n.Y-minY), 4*(n.X-minX)
		glyph := k.Glyph()
		copy(grid[r][c:], glyph)
	}

	lines := make([]string, h)
	for r := range grid {
		lines[r] = strings.TrimRight(string(grid[r]), " ")
	}

	return strings.Join(lines, "\n")
}

// bounds returns the extreme coordinates touched by nodes and edge endpoints.
func (g *Graph) bounds() (minX, minY, maxX, maxY int) {
	first := true
	visit := func(n Node) {
		if first {
			minX, minY, maxX, maxY = n.X, n.Y, n.X, n.Y
			first = false

			return
		}
		minX, minY = min(minX, n.X), min(minY, n.Y)
		maxX, maxY = max(maxX, n.X), max(maxY, n.Y)
	}
	for n := range g.nodes {
		visit(n)
	}
	for e := range g.edges {
		a, b := e.Ends()
		visit(a)
		visit(b)
	}

	return minX, minY, maxX, maxY
}
