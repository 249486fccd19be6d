package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/zxeval/zxeval"
	"github.com/katalvlaran/zxeval/zxgraph"
)

// amplitudeCutoff hides basis states with negligible amplitude.
const amplitudeCutoff = 1e-9

// ket renders basis index k over n qubits, qubit 0 leftmost.
func ket(k, n int) string {
	var b strings.Builder
	b.WriteString("|")
	for q := 0; q < n; q++ {
		b.WriteByte('0' + byte(k>>q&1))
	}
	b.WriteString("⟩")

	return b.String()
}

func formatAmplitude(a complex128) string {
	re, im := real(a), imag(a)
	switch {
	case math.Abs(im) < amplitudeCutoff:
		return fmt.Sprintf("%+.4f", re)
	case math.Abs(re) < amplitudeCutoff:
		return fmt.Sprintf("%+.4fi", im)
	}

	return fmt.Sprintf("%+.4f%+.4fi", re, im)
}

// statePanel lists the verdict, stabilizers and non-zero amplitudes.
func statePanel(res *zxeval.AnalyzedProgram) string {
	var lines []string
	lines = append(lines, titleStyle.Render("State"),
		fmt.Sprintf("inputs %d, outputs %d", res.NumInputs, res.NumOutputs))
	if !res.Satisfiable {
		lines = append(lines, failStyle.Render("not satisfiable: the diagram is zero"))

		return stateStyle.Render(strings.Join(lines, "\n"))
	}
	lines = append(lines, fmt.Sprintf("success probability %.4f", res.SuccessProbability), "")
	lines = append(lines, titleStyle.Render("Stabilizers"))
	for _, s := range res.Stabilizers {
		lines = append(lines, s.String())
	}
	if res.Wavefunction != nil {
		n := res.NumInputs + res.NumOutputs
		lines = append(lines, "", titleStyle.Render("Amplitudes"))
		for k, a := range res.Wavefunction {
			if cmplx.Abs(a) > amplitudeCutoff {
				lines = append(lines, fmt.Sprintf("%s %s", ket(k, n), formatAmplitude(a)))
			}
		}
	}

	return stateStyle.Render(strings.Join(lines, "\n"))
}

// renderResult lays the diagram and state side by side, with the QASM and
// circuit link underneath when requested.
func renderResult(g *zxgraph.Graph, res *zxeval.AnalyzedProgram, showQASM bool) string {
	summary := fmt.Sprintf("%d nodes, %d edges, %d components",
		g.NumNodes(), g.NumEdges(), len(g.ConnectedComponents()))
	diagram := diagramStyle.Render(titleStyle.Render("Diagram") + "\n" + g.String() + "\n" + dimStyle.Render(summary))
	top := lipgloss.JoinHorizontal(lipgloss.Top, diagram, statePanel(res))
	parts := []string{top}
	if showQASM {
		parts = append(parts, qasmStyle.Render(titleStyle.Render("QASM")+"\n"+strings.TrimRight(res.QASM, "\n")))
	}
	parts = append(parts, dimStyle.Render(res.CircuitURL))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
