// Package zxeval is the module root of a ZX-calculus diagram evaluator:
// diagrams drawn in ASCII are compiled into measurement-based stabilizer
// programs, simulated, and reduced to their output stabilizers and
// wavefunction.
//
// What is in the module?
//
//	pauli/       n-qubit Pauli products, phase-exact multiplication, elimination
//	zxgraph/     diagram grammar, graph model, node kinds, port→qubit mapping
//	program/     statement IR, QASM and circuit-JSON output, simulation driver
//	stabilizer/  CHP tableau simulator and stabilizer→wavefunction conversion
//	zxeval/      EPR-edge / parity-node evaluator and result analysis
//	tensor/      dense tensor contraction used as a reference evaluator
//	cmd/zxeval   command-line front end
//
// Quick ASCII example:
//
//	!---@---?
//	    |
//	!---O---?
//
// is a CNOT: two inputs (!), two outputs (?), a Z spider (@) controlling an
// X spider (O). Its stabilizers are +X.XX, +Z.Z., +.X.X and +.ZZZ.
//
//	go run github.com/katalvlaran/zxeval/cmd/zxeval --diagram '!-Z-?'
package zxeval
