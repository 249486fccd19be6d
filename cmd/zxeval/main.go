// Command zxeval evaluates a ZX diagram and prints its output state, the
// compiled QASM program and a link to the circuit simulator.
//
// Usage:
//
//	zxeval --diagram '!-Z-?'
//	zxeval --file cnot.zx --qasm
//	zxeval --serialized '0,0,!;1,0,?:0,0,h,z'
//
// Every flag can also be set through a ZXEVAL_<FLAG> environment variable
// or a config file given with --config.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/zxeval/zxeval"
	"github.com/katalvlaran/zxeval/zxgraph"
)

var errNoDiagram = errors.New("zxeval: no diagram given")

// settings is the resolved configuration.
type settings struct {
	Diagram    string
	File       string
	Serialized string
	Seed       uint64
	QASM       bool
	Verbose    bool
}

// loadSettings layers flags over ZXEVAL_* environment variables over an
// optional config file. A single positional argument names the diagram file.
func loadSettings(args []string) (settings, error) {
	fs := pflag.NewFlagSet("zxeval", pflag.ContinueOnError)
	fs.StringP("diagram", "d", "", "diagram text")
	fs.StringP("file", "f", "", "diagram file, - for stdin")
	fs.StringP("serialized", "s", "", "serialized graph x,y,kind;...:x,y,h|v,kind;...")
	fs.Uint64("seed", 0, "seed for sampled measurement outcomes, 0 for random")
	fs.Bool("qasm", false, "print the QASM program")
	fs.BoolP("verbose", "v", false, "debug logging")
	fs.String("config", "", "config file (yaml, toml, json)")
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return settings{}, err
	}
	v.SetEnvPrefix("ZXEVAL")
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	s := settings{
		Diagram:    v.GetString("diagram"),
		File:       v.GetString("file"),
		Serialized: v.GetString("serialized"),
		Seed:       v.GetUint64("seed"),
		QASM:       v.GetBool("qasm"),
		Verbose:    v.GetBool("verbose"),
	}
	if s.File == "" && fs.NArg() > 0 {
		s.File = fs.Arg(0)
	}

	return s, nil
}

// loadGraph reads the diagram named by s.
func loadGraph(s settings, stdin io.Reader) (*zxgraph.Graph, error) {
	if s.Serialized != "" {
		return zxgraph.Deserialize(s.Serialized)
	}
	text := s.Diagram
	switch {
	case s.File == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		text = string(data)
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, errNoDiagram
	}

	return zxgraph.FromDiagram(text)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "zxeval"})

	s, err := loadSettings(args)
	if err != nil {
		logger.Error("bad arguments", "err", err)

		return 2
	}
	if s.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	g, err := loadGraph(s, stdin)
	if err != nil {
		logger.Error("cannot read diagram", "err", err)

		return 2
	}
	logger.Debug("diagram loaded", "nodes", g.NumNodes(), "edges", g.NumEdges(), "serialized", g.Serialize())

	opts := []zxeval.Option{zxeval.WithLogger(logger)}
	if s.Seed != 0 {
		opts = append(opts, zxeval.WithRand(rand.New(rand.NewPCG(s.Seed, s.Seed))))
	}
	res, err := zxeval.Analyze(g, opts...)
	if err != nil {
		logger.Error("evaluation failed", "err", err)

		return 1
	}

	fmt.Fprintln(stdout, renderResult(g, res, s.QASM))

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
