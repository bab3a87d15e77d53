// SPDX-License-Identifier: MIT

// Command rankmerge merges two rankings into one consensus ranking.
//
//	rankmerge [-config file] [-format json|yaml] [-max-objects n] [-explain] A B
//
// A and B are ranking literals such as '[1, [2, 3]]' or @path to read one from
// a file (.yaml/.yml files are read as YAML, anything else as loose JSON).
//
// Exit codes: 0 success, 1 internal failure, 2 usage or input error,
// 3 object limit exceeded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alexsandra-Z/system-analysis-2025/codec"
	"github.com/Alexsandra-Z/system-analysis-2025/config"
	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
	"github.com/Alexsandra-Z/system-analysis-2025/service"
)

const (
	exitOK       = 0
	exitInternal = 1
	exitUsage    = 2
	exitLimit    = 3
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	fs := flag.NewFlagSet("rankmerge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath    = fs.String("config", "", "config file (.yaml, .yml, .json or .toml)")
		format     = fs.String("format", "", "output format: json or yaml")
		maxObjects = fs.Int("max-objects", 0, "object ceiling, 0 disables it")
		explain    = fs.Bool("explain", false, "print contradictions and clusters to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rankmerge [flags] A B")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitUsage
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "max-objects":
			cfg.Merge.MaxObjects = *maxObjects
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitUsage
	}
	outFormat, err := codec.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitUsage
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitUsage
	}

	a, err := readRanking(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge: ranking A:", err)
		return exitUsage
	}
	b, err := readRanking(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge: ranking B:", err)
		return exitUsage
	}

	svc := service.New(service.WithMaxObjects(cfg.Merge.MaxObjects), service.WithLogger(logger))
	res, err := svc.Merge(ctx, a, b)
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		switch service.Classify(err) {
		case service.KindInput:
			return exitUsage
		case service.KindLimit:
			return exitLimit
		default:
			return exitInternal
		}
	}

	out, err := codec.Encode(res.Ranking, outFormat)
	if err != nil {
		fmt.Fprintln(stderr, "rankmerge:", err)
		return exitInternal
	}
	fmt.Fprintln(stdout, out)
	if *explain {
		writeExplain(stderr, res)
	}

	return exitOK
}

// readRanking parses a literal, or the file named after a leading @.
func readRanking(arg string) (ranking.Ranking, error) {
	path, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return codec.Parse(arg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec.ParseYAML(string(data))
	default:
		return codec.Parse(string(data))
	}
}

func writeExplain(w io.Writer, res *consensus.Result) {
	fmt.Fprintf(w, "objects: %d\n", res.Objects)

	pairs := make([]string, len(res.Contradictions))
	for i, p := range res.Contradictions {
		pairs[i] = fmt.Sprintf("(%d,%d)", p.A, p.B)
	}
	fmt.Fprintf(w, "contradictions: %s\n", strings.Join(pairs, " "))

	clusters := make([]string, len(res.Clusters))
	for i, cl := range res.Clusters {
		clusters[i] = fmt.Sprint(cl)
	}
	fmt.Fprintf(w, "clusters: %s\n", strings.Join(clusters, " "))
	fmt.Fprintf(w, "residual: %t\n", res.Residual)
}
