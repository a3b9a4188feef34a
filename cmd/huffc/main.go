// Command huffc compresses and decompresses files with the huffc
// package's Huffman coder.
//
// Usage:
//
//	huffc -h
//	huffc -c <in> [out] [-debug]
//	huffc -d <in> [out] [-debug]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/huffc/huffc"
)

const (
	compressExt   = ".hc"
	decompressExt = ".hd"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the argument surface described in the file format's
// external interfaces table. It never calls os.Exit itself so it can be
// exercised from tests.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "no arguments given; at least one is required.")
		printUsage()
		return 1
	}
	if len(args) > 4 {
		fmt.Fprintln(os.Stderr, "too many arguments given.")
		printUsage()
		return 1
	}

	mode := args[0]
	if mode != "-c" && mode != "-d" && mode != "-h" {
		if mode == "-debug" {
			fmt.Fprintln(os.Stderr, "-debug must be given together with -c or -d.")
		} else {
			fmt.Fprintln(os.Stderr, "unrecognized argument:", mode)
		}
		printUsage()
		return 1
	}

	if mode == "-h" {
		printUsage()
		return 0
	}

	rest := args[1:]
	debug := len(rest) > 0 && rest[len(rest)-1] == "-debug"
	if debug {
		rest = rest[:len(rest)-1]
	}
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "an input file is required.")
		printUsage()
		return 1
	}

	setLogLevel(debug)

	in := rest[0]
	var out string
	if len(rest) >= 2 {
		out = rest[1]
	} else if mode == "-c" {
		out = in + compressExt
	} else {
		out = in + decompressExt
	}

	var err error
	if mode == "-c" {
		err = runCompress(in, out)
	} else {
		err = runDecompress(in, out)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffc:", err)
		return 1
	}
	return 0
}

func setLogLevel(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runCompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input %q: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("opening output %q: %w", outPath, err)
	}
	defer out.Close()

	stats, err := huffc.Compress(out, in)
	if err != nil {
		return fmt.Errorf("compressing %q: %w", inPath, err)
	}

	slog.Debug("compressed",
		"in", inPath, "out", outPath,
		"symbols", stats.SymbolCount,
		"total", stats.TotalSymbols,
		"payloadBits", stats.PayloadBits,
		"headerBytes", stats.HeaderBytes)
	return nil
}

func runDecompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input %q: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("opening output %q: %w", outPath, err)
	}
	defer out.Close()

	if err := huffc.Decompress(out, in); err != nil {
		return fmt.Errorf("decompressing %q: %w", inPath, err)
	}

	slog.Debug("decompressed", "in", inPath, "out", outPath)
	return nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage:
  huffc -h                           print this help
  huffc -c <in> [out] [-debug]       compress in, writing to out (default <in>.hc)
  huffc -d <in> [out] [-debug]       decompress in, writing to out (default <in>.hd)
`)
}
