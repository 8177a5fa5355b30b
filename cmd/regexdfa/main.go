package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/internal/config"
	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexdfa"
)

func main() {
	pattern := flag.String("re", "", "pattern to convert")
	alphabet := flag.String("alphabet", "", "alphabet symbols, in order")
	batch := flag.String("config", "", "HCL batch file with conversion blocks")
	format := flag.String("format", "json", "output format: json or dot")
	out := flag.String("o", "-", "output file, or directory in batch mode (- = stdout)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	setupLogging(*logLevel)

	if *format != "json" && *format != "dot" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	switch {
	case *batch != "":
		if err := runBatch(*batch, *format, *out); err != nil {
			slog.Error("batch conversion failed", "error", err)
			os.Exit(1)
		}
	case *pattern != "":
		if err := runOne(*pattern, *alphabet, *format, *out); err != nil {
			slog.Error("conversion failed", "error", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: regexdfa -re <pattern> -alphabet <symbols> [-format json|dot] [-o file]")
		fmt.Fprintln(os.Stderr, "       regexdfa -config batch.hcl [-format json|dot] [-o dir]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func runOne(pattern, alphabet, format, out string) error {
	dfa, err := regexdfa.Convert(pattern, alphabet)
	if err != nil {
		return err
	}
	slog.Info("converted",
		"regex", pattern,
		"alphabet", alphabet,
		"states", len(dfa.Transitions),
		"accepting", len(dfa.AcceptStates),
		"dead", len(dfa.DeadStates))
	data, err := encode(dfa, format)
	if err != nil {
		return err
	}
	return write(out, data)
}

func runBatch(path, format, out string) error {
	file, err := config.Load(path)
	if err != nil {
		return err
	}
	slog.Info("loaded batch file", "path", path, "conversions", len(file.Conversions))
	for _, c := range file.Conversions {
		dfa, err := regexdfa.Convert(c.Regex, c.Alphabet)
		if err != nil {
			return fmt.Errorf("conversion %q: %w", c.Name, err)
		}
		data, err := encode(dfa, format)
		if err != nil {
			return err
		}
		target := "-"
		if out != "-" {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			target = filepath.Join(out, c.Name+"."+format)
		}
		if err := write(target, data); err != nil {
			return err
		}
		slog.Info("converted", "name", c.Name, "regex", c.Regex, "states", len(dfa.Transitions), "output", target)
	}
	return nil
}

func encode(dfa *regexdfa.DFA, format string) ([]byte, error) {
	if format == "dot" {
		var buf bytes.Buffer
		if err := dfa.WriteDOT(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	data, err := json.MarshalIndent(dfa, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func write(target string, data []byte) error {
	if target == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
