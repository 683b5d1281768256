package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-condmark/pkg/condmark"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Println("condmark version " + version)
	case "render":
		if err := runRender(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "condmark:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("condmark - conditional comment-marker processor")
	fmt.Println()
	fmt.Println("Usage: condmark <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  render [-data file] [-o file] <template>    Process a template file")
	fmt.Println("  version                                     Show version information")
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	dataPath := fs.String("data", "", "JSON or YAML file holding the data mapping")
	outPath := fs.String("o", "", "write the result to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: condmark render [-data file] [-o file] <template>")
	}

	template, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	data := condmark.TemplateData{}
	if *dataPath != "" {
		data, err = loadData(*dataPath)
		if err != nil {
			return err
		}
	}

	result := condmark.Process(string(template), data)

	if *outPath != "" {
		// Atomic write so a half-rendered file never replaces a good one
		if err := atomic.WriteFile(*outPath, strings.NewReader(result)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = io.WriteString(os.Stdout, result)
	return err
}

// loadData reads the data mapping from a JSON or YAML file, keyed off the
// file extension. YAML string-keyed maps decode to nested
// map[string]interface{}, which is exactly what dotted-path resolution walks.
func loadData(path string) (condmark.TemplateData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	data := condmark.TemplateData{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML data: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse JSON data: %w", err)
		}
	}
	return data, nil
}
