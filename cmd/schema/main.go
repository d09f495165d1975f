package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/hnreader/pkg/config"
)

// writes the config JSON schema to the given file, "-" for stdout.
// with --check compares the generated schema to the file instead and fails on drift.
func main() {
	var opts struct {
		Check bool `long:"check" description:"verify the file matches the generated schema"`
	}
	args, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	outputPath := "schema.json"
	if len(args) > 0 {
		outputPath = args[0]
	}

	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}
	data = append(data, '\n')

	switch {
	case opts.Check:
		existing, err := os.ReadFile(outputPath) //nolint:gosec // path comes from the command line
		if err != nil {
			log.Fatalf("failed to read schema file: %v", err)
		}
		if !bytes.Equal(bytes.TrimSpace(existing), bytes.TrimSpace(data)) {
			log.Fatalf("schema %s is out of date, run go generate ./pkg/config", outputPath)
		}
		fmt.Printf("Schema %s is up to date\n", outputPath)
	case outputPath == "-":
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("failed to write schema: %v", err)
		}
	default:
		if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
			log.Fatalf("failed to write schema file: %v", err)
		}
		fmt.Printf("Schema generated successfully at %s\n", outputPath)
	}
}
