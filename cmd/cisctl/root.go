package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diamondpixel/Chunkis/cis"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	mappingPath string
)

var rootCmd = &cobra.Command{
	Use:   "cisctl",
	Short: "Inspect CIS world-edit region files",
	Long: `cisctl decodes CIS region and chunk files: block change lists,
global palettes, per-slot statistics, and GLB/JSON exports. Pass a
mapping file (global_ids.json) to resolve numeric block ids to names.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&mappingPath, "mapping", "m", "", "Path to global_ids.json id mapping")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadResolver loads the --mapping file when one was given. A nil resolver
// is valid; ids then render as unknown_<id>.
func loadResolver() (cis.Resolver, error) {
	if mappingPath == "" {
		return nil, nil
	}
	m, err := cis.LoadMapping(mappingPath)
	if err != nil {
		return nil, err
	}
	printVerbose("Loaded %d block mappings from %s\n", len(m), mappingPath)
	return m, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	return writeJSONTo(os.Stdout, v)
}

func writeJSONTo(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
