package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"blueprint/internal/analyzer"
	"blueprint/internal/config"
	"blueprint/internal/logging"
)

var (
	analyzeOutput   string
	analyzeCompress bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project-path>",
	Short: "Analyze an existing project and generate a blueprint",
	Long: `Analyze an existing project tree and generate a blueprint document.

The blueprint is written as indented JSON to stdout, or to a file with -o.
Parent directories of the output file are created as needed.

Examples:
  # Print the blueprint
  blueprint analyze ./my-project

  # Write it to a file
  blueprint analyze ./my-project -o out/blueprint.json

  # Gzip the output
  blueprint analyze ./my-project -o out/blueprint.json.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output file for the blueprint (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeCompress, "compress", false, "Gzip-compress the written blueprint")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	projectPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}
	info, err := os.Stat(projectPath)
	if err != nil {
		return fmt.Errorf("project path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project path %s is not a directory", projectPath)
	}

	cfg, err := config.Load(projectPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})

	doc := analyzer.New(projectPath, cfg.Ignore, logger).Analyze(cmd.Context())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}
	data = append(data, '\n')

	if analyzeOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	compress := analyzeCompress || strings.HasSuffix(analyzeOutput, ".gz")
	if err := writeBlueprint(analyzeOutput, data, compress); err != nil {
		return fmt.Errorf("write blueprint: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Blueprint saved to %s\n", analyzeOutput)
	return nil
}

// writeBlueprint writes the encoded document atomically: a uuid-named temp
// file in the target directory, then a rename. Parent directories are
// created as needed.
func writeBlueprint(path string, data []byte, compress bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
