package main

import (
	"github.com/spf13/cobra"

	"blueprint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Blueprint - project structure extractor",
	Long: `Blueprint scans an existing project tree and heuristically extracts its
structure (database models, API routes, frontend components, dependency
manifests) into a blueprint document consumed by a downstream
project-generation system. Extraction is best-effort pattern matching,
not semantic analysis.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("blueprint version {{.Version}}\n")
}
