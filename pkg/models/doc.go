// Package models provides shared data models and types for docforge.
//
// This package contains the configuration section types that are shared
// between the configuration layer, the renderer, and the CLI.
//
// # Configuration Sections
//
// The package provides structured configuration types:
//   - [ProjectConfig]: project identity and versioning
//   - [SourceConfig]: documentation source layout and extension list
//   - [HTMLConfig]: HTML builder output options
//
// Output-format specs for the non-HTML builders are also defined here:
//   - [DocumentSpec]: a LaTeX document entry
//   - [ManPageSpec]: a manual page entry
//   - [TexinfoSpec]: a Texinfo document entry
//
// # Autoclass Content
//
// The autoclass content mode controls which docstrings the builder merges
// into a class entry. Use [AutoclassContent] and its constants:
//
//	mode := models.AutoclassBoth
//	if mode.IsValid() {
//	    fmt.Println("Valid mode:", mode)
//	}
package models
