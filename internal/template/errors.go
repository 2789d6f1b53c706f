// Package template deploys the embedded project scaffold: section files,
// the master document, and a convenience Makefile.
package template

import "errors"

// Sentinel errors for scaffold operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrMissingTemplateKey indicates the template referenced a key absent
	// from the scaffold context.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates a dynamic token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")

	// ErrPathTraversal indicates a template path escaping the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
