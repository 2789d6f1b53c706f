package template

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var embeddedTemplates embed.FS

// ScaffoldFS returns the embedded scaffold filesystem rooted at the
// deployable tree.
func ScaffoldFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The subtree is embedded at compile time; failure here means a
		// broken build, not a runtime condition.
		panic(err)
	}
	return sub
}

// Deployer extracts and deploys scaffold files from an embedded filesystem
// to a project root directory.
type Deployer interface {
	// Deploy extracts all scaffold files and writes them to projectRoot.
	// Files ending in .tmpl are rendered with the context and saved
	// without the .tmpl suffix. Existing files are left untouched unless
	// the deployer was created with overwrite enabled.
	Deploy(ctx context.Context, projectRoot string, sctx *ScaffoldContext) error

	// ExtractTemplate returns the raw content of a single template by name.
	ExtractTemplate(name string) ([]byte, error)

	// ListTemplates returns the relative deployment paths of all scaffold files.
	ListTemplates() []string
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys      fs.FS
	renderer  Renderer
	overwrite bool
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from ScaffoldFS; in tests use
// testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// NewDeployerWithOverwrite creates a Deployer that replaces existing files.
// Used for forced re-initialization after the previous tree was backed up.
func NewDeployerWithOverwrite(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys), overwrite: true}
}

// Deploy walks the embedded filesystem and writes every file to projectRoot.
// Files ending in .tmpl are rendered and saved without the .tmpl suffix.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, sctx *ScaffoldContext) error {
	projectRoot = filepath.Clean(projectRoot)

	return fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." {
			return nil
		}

		// Directories are created on demand
		if entry.IsDir() {
			return nil
		}

		if err := validateDeployPath(projectRoot, path); err != nil {
			return err
		}

		isTemplate := strings.HasSuffix(path, ".tmpl")
		var content []byte
		var destRelPath string

		if isTemplate {
			rendered, renderErr := d.renderer.Render(path, sctx)
			if renderErr != nil {
				return fmt.Errorf("scaffold render %q: %w", path, renderErr)
			}
			content = rendered
			destRelPath = strings.TrimSuffix(path, ".tmpl")
		} else {
			rawContent, readErr := fs.ReadFile(d.fsys, path)
			if readErr != nil {
				return fmt.Errorf("scaffold read %q: %w", path, readErr)
			}
			content = rawContent
			destRelPath = path
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))

		// Existing file protection: never clobber user files unless the
		// caller asked for a forced re-initialization.
		if !d.overwrite {
			if _, statErr := os.Stat(destPath); statErr == nil {
				return nil
			}
		}

		destDir := filepath.Dir(destPath)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("scaffold mkdir %q: %w", destDir, err)
		}

		if err := os.WriteFile(destPath, content, 0o644); err != nil {
			return fmt.Errorf("scaffold write %q: %w", destPath, err)
		}

		return nil
	})
}

// ExtractTemplate returns the content of a single named template.
func (d *deployer) ExtractTemplate(name string) ([]byte, error) {
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}

// ListTemplates returns sorted relative paths of all files in the embedded FS.
func (d *deployer) ListTemplates() []string {
	var list []string

	_ = fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if path == "." || entry.IsDir() {
			return nil
		}
		// Strip .tmpl suffix to return deployment target paths
		targetPath := path
		if before, ok := strings.CutSuffix(path, ".tmpl"); ok {
			targetPath = before
		}
		list = append(list, targetPath)
		return nil
	})

	return list
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
