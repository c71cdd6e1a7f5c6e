package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	oerrors "github.com/forgeframework/forge/internal/errors"
	"github.com/forgeframework/forge/internal/output"
	"github.com/forgeframework/forge/internal/prompt"
)

// Emitter applies a rendered plan to the filesystem. Directory creation and
// file writes are not transactional: a failure partway through leaves a
// partially populated target directory.
type Emitter struct {
	// Confirm is consulted before writing into a pre-existing non-empty
	// directory that is not the current working directory.
	Confirm prompt.Confirmer
}

// Emit writes the rendered files under targetDir, creating directories as
// needed. All checks and the confirmation happen before the first write.
func (e *Emitter) Emit(files []RenderedFile, targetDir string) error {
	isCwd, err := isCurrentDir(targetDir)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}

	if err := e.prepareTargetDir(targetDir, isCwd); err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(targetDir, filepath.FromSlash(f.Path))

		if err := ensureDir(filepath.Dir(path)); err != nil {
			return err
		}

		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		output.Debug("created file", "path", f.Path)
	}

	return nil
}

// prepareTargetDir checks the target's pre-generation state: absent (create
// it), empty (proceed), or non-empty (confirm first). The current working
// directory is never created and never requires confirmation.
func (e *Emitter) prepareTargetDir(targetDir string, isCwd bool) error {
	if isCwd {
		return nil
	}

	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		return ensureDir(targetDir)
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewPathConflictError(
			fmt.Sprintf("%s exists and is not a directory", targetDir), targetDir)
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	ok, err := e.Confirm.Confirm(
		fmt.Sprintf("The directory %s already exists and is not empty. Continue?", targetDir))
	if err != nil {
		return fmt.Errorf("confirmation prompt: %w", err)
	}
	if !ok {
		return oerrors.Wrap(oerrors.ErrUserAborted, "generation cancelled")
	}

	return nil
}

// ensureDir creates a directory and its parents, idempotently. A pre-existing
// non-directory on the path surfaces as a path conflict.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return oerrors.NewPathConflictError(
				fmt.Sprintf("a file blocks the directory %s", dir), dir)
		}
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return oerrors.NewPathConflictError(
				fmt.Sprintf("%s exists and is not a directory", dir), dir)
		}
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// isCurrentDir reports whether targetDir refers to the working directory.
func isCurrentDir(targetDir string) (bool, error) {
	if filepath.Clean(targetDir) == "." {
		return true, nil
	}

	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return false, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return false, err
	}
	return abs == cwd, nil
}
