package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
)

const (
	// ProjectFile marks the root of a Maven project.
	ProjectFile = "pom.xml"

	// gitEntry is a directory in regular clones and a file in worktrees.
	gitEntry = ".git"
)

// FindProjectRoot returns the closest directory at or above path that
// contains a [ProjectFile]. The search stops at the root of the git
// repository containing path, if there is one.
func FindProjectRoot(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	for {
		if isFile(filepath.Join(dir, ProjectFile)) {
			return dir, nil
		}

		if exists(filepath.Join(dir, gitEntry)) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf("%s: %w", ProjectFile, bumperrors.ErrFileNotFound)
}

func isFile(path string) bool {
	fi, err := os.Lstat(path)

	return err == nil && !fi.IsDir()
}

func exists(path string) bool {
	_, err := os.Lstat(path)

	return err == nil
}
