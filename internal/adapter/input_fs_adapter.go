// Package adapter contains infrastructure adapters for the advent CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	m "advent.dev/pkg/advent/internal/model"
)

// InputAdapter loads puzzle input so the domain layer never touches the disk directly.
type InputAdapter interface {
	// ReadInput returns the whole content of the input file.
	ReadInput(ctx context.Context, path m.Path) (string, error)

	// HashInput returns a stable fingerprint (SHA-256) of the input content.
	HashInput(content string) string
}

// LocalInputAdapter reads input files from the local filesystem.
type LocalInputAdapter struct{}

// NewLocalInputAdapter constructs a LocalInputAdapter.
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{}
}

// ReadInput loads the input file at path.
func (a *LocalInputAdapter) ReadInput(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if path == "" {
		return "", fmt.Errorf("%w: no input path given", m.ErrInputNotFound)
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", m.ErrInputNotFound, path)
		}

		slog.Error("Failed to read input", "path", path, "error", err)

		return "", fmt.Errorf("read input %s: %w", path, err)
	}

	slog.Debug("Read input", "path", path, "bytes", len(content))

	return string(content), nil
}

// HashInput returns the hex SHA-256 of content.
func (a *LocalInputAdapter) HashInput(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum)
}
