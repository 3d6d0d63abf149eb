package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmorgan81/logoforge/internal/log"
)

// FileWriter writes generated logos to the local filesystem for the CLI.
type FileWriter struct{}

func (*FileWriter) Write(ctx context.Context, name string, data []byte) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("file")
	log.Info("writing", "file", name, "bytes", len(data))

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return os.WriteFile(name, data, 0o600)
}
