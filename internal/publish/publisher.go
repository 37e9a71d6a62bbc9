package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalix127/inspira-ui/internal/build"
	"github.com/kalix127/inspira-ui/internal/logger"
)

// Publisher replaces the output tree with a fully computed artifact set.
// Callers render everything in memory first, so a failure before Publish
// leaves the previous output untouched.
type Publisher struct {
	log *logger.Logger
}

// New creates a Publisher.
func New(log *logger.Logger) *Publisher {
	return &Publisher{log: log}
}

// Publish wipes the listed directories under root, then writes every
// artifact via a temporary file and rename so no reader ever observes a
// partially written file.
func (p *Publisher) Publish(ctx context.Context, root string, wipe []string, artifacts []build.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, dir := range wipe {
		full := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.RemoveAll(full); err != nil {
			return fmt.Errorf("failed to clear output directory %s: %w", full, err)
		}
	}

	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeArtifact(root, artifact); err != nil {
			return err
		}
		p.log.Debug("artifact written", "path", artifact.Path, "bytes", len(artifact.Data))
	}

	p.log.Info("artifacts published", "root", root, "count", len(artifacts))
	return nil
}

func writeArtifact(root string, artifact build.Artifact) error {
	full := filepath.Join(root, filepath.FromSlash(artifact.Path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", artifact.Path, err)
	}

	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file for %s: %w", artifact.Path, err)
	}

	if err := os.Rename(tmp, full); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temporary file for %s: %w", artifact.Path, err)
	}

	return nil
}
