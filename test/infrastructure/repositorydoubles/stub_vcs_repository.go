//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// StubVCSRepository is a stub implementation of repositories.VCSRepository.
// Clone materializes UpstreamFiles (relative path -> content) into the target directory.
type StubVCSRepository struct {
	UpstreamFiles map[string]string
	HeadHash      string
	CloneErr      error
	CommitHash    string
	CommitErr     error

	CloneCallCount  int
	LastCloneURL    string
	LastCloneRef    string
	LastCloneDir    string
	CommitCallCount int
	LastFiles       []string
	LastMessage     string
}

var _ repositories.VCSRepository = (*StubVCSRepository)(nil)

func (s *StubVCSRepository) Clone(_ context.Context, url, ref, dir string) (string, error) {
	s.CloneCallCount++
	s.LastCloneURL = url
	s.LastCloneRef = ref
	s.LastCloneDir = dir
	if s.CloneErr != nil {
		return "", s.CloneErr
	}

	for rel, content := range s.UpstreamFiles {
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return "", err
		}
	}
	return s.HeadHash, nil
}

func (s *StubVCSRepository) Commit(_ context.Context, files []string, message string) (string, error) {
	s.CommitCallCount++
	s.LastFiles = files
	s.LastMessage = message
	return s.CommitHash, s.CommitErr
}
