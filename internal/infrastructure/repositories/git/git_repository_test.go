//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/git"
)

var testAuthor = git.Author{Name: "Release Bot", Email: "release-bot@example.com"} //nolint:gochecknoglobals // test fixture

func initRepository(t *testing.T, files map[string]string) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}
	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: testAuthor.Name, Email: testAuthor.Email, When: time.Now()},
	})
	require.NoError(t, err)

	return dir, repo
}

func TestGitRepositoryCommit(t *testing.T) {
	t.Parallel()

	t.Run("should commit exactly the given file with the message", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t, map[string]string{
			"Cargo.toml": "[workspace]\n",
			"notes.txt":  "draft\n",
		})
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[workspace]\n# bumped\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("changed\n"), 0o644))
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		hash, err := vcs.Commit(context.Background(), []string{filepath.Join(dir, "Cargo.toml")}, "Bump dependencies")

		// then
		require.NoError(t, err)
		commit, commitErr := repo.CommitObject(plumbing.NewHash(hash))
		require.NoError(t, commitErr)
		assert.Equal(t, "Bump dependencies", commit.Message)
		assert.Equal(t, testAuthor.Name, commit.Author.Name)

		file, fileErr := commit.File("Cargo.toml")
		require.NoError(t, fileErr)
		content, contentErr := file.Contents()
		require.NoError(t, contentErr)
		assert.Equal(t, "[workspace]\n# bumped\n", content)

		worktree, wtErr := repo.Worktree()
		require.NoError(t, wtErr)
		status, statusErr := worktree.Status()
		require.NoError(t, statusErr)
		assert.Equal(t, gogit.Modified, status.File("notes.txt").Worktree)
		if manifestStatus, tracked := status["Cargo.toml"]; tracked {
			assert.Equal(t, gogit.Unmodified, manifestStatus.Worktree)
			assert.Equal(t, gogit.Unmodified, manifestStatus.Staging)
		}
	})

	t.Run("should find the repository from a nested manifest", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t, map[string]string{"README.md": "# test\n"})
		nested := filepath.Join(dir, "workspace")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, "Cargo.toml"), []byte("[workspace]\n"), 0o644))
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		hash, err := vcs.Commit(context.Background(), []string{filepath.Join(nested, "Cargo.toml")}, "Add workspace")

		// then
		require.NoError(t, err)
		commit, commitErr := repo.CommitObject(plumbing.NewHash(hash))
		require.NoError(t, commitErr)
		_, fileErr := commit.File("workspace/Cargo.toml")
		assert.NoError(t, fileErr)
	})

	t.Run("should return error outside of a repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "Cargo.toml")
		require.NoError(t, os.WriteFile(path, []byte("[workspace]\n"), 0o644))
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		_, err := vcs.Commit(context.Background(), []string{path}, "Bump")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open repository")
	})

	t.Run("should return error without files", func(t *testing.T) {
		t.Parallel()

		// given
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		_, err := vcs.Commit(context.Background(), nil, "Bump")

		// then
		require.Error(t, err)
	})
}

func TestGitRepositoryClone(t *testing.T) {
	t.Parallel()

	t.Run("should clone a branch and return its head commit", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t, map[string]string{"Cargo.toml": "[workspace]\n"})
		head, err := repo.Head()
		require.NoError(t, err)
		target := filepath.Join(t.TempDir(), "upstream")
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		hash, err := vcs.Clone(context.Background(), "file://"+dir, "master", target)

		// then
		require.NoError(t, err)
		assert.Equal(t, head.Hash().String(), hash)
		content, readErr := os.ReadFile(filepath.Join(target, "Cargo.toml"))
		require.NoError(t, readErr)
		assert.Equal(t, "[workspace]\n", string(content))
	})

	t.Run("should fall back to a tag when no branch has the name", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepository(t, map[string]string{"Cargo.toml": "[workspace]\n"})
		tagged, err := repo.Head()
		require.NoError(t, err)
		_, err = repo.CreateTag("v1.0", tagged.Hash(), nil)
		require.NoError(t, err)

		worktree, err := repo.Worktree()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[workspace]\n# next\n"), 0o644))
		_, err = worktree.Add("Cargo.toml")
		require.NoError(t, err)
		_, err = worktree.Commit("next", &gogit.CommitOptions{
			Author: &object.Signature{Name: testAuthor.Name, Email: testAuthor.Email, When: time.Now()},
		})
		require.NoError(t, err)

		target := filepath.Join(t.TempDir(), "upstream")
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		hash, err := vcs.Clone(context.Background(), "file://"+dir, "v1.0", target)

		// then
		require.NoError(t, err)
		assert.Equal(t, tagged.Hash().String(), hash)
		content, readErr := os.ReadFile(filepath.Join(target, "Cargo.toml"))
		require.NoError(t, readErr)
		assert.Equal(t, "[workspace]\n", string(content))
	})

	t.Run("should return error when the upstream does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "does-not-exist")
		target := filepath.Join(t.TempDir(), "upstream")
		vcs := git.NewGitRepository("", testAuthor, nil)

		// when
		hash, err := vcs.Clone(context.Background(), missing, "main", target)

		// then
		require.Error(t, err)
		assert.Empty(t, hash)
		assert.Contains(t, err.Error(), "failed to clone")
	})
}
