package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const tokenUsername = "x-access-token"

// Author identifies who signs the commits. A zero value defers to the
// user.name and user.email of the git configuration.
type Author struct {
	Name  string
	Email string
}

// GitRepository implements repositories.VCSRepository with go-git, so no git
// binary is needed for cloning or committing.
type GitRepository struct {
	token    string
	author   Author
	progress io.Writer
}

// NewGitRepository creates a VCS repository. token authenticates HTTPS
// clones; SSH clones use the running SSH agent.
func NewGitRepository(token string, author Author, progress io.Writer) repositories.VCSRepository {
	return &GitRepository{
		token:    token,
		author:   author,
		progress: progress,
	}
}

// Clone performs a shallow, single-ref clone of url into dir. ref is tried
// as a branch first and as a tag when no such branch exists.
func (r *GitRepository) Clone(ctx context.Context, url, ref, dir string) (string, error) {
	repo, err := r.clone(ctx, url, plumbing.NewBranchReferenceName(ref), dir)
	if errors.Is(err, gogit.NoMatchingRefSpecError{}) || errors.Is(err, plumbing.ErrReferenceNotFound) {
		logger.Debugf("No branch %q found, trying tag", ref)
		repo, err = r.clone(ctx, url, plumbing.NewTagReferenceName(ref), dir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to clone %s at %q: %w", url, ref, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD of clone: %w", err)
	}
	return head.Hash().String(), nil
}

func (r *GitRepository) clone(
	ctx context.Context,
	url string,
	ref plumbing.ReferenceName,
	dir string,
) (*gogit.Repository, error) {
	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	opts := &gogit.CloneOptions{
		URL:           url,
		Auth:          r.auth(url),
		ReferenceName: ref,
		SingleBranch:  true,
		Depth:         1,
		Tags:          gogit.NoTags,
	}
	if r.progress != nil {
		opts.Progress = r.progress
	}
	return gogit.PlainCloneContext(ctx, dir, false, opts)
}

func (r *GitRepository) auth(url string) transport.AuthMethod {
	if r.token == "" || !entities.IsHTTPS(url) {
		return nil
	}
	return &githttp.BasicAuth{Username: tokenUsername, Password: r.token}
}

// Commit stages files in the repository that contains them and commits.
func (r *GitRepository) Commit(_ context.Context, files []string, message string) (string, error) {
	if len(files) == 0 {
		return "", errors.New("no files to commit")
	}

	first, err := filepath.Abs(files[0])
	if err != nil {
		return "", err
	}

	//nolint:exhaustruct // Minimal PlainOpenOptions initialization with required fields only
	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(first), &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return "", err
	}

	for _, file := range files {
		rel, relErr := relativeTo(root, file)
		if relErr != nil {
			return "", relErr
		}
		if _, addErr := worktree.Add(rel); addErr != nil {
			return "", fmt.Errorf("failed to stage %s: %w", rel, addErr)
		}
	}

	//nolint:exhaustruct // Author is optional, go-git falls back to git config
	opts := &gogit.CommitOptions{}
	if r.author.Name != "" {
		opts.Author = &object.Signature{Name: r.author.Name, Email: r.author.Email, When: time.Now()}
	}

	hash, err := worktree.Commit(message, opts)
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String(), nil
}

func relativeTo(root, file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	if resolved, evalErr := filepath.EvalSymlinks(abs); evalErr == nil {
		abs = resolved
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository at %s", file, root)
	}
	return filepath.ToSlash(rel), nil
}
