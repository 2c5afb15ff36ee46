package repositories

import "context"

// VCSRepository abstracts the version-control operations of a sync run.
type VCSRepository interface {
	// Clone fetches the tip of ref from url into dir and returns its commit hash.
	Clone(ctx context.Context, url, ref, dir string) (string, error)

	// Commit stages exactly the given files of the repository containing
	// them and commits them with message. It returns the new commit hash.
	Commit(ctx context.Context, files []string, message string) (string, error)
}
