package repositories

import (
	"os"

	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/zkvtools/internal/domain/repositories"
	cargoRepo "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/cargo"
	composeRepo "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/compose"
	gitRepo "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/github"
	shellRepo "github.com/rios0rios0/zkvtools/internal/infrastructure/repositories/shell"
)

// VCSFactory creates a VCSRepository for the given credentials and commit author.
type VCSFactory func(token, authorName, authorEmail string) domainRepos.VCSRepository

// CheckerFactory creates a CheckerRepository running commands through shell.
type CheckerFactory func(shell string) domainRepos.CheckerRepository

// NewVCSFactory returns the go-git backed factory, reporting clone progress on stderr.
func NewVCSFactory() VCSFactory {
	return func(token, authorName, authorEmail string) domainRepos.VCSRepository {
		return gitRepo.NewGitRepository(token, gitRepo.Author{Name: authorName, Email: authorEmail}, os.Stderr)
	}
}

// NewCheckerFactory returns the subprocess backed factory streaming to the terminal.
func NewCheckerFactory() CheckerFactory {
	return func(shell string) domainRepos.CheckerRepository {
		return shellRepo.NewCheckerRepository(shell, os.Stdout, os.Stderr)
	}
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register CI registry with all provider factories
	if err := container.Provide(func() *CIRegistry {
		reg := NewCIRegistry()
		reg.Register("github", ghRepo.NewGitHubCIRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register factories for repositories configured at run time
	if err := container.Provide(NewVCSFactory); err != nil {
		return err
	}
	if err := container.Provide(NewCheckerFactory); err != nil {
		return err
	}

	// Register stateless repositories
	if err := container.Provide(cargoRepo.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(composeRepo.NewComposeRepository); err != nil {
		return err
	}
	if err := container.Provide(composeRepo.NewKeyRepository); err != nil {
		return err
	}

	return nil
}
