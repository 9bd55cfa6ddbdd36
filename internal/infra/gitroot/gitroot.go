// Package gitroot resolves the git repository root enclosing a directory.
package gitroot

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/termhere/termhere/internal/domain"
)

// Resolver implements domain.RepoResolver using go-git.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Ensure Resolver implements domain.RepoResolver.
var _ domain.RepoResolver = (*Resolver)(nil)

// Resolve returns the worktree root of the repository containing dir.
// Directories outside any repository, and bare repositories, resolve to
// domain.ErrNotInRepository.
func (r *Resolver) Resolve(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", domain.ErrNotInRepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", domain.ErrNotInRepository
		}
		return "", fmt.Errorf("resolve worktree: %w", err)
	}

	return wt.Filesystem.Root(), nil
}
