package git

import (
	"context"
	"errors"
	"log/slog"

	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitCheckouter checks out tags in-process.
type GoGitCheckouter struct{}

// NewGoGitCheckouter creates the in-process backend.
func NewGoGitCheckouter() *GoGitCheckouter { return &GoGitCheckouter{} }

func (c *GoGitCheckouter) Checkout(ctx context.Context, dir, tag string) error {
	if err := ctx.Err(); err != nil {
		return classifyCheckoutError(err, dir, tag)
	}

	repository, err := git.PlainOpen(dir)
	if err != nil {
		return classifyCheckoutError(err, dir, tag)
	}

	commit, err := resolveTagCommit(repository, tag)
	if err != nil {
		return classifyCheckoutError(err, dir, tag)
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return classifyCheckoutError(err, dir, tag)
	}

	slog.InfoContext(ctx, "Checking out tag", logfields.Dir(dir), logfields.Tag(tag), slog.String("commit", commit.String()[:8]))
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: commit}); err != nil {
		return classifyCheckoutError(err, dir, tag)
	}
	return nil
}

// resolveTagCommit returns the commit a tag points at, peeling annotated tags.
func resolveTagCommit(repository *git.Repository, tag string) (plumbing.Hash, error) {
	ref, err := repository.Tag(tag)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	tagObj, err := repository.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, err := tagObj.Commit()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return commit.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// Lightweight tag: the reference names the commit directly.
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, err
	}
}
