package git

import (
	"context"
	"errors"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"github.com/go-git/go-git/v5"
)

// classifyCheckoutError translates go-git failures into ClassifiedErrors
// carrying the tree and tag involved.
func classifyCheckoutError(err error, dir, tag string) error {
	if err == nil {
		return nil
	}
	if _, ok := ferrors.AsClassified(err); ok {
		return err
	}

	msg := "git checkout failed"
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		msg = "source tree is not a git repository"
	case errors.Is(err, git.ErrTagNotFound):
		msg = "tag not found"
	case errors.Is(err, git.ErrUnstagedChanges):
		msg = "working tree has uncommitted changes"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		msg = "checkout canceled"
	}

	return ferrors.GitError(msg).
		WithCause(err).
		WithContext("dir", dir).
		WithContext("tag", tag).
		Build()
}
