package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TaggedRepo is a throwaway repository whose commits are tagged.
type TaggedRepo struct {
	Repo     *git.Repository
	Worktree *git.Worktree
	Dir      string
	// Commits maps each tag to the commit it resolves to.
	Commits map[string]plumbing.Hash
}

// SetupTestGitRepo initializes a temporary git repository for testing.
// Returns the repository, its worktree, and the absolute path to the temporary directory.
func SetupTestGitRepo(t *testing.T) (*git.Repository, *git.Worktree, string) {
	t.Helper()

	tempDir := t.TempDir()

	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	return repo, w, tempDir
}

// NewTaggedRepo creates a repository with one commit per tag. Each commit
// writes VERSION containing the tag name. Tags listed in annotated get an
// annotated tag object; the rest are lightweight.
func NewTaggedRepo(t *testing.T, tags []string, annotated ...string) *TaggedRepo {
	t.Helper()
	repo, w, dir := SetupTestGitRepo(t)

	isAnnotated := make(map[string]bool, len(annotated))
	for _, a := range annotated {
		isAnnotated[a] = true
	}

	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(1370000000, 0)}
	tr := &TaggedRepo{Repo: repo, Worktree: w, Dir: dir, Commits: make(map[string]plumbing.Hash, len(tags))}

	for _, tag := range tags {
		if err := os.WriteFile(filepath.Join(dir, "VERSION"), []byte(tag), 0o600); err != nil {
			t.Fatalf("write VERSION: %v", err)
		}
		if _, err := w.Add("VERSION"); err != nil {
			t.Fatalf("add VERSION: %v", err)
		}
		hash, err := w.Commit("release "+tag, &git.CommitOptions{Author: sig, Committer: sig})
		if err != nil {
			t.Fatalf("commit %s: %v", tag, err)
		}
		var opts *git.CreateTagOptions
		if isAnnotated[tag] {
			opts = &git.CreateTagOptions{Tagger: sig, Message: "Release " + tag}
		}
		if _, err := repo.CreateTag(tag, hash, opts); err != nil {
			t.Fatalf("tag %s: %v", tag, err)
		}
		tr.Commits[tag] = hash
	}
	return tr
}

// ReadVersion returns the VERSION file of the working tree.
func (tr *TaggedRepo) ReadVersion(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(tr.Dir, "VERSION"))
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}
	return string(data)
}

// Head returns the commit HEAD points at.
func (tr *TaggedRepo) Head(t *testing.T) plumbing.Hash {
	t.Helper()
	ref, err := tr.Repo.Head()
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	return ref.Hash()
}
