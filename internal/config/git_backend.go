package config

import "git.home.luguber.info/inful/railsdocs/internal/foundation/normalization"

// GitBackend selects how source trees are checked out.
type GitBackend string

const (
	// GitBackendExec runs "<git> checkout <tag>" as an external command.
	GitBackendExec GitBackend = "exec"
	// GitBackendGoGit checks out in-process with go-git.
	GitBackendGoGit GitBackend = "go-git"
)

var gitBackendNormalizer = normalization.NewNormalizer("git backend", map[string]GitBackend{
	"exec":   GitBackendExec,
	"go-git": GitBackendGoGit,
	"gogit":  GitBackendGoGit,
}, GitBackendExec)

// ParseGitBackend normalises raw, rejecting unknown values.
func ParseGitBackend(raw string) (GitBackend, error) {
	return gitBackendNormalizer.NormalizeWithError(raw)
}
