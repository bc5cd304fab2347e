package docgen

import (
	"path/filepath"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/process"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// mainPageEnv makes sdoc use the README as the landing page of the language docs.
const mainPageEnv = "SDOC_FORCE_MAIN_PAGE"

// Commands builds the external invocations of a run from the configuration.
type Commands struct {
	cfg *config.Config
}

// NewCommands returns a command builder for cfg.
func NewCommands(cfg *config.Config) Commands {
	return Commands{cfg: cfg}
}

// LanguageDocs generates the language docs into target.
func (c Commands) LanguageDocs(target string) process.Command {
	return process.Command{
		Name: c.cfg.Tools.Ruby,
		Args: []string{
			"-I", c.cfg.SdocLibDir(), c.cfg.SdocBin(),
			"--github", "--all",
			"-o", target,
			c.cfg.LanguageDir,
		},
		Env: map[string]string{mainPageEnv: "README"},
	}
}

// FrameworkDocs generates the framework docs in place; the result lands in
// FrameworkDocsOutput.
func (c Commands) FrameworkDocs() process.Command {
	return process.Command{
		Name: c.cfg.Tools.Rake,
		Args: []string{"-I", c.cfg.SdocLibDir(), "rdoc"},
		Dir:  c.cfg.FrameworkDir,
	}
}

// FrameworkDocsOutput is where the framework doc build leaves its output.
func (c Commands) FrameworkDocsOutput() string {
	return filepath.Join(c.cfg.FrameworkDir, "doc", "rdoc")
}

// Merge combines the language and framework docs of pair into target.
func (c Commands) Merge(pair versions.Pair, target, languageDocs, frameworkDocs string) process.Command {
	return process.Command{
		Name: c.cfg.Tools.Ruby,
		Args: []string{
			"-I", c.cfg.SdocLibDir(), c.cfg.SdocMergeBin(),
			"--op", target,
			"--title", MergeTitle(c.cfg.Names, pair),
			"--names", MergeNames(c.cfg.Names),
			languageDocs, frameworkDocs,
		},
	}
}
