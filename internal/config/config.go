// Package config holds the settings of a generation run.
//
// There is no configuration file: values come from CLI flags and environment
// variables (optionally seeded from .env files), and are validated here before
// any external command runs.
package config

import (
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/workspace"
)

// Config is the generation request plus the tool and naming settings.
// It is fixed for the lifetime of a run.
type Config struct {
	// OutputDir is the root under which one directory per version pair is published.
	OutputDir string `yaml:"output_dir"`
	// SdocDir is the sdoc checkout providing lib/, bin/sdoc and bin/sdoc-merge.
	SdocDir string `yaml:"sdoc_dir"`
	// LanguageDir is the Ruby source tree.
	LanguageDir string `yaml:"language_dir"`
	// FrameworkDir is the Rails source tree.
	FrameworkDir string `yaml:"framework_dir"`

	Tools      Tools           `yaml:"tools"`
	GitBackend GitBackend      `yaml:"git_backend"`
	Names      Names           `yaml:"names"`
	Workspace  WorkspaceConfig `yaml:"workspace"`
}

// Tools names the executables invoked during a run.
type Tools struct {
	Ruby string `yaml:"ruby"`
	Rake string `yaml:"rake"`
	Git  string `yaml:"git"`
}

// Names holds the display names of the two projects.
type Names struct {
	// LanguageTitle and FrameworkTitle appear in the merged title and --names.
	LanguageTitle  string `yaml:"language_title"`
	FrameworkTitle string `yaml:"framework_title"`
	// LanguageOutput and FrameworkOutput build the published directory name.
	LanguageOutput  string `yaml:"language_output"`
	FrameworkOutput string `yaml:"framework_output"`
}

// WorkspaceConfig controls where the temporary workspace is created.
type WorkspaceConfig struct {
	BaseDir string `yaml:"base_dir,omitempty"`
	Prefix  string `yaml:"prefix"`
}

// Defaults returns a Config with tool and naming defaults filled in and the
// four request paths empty.
func Defaults() Config {
	return Config{
		Tools: Tools{
			Ruby: "ruby",
			Rake: "rake",
			Git:  "git",
		},
		GitBackend: GitBackendExec,
		Names: Names{
			LanguageTitle:   "Ruby",
			FrameworkTitle:  "Rails",
			LanguageOutput:  "Ruby",
			FrameworkOutput: "Ruby on Rails",
		},
		Workspace: WorkspaceConfig{Prefix: workspace.DefaultPrefix},
	}
}

// SdocLibDir is passed to ruby and rake with -I.
func (c *Config) SdocLibDir() string {
	return filepath.Join(c.SdocDir, "lib")
}

// SdocBin is the documentation generator script.
func (c *Config) SdocBin() string {
	return filepath.Join(c.SdocDir, "bin", "sdoc")
}

// SdocMergeBin is the merge tool script.
func (c *Config) SdocMergeBin() string {
	return filepath.Join(c.SdocDir, "bin", "sdoc-merge")
}

// Validate checks that the request is complete and the names are usable.
func (c *Config) Validate() error {
	required := []struct {
		field, value string
	}{
		{"output directory", c.OutputDir},
		{"sdoc directory", c.SdocDir},
		{"language source directory", c.LanguageDir},
		{"framework source directory", c.FrameworkDir},
		{"ruby executable", c.Tools.Ruby},
		{"rake executable", c.Tools.Rake},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ferrors.ConfigError(r.field + " is required").WithContext("field", r.field).Build()
		}
	}

	if _, err := gitBackendNormalizer.NormalizeWithError(string(c.GitBackend)); err != nil {
		return ferrors.ConfigError("unsupported git backend").WithCause(err).Build()
	}
	if c.EffectiveGitBackend() == GitBackendExec && strings.TrimSpace(c.Tools.Git) == "" {
		return ferrors.ConfigError("git executable is required for the exec backend").Build()
	}

	for field, title := range map[string]string{"language title": c.Names.LanguageTitle, "framework title": c.Names.FrameworkTitle} {
		if strings.TrimSpace(title) == "" {
			return ferrors.ConfigError(field + " is required").Build()
		}
		if strings.Contains(title, ",") {
			return ferrors.ValidationError(field + " must not contain a comma").WithContext("value", title).Build()
		}
	}
	for field, name := range map[string]string{"language output name": c.Names.LanguageOutput, "framework output name": c.Names.FrameworkOutput} {
		if strings.TrimSpace(name) == "" {
			return ferrors.ConfigError(field + " is required").Build()
		}
		if strings.ContainsAny(name, `/\`) {
			return ferrors.ValidationError(field + " must not contain a path separator").WithContext("value", name).Build()
		}
	}
	return nil
}

// EffectiveGitBackend returns the normalised backend, defaulting to exec.
func (c *Config) EffectiveGitBackend() GitBackend {
	return gitBackendNormalizer.Normalize(string(c.GitBackend))
}
