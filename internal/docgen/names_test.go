package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

func TestNames(t *testing.T) {
	names := config.Defaults().Names
	pair := versions.Pair{Language: "2.0.0", Framework: "4.0.0"}

	assert.Equal(t, "Ruby v2.0.0, Ruby on Rails v4.0.0", OutputDirName(names, pair))
	assert.Equal(t, "Ruby v2.0.0, Rails v4.0.0", MergeTitle(names, pair))
	assert.Equal(t, "Ruby,Rails", MergeNames(names))
	assert.Equal(t, "ruby-docs-v2.0.0", LanguageDocsName("2.0.0"))
	assert.Equal(t, "rails-docs-v4.0.0", FrameworkDocsName("4.0.0"))
	assert.Equal(t, "merged-docs-ruby-v2.0.0-rails-v4.0.0", MergedDocsName(pair))
}

func TestOutputDirName_CustomNames(t *testing.T) {
	names := config.Names{LanguageOutput: "MRI", FrameworkOutput: "Rails"}
	assert.Equal(t, "MRI v1.9.3-p392, Rails v3.2.13",
		OutputDirName(names, versions.Pair{Language: "1.9.3-p392", Framework: "3.2.13"}))
}

func TestCommands(t *testing.T) {
	cfg := config.Defaults()
	cfg.SdocDir = "/opt/sdoc"
	cfg.LanguageDir = "/src/ruby"
	cfg.FrameworkDir = "/src/rails"
	c := NewCommands(&cfg)

	lang := c.LanguageDocs("/ws/ruby-docs-v2.0.0")
	assert.Equal(t,
		"SDOC_FORCE_MAIN_PAGE=README ruby -I /opt/sdoc/lib /opt/sdoc/bin/sdoc --github --all -o /ws/ruby-docs-v2.0.0 /src/ruby",
		lang.String())

	assert.Equal(t, "[/src/rails] rake -I /opt/sdoc/lib rdoc", c.FrameworkDocs().String())
	assert.Equal(t, "/src/rails/doc/rdoc", c.FrameworkDocsOutput())

	merge := c.Merge(versions.Pair{Language: "2.0.0", Framework: "4.0.0"}, "/ws/m", "/ws/l", "/ws/f")
	assert.Equal(t,
		"ruby -I /opt/sdoc/lib /opt/sdoc/bin/sdoc-merge --op /ws/m --title 'Ruby v2.0.0, Rails v4.0.0' --names Ruby,Rails /ws/l /ws/f",
		merge.String())
}
