package docgen

import (
	"fmt"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// LanguageDocsName is the workspace directory holding the language docs for version.
func LanguageDocsName(version string) string {
	return "ruby-docs-v" + version
}

// FrameworkDocsName is the workspace directory holding the framework docs for version.
func FrameworkDocsName(version string) string {
	return "rails-docs-v" + version
}

// MergedDocsName is the workspace directory holding the merged docs for pair.
func MergedDocsName(pair versions.Pair) string {
	return fmt.Sprintf("merged-docs-ruby-v%s-rails-v%s", pair.Language, pair.Framework)
}

// OutputDirName is the directory name under the output root for pair, e.g.
// "Ruby v2.0.0, Ruby on Rails v4.0.0".
func OutputDirName(names config.Names, pair versions.Pair) string {
	return fmt.Sprintf("%s v%s, %s v%s", names.LanguageOutput, pair.Language, names.FrameworkOutput, pair.Framework)
}

// MergeTitle is the title given to the merged documentation.
func MergeTitle(names config.Names, pair versions.Pair) string {
	return fmt.Sprintf("%s v%s, %s v%s", names.LanguageTitle, pair.Language, names.FrameworkTitle, pair.Framework)
}

// MergeNames is the comma separated project list passed to sdoc-merge.
func MergeNames(names config.Names) string {
	return names.LanguageTitle + "," + names.FrameworkTitle
}
