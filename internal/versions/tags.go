package versions

import "regexp"

// languageVersionPattern matches MAJOR.MINOR.PATCH with single digits and an
// optional -pPATCHLEVEL suffix.
var languageVersionPattern = regexp.MustCompile(`^(\d)\.(\d)\.(\d)(-p(\d+))?$`)

// LanguageTag returns the tag for a language version: "2.0.0" -> "v2_0_0",
// "2.0.0-p195" -> "v2_0_0_195". Versions outside the strict numeric pattern
// fall back to "v" + version.
func LanguageTag(version string) string {
	m := languageVersionPattern.FindStringSubmatch(version)
	if m == nil {
		return "v" + version
	}
	tag := "v" + m[1] + "_" + m[2] + "_" + m[3]
	if m[4] != "" {
		tag += "_" + m[5]
	}
	return tag
}

// FrameworkTag returns "v" + version verbatim.
func FrameworkTag(version string) string {
	return "v" + version
}
