// Package versions models the version arguments of a generation run.
//
// A version argument is either a single version or an ordered list of
// versions; the two shapes are resolved once, at the API boundary, into Arg.
// Expand walks the cross product of a language argument and a framework
// argument in nested order (outer language, inner framework) and hands each
// Pair to the caller. Pairs are neither reordered nor deduplicated.
//
// LanguageTag and FrameworkTag translate version strings into the
// source-control tags checked out before documentation is generated.
package versions
