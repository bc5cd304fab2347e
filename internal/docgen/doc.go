// Package docgen generates merged Ruby and Rails API documentation for every
// requested version pair.
//
// For each pair the language docs, framework docs and merged docs are built
// into a temporary workspace, skipping any intermediate directory that already
// exists, and the merged result is copied to
// "<output>/<Language> v<L>, <Framework> v<F>". The first failing command
// aborts the whole run; the workspace is removed on every path.
package docgen
