// Package workspace manages the scratch directory of one generation run.
//
// A workspace is created immediately before version expansion starts and is
// removed when the run returns, whether it succeeded or aborted. Every
// intermediate documentation directory and merged directory lives inside it,
// keyed by deterministic names, so that a second request for the same
// artefact within the same run can be answered by an existence check.
package workspace
