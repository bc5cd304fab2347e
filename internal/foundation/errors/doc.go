// Package errors provides the classified error primitives used across railsdocs.
//
// Every failure that reaches the CLI carries a category (config, validation,
// git, process, filesystem, internal), a severity and structured context such
// as the failed command or the path involved. The CLI adapter turns the
// category into an exit code and the context into a diagnostic line.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryGit, "checkout failed").
//		WithContext("dir", dir).
//		WithContext("tag", tag).
//		WithCause(originalErr).
//		Build()
package errors
