// Package git checks out version tags in the source trees documentation is
// generated from.
//
// Two backends implement Checkouter:
//   - ExecCheckouter runs "git checkout <tag>" through a process.Runner, so a
//     failure is reported like any other external command.
//   - GoGitCheckouter performs the checkout in-process with go-git, resolving
//     lightweight and annotated tags to their commit and detaching HEAD there.
package git
