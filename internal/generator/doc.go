// Package generator provides the primitives the scaffolder executes:
// filesystem operations with up-front conflict validation, a fail-fast
// plan executor, template rendering, and the classified error types
// surfaced to the CLI.
//
// Plans are validated in full before any operation runs, so the common
// failure (a target that already exists) is reported before the tree is
// touched. Execution itself is fail-fast and deliberately not
// transactional: a one-shot scaffolder does not roll back completed
// steps.
package generator
