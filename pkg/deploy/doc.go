// Package deploy mirrors a source tree into a destination tree nested inside
// it, rewriting a hostname literal in text files and copying everything else
// byte-for-byte.
//
// A run has two phases. Plan walks the source, skips the destination subtree,
// classifies each file by whether it decodes as UTF-8 and computes the
// rewritten text. An Executor then resets the destination and applies the
// plan's actions in order, measuring every written file for the Summary.
//
// Two executors exist: DirectExecutor writes through a types.FS (the OS or an
// in-memory afero tree), SynthfsExecutor runs the same actions as a synthfs
// operation pipeline against the OS filesystem.
package deploy
