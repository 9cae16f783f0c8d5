// Package scaffold materializes FHEVM example projects on disk. It powers the
// "create-fhevm example" and "create-fhevm category" commands: resolve the
// requested descriptors, create the directory tree, write the project
// configuration, then generate contracts, tests, docs, and the deploy script.
// Re-running over an existing destination overwrites managed files and leaves
// everything else alone. Version-control initialization is best effort and
// only ever produces a warning.
package scaffold
