// Package updater checks GitHub Releases for newer create-fhevm builds.
// A daily-cached check powers the startup banner and `version --check`;
// installation stays with the user's package manager.
package updater