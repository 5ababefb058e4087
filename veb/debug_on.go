//go:build vebdebug

package veb

// debugChecks enables key range validation in Tree.
const debugChecks = true
