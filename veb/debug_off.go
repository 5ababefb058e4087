//go:build !vebdebug

package veb

const debugChecks = false
