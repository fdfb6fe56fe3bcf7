//go:build tttdebug

package ttt

// Validate Play/Undo arguments, panicking on contract violations
const debugChecks = true
