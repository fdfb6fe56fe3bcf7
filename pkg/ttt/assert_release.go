//go:build !tttdebug

package ttt

const debugChecks = false
