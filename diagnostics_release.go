//go:build release

package vktriangle

const DiagnosticsEnabled = false
