//go:build !release

package vktriangle

// DiagnosticsEnabled is the build default for Config.Diagnostics. Build with
// -tags release to turn validation layers and the debug messenger off.
const DiagnosticsEnabled = true
