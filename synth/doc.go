// Package synth wires the synthesis pipeline end to end:
//
//	load configurations → AC-poset → tree → feature model → UVL text
//
// with an optional Graphviz export of the reduced AC-poset and an optional
// Prometheus text-format metrics file for batch runs.
//
// The core packages (poset, hierarchy, groups, fm, uvl) never log. A Runner
// logs phase timings at Debug and a one-line summary at Info through the
// slog.Logger supplied with WithLogger; the default logger discards.
//
// Errors:
//
//   - ErrOutputExists  an output file exists and Force is off
//
// Errors from the pipeline stages are wrapped with the phase name and keep
// their sentinels (errors.Is works through Run).
package synth
