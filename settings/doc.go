// Package settings holds the run settings of fmsynth and loads them with
// priority env > file > defaults.
//
// The file is YAML, with a JSON fallback. Environment variables use the
// FMSYNTH_ prefix and upper-case keys, e.g. FMSYNTH_ROOT,
// FMSYNTH_MAX_EXACT_CHILDREN, FMSYNTH_LOG_LEVEL. Unparsable numeric or
// boolean values in the environment are ignored.
//
// Load does not validate: callers apply their own overrides (CLI flags)
// and then call Validate.
package settings
