// Package configuration defines observed configurations and the immutable
// configuration Set consumed by the synthesis pipeline, together with the
// boundary loaders that materialize them from disk.
//
// What:
//
//   - Configuration: identity plus a feature-name → enabled map. A feature
//     missing from the map is disabled.
//   - Set: the ordered configurations, the feature-name universe and the
//     designated root name. The root is enabled in every configuration.
//   - Decoders: JSON and YAML arrays of {id, features}, and the one-file-per-
//     configuration ".csvconf" format (`"feature",True` per line).
//   - LoadFile / LoadDir / Load: read one file or a whole directory; a
//     directory is parsed concurrently and the result sorted by ID.
//
// Errors:
//
//   - ErrNoConfigurations  zero configurations supplied
//   - ErrEmptyRoot         root name is empty
//   - ErrEmptyID           a configuration has no identity
//   - ErrDuplicateID       two configurations share an identity
//   - ErrUnsupportedFormat file extension has no decoder
//   - ErrMalformedRecord   a .csvconf line is not `"name",bool`
package configuration
