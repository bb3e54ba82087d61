// Package toml provides a TOML parser implementation for the config package.
//
// Tables become elements and key/value pairs become attributes:
//
//	[language]
//	feature = "de-AT"
//
//	[runtime]
//	stopAtFirstError = true
//
// Arrays are rejected. TOML carries no per-key positions once decoded, so
// elements produced by this parser have no position.
package toml
