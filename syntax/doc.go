// Package syntax holds small value types shared by the feature parser and the
// configuration loader to tag diagnostics with source locations.
package syntax
