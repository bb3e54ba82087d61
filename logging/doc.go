// Package logging builds the structured logger shared by the configuration
// loader, the CLI and the Fx container. Output is JSON by default; the text
// format is meant for terminals.
package logging
