// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so the configuration a
// process starts with stays the same for its whole lifetime.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("specflow.xml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// A project without a configuration file runs on defaults; AllowMissing makes
// a missing file fetch as empty data, which the loader turns into a tree of
// defaults.
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
