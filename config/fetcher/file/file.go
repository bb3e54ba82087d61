package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
type Fetcher struct {
	filepath string
	data     []byte
	missing  bool
}

// Option configures how NewFetcher treats the file.
type Option func(*settings)

type settings struct {
	allowMissing bool
}

// AllowMissing makes a nonexistent file fetch as empty data instead of failing.
func AllowMissing() Option {
	return func(s *settings) {
		s.allowMissing = true
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	var cfg settings

	for _, apply := range opts {
		apply(&cfg)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			if cfg.allowMissing && errors.Is(err, os.ErrNotExist) {
				return &Fetcher{filepath: cleanPath, missing: true}, nil
			}

			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Missing reports whether the file did not exist when the fetcher was built.
func (f *Fetcher) Missing() bool {
	return f.missing
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
