// Package text provides a DataFetcher over configuration text held in memory,
// for inline configuration and tests.
package text

// Fetcher implements config.DataFetcher over a fixed string.
type Fetcher struct {
	data string
}

// NewFetcher returns a Fetcher serving data.
func NewFetcher(data string) *Fetcher {
	return &Fetcher{data: data}
}

// Fetch returns the configuration text.
func (f *Fetcher) Fetch() ([]byte, error) {
	return []byte(f.data), nil
}
