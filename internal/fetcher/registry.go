package fetcher

import (
	"fmt"
	"sort"
	"strings"
)

// Constructor builds a Fetcher from options.
type Constructor func(opts Options) (Fetcher, error)

var registry = map[string]Constructor{}

func init() {
	Register("http", func(opts Options) (Fetcher, error) {
		return NewHTTPFetcher(opts)
	})
	Register("browser", func(opts Options) (Fetcher, error) {
		return NewBrowserFetcher(opts), nil
	})
}

func Register(name string, c Constructor) {
	registry[strings.ToLower(name)] = c
}

func Get(name string) (Constructor, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the backend registered under name.
func New(name string, opts Options) (Fetcher, error) {
	c, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown fetcher: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
	return c(opts)
}
