package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

// CIFactory is a constructor function that creates a CIRepository given an auth token.
type CIFactory func(token string) domainRepos.CIRepository

// CIRegistry manages all registered CI provider implementations.
type CIRegistry struct {
	providers map[string]CIFactory
}

// NewCIRegistry creates an empty CI registry.
func NewCIRegistry() *CIRegistry {
	return &CIRegistry{
		providers: make(map[string]CIFactory),
	}
}

// Register adds a CI factory under the given name (e.g. "github").
func (r *CIRegistry) Register(name string, factory CIFactory) {
	r.providers[name] = factory
}

// Get returns a configured CI repository for the given name and token.
func (r *CIRegistry) Get(name, token string) (domainRepos.CIRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown CI provider: %q (known: %v)", name, r.Names())
	}
	return factory(token), nil
}

// Names returns the sorted list of registered provider names.
func (r *CIRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
