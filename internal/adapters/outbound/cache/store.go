package cache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abdidvp/repohealth/internal/domain"
)

// Store is an in-memory, size-bounded implementation of domain.ResultCache.
// Least recently used results are evicted first. Safe for concurrent use.
type Store struct {
	results *lru.Cache[string, *domain.AnalysisResult]
}

// New creates a store holding at most size results. A non-positive size
// uses domain.DefaultCacheSize.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = domain.DefaultCacheSize
	}
	results, err := lru.New[string, *domain.AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	return &Store{results: results}, nil
}

// Get returns the cached result for ref. Owner and repository names are
// matched case-insensitively, as the provider does.
func (s *Store) Get(ref domain.RepoRef) (*domain.AnalysisResult, bool) {
	return s.results.Get(key(ref))
}

func (s *Store) Add(ref domain.RepoRef, result *domain.AnalysisResult) {
	if result == nil {
		return
	}
	s.results.Add(key(ref), result)
}

// Invalidate drops the cached result for ref, if any.
func (s *Store) Invalidate(ref domain.RepoRef) {
	s.results.Remove(key(ref))
}

func key(ref domain.RepoRef) string {
	return strings.ToLower(ref.String())
}
