package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/suar-net/suar-dash/internal/repository"
)

// blocklistService caches the compiled blocked-site patterns stored in Redis.
type blocklistService struct {
	repo repository.IBlockedSiteRepository

	mu       sync.RWMutex
	patterns []*regexp.Regexp
}

func NewBlocklistService(repo repository.IBlockedSiteRepository) IBlocklistService {
	return &blocklistService{repo: repo}
}

// Refresh reloads the cache from storage. On failure the previous cache is
// kept.
func (s *blocklistService) Refresh(ctx context.Context) error {
	raw, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve blocked sites: %w", err)
	}

	patterns := make([]*regexp.Regexp, 0, len(raw))
	for _, p := range raw {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("failed to retrieve blocked sites: compiling %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	s.mu.Lock()
	s.patterns = patterns
	s.mu.Unlock()
	return nil
}

func (s *blocklistService) Patterns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.patterns))
	for _, re := range s.patterns {
		out = append(out, re.String())
	}
	return out
}

// IsBlocked reports whether site matches any cached pattern.
func (s *blocklistService) IsBlocked(site string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, re := range s.patterns {
		if re.MatchString(site) {
			return true
		}
	}
	return false
}

func (s *blocklistService) Block(ctx context.Context, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: bad regex: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Add(ctx, re.String()); err != nil {
		return fmt.Errorf("failed to save blocked site: %w", err)
	}
	return s.Refresh(ctx)
}

func (s *blocklistService) Unblock(ctx context.Context, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: bad regex: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Remove(ctx, re.String()); err != nil {
		return fmt.Errorf("failed to delete blocked site: %w", err)
	}
	return s.Refresh(ctx)
}
