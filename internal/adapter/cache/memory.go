package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"chainledger/internal/core/domain"
)

const defaultMemorySize = 1024

// Memory is a process-local metadata cache bounded by entry count and age.
// Least recently used entries are evicted first.
type Memory struct {
	lru *expirable.LRU[string, *domain.CampaignMetadata]
}

// NewMemory returns a cache holding at most size entries, each for at most
// ttl. A non-positive ttl keeps entries until they are evicted by size.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = defaultMemorySize
	}
	return &Memory{lru: expirable.NewLRU[string, *domain.CampaignMetadata](size, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, cid string) (*domain.CampaignMetadata, bool) {
	return m.lru.Get(cid)
}

func (m *Memory) Set(_ context.Context, cid string, meta *domain.CampaignMetadata) {
	if meta == nil {
		return
	}
	m.lru.Add(cid, meta)
}

// Len reports the number of live entries.
func (m *Memory) Len() int { return m.lru.Len() }
