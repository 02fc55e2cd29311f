// Package cache keeps the most recently fetched analyses in memory so the
// detail view can render without a round trip. The collaborator stays the
// source of truth; this is a read cache only.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"textlens/internal/apiclient"
)

// defaultCapacity bounds how many analyses are retained.
const defaultCapacity = 64

// Analyses is an LRU of analyses keyed by id. Safe for concurrent use.
type Analyses struct {
	lru *lru.Cache[string, apiclient.Analysis]
}

// New constructs an Analyses cache with the default capacity.
func New() (*Analyses, error) {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity constructs an Analyses cache holding up to capacity
// entries.
func NewWithCapacity(capacity int) (*Analyses, error) {
	c, err := lru.New[string, apiclient.Analysis](capacity)
	if err != nil {
		return nil, err
	}
	return &Analyses{lru: c}, nil
}

// Put stores one analysis.
func (a *Analyses) Put(analysis apiclient.Analysis) {
	if analysis.ID == "" {
		return
	}
	a.lru.Add(analysis.ID, analysis)
}

// PutAll stores a batch, e.g. a history page.
func (a *Analyses) PutAll(analyses []apiclient.Analysis) {
	for _, an := range analyses {
		a.Put(an)
	}
}

// Get returns the cached analysis for id, if present.
func (a *Analyses) Get(id string) (apiclient.Analysis, bool) {
	return a.lru.Get(id)
}

// Len reports the number of cached analyses.
func (a *Analyses) Len() int {
	return a.lru.Len()
}
