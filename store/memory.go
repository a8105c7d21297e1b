package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/studyplanner/plan"
)

// MemoryGateway is an in-memory Gateway with the same filter and timestamp
// semantics as the Firestore implementation. It backs tests and local runs.
type MemoryGateway struct {
	mu   sync.RWMutex
	docs map[plan.Collection]map[string]map[string]any
	now  func() time.Time
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		docs: make(map[plan.Collection]map[string]map[string]any),
		now:  time.Now,
	}
}

// AddRecord stores a document under a fresh random ID and stamps
// createdAt/updatedAt from the local clock.
func (g *MemoryGateway) AddRecord(ctx context.Context, c plan.Collection, fields map[string]any) (string, error) {
	doc := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	now := g.now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	id := uuid.NewString()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.docs[c] == nil {
		g.docs[c] = make(map[string]map[string]any)
	}
	g.docs[c][id] = doc
	return id, nil
}

// QueryRecords returns every matching document, ordered by ID for stable
// output.
func (g *MemoryGateway) QueryRecords(ctx context.Context, c plan.Collection, filters []Filter) ([]Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.docs[c]))
	for id, doc := range g.docs[c] {
		if matchesAll(doc, filters) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		doc := g.docs[c][id]
		copied := make(map[string]any, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		records = append(records, Record{ID: id, Fields: copied})
	}
	return records, nil
}

// UpdateRecord applies fields to an existing document and restamps
// updatedAt.
func (g *MemoryGateway) UpdateRecord(ctx context.Context, c plan.Collection, id string, fields map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc, ok := g.docs[c][id]
	if !ok {
		return &StorageError{Op: "update", Err: fmt.Errorf("document %s/%s not found", c, id)}
	}
	for k, v := range fields {
		if k == "createdAt" || k == "updatedAt" {
			continue
		}
		doc[k] = v
	}
	doc["updatedAt"] = g.now()
	return nil
}

// DeleteRecord hard-deletes a document; deleting a missing document fails.
func (g *MemoryGateway) DeleteRecord(ctx context.Context, c plan.Collection, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.docs[c][id]; !ok {
		return &StorageError{Op: "delete", Err: fmt.Errorf("document %s/%s not found", c, id)}
	}
	delete(g.docs[c], id)
	return nil
}

func matchesAll(doc map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if !matches(doc, f) {
			return false
		}
	}
	return true
}

func matches(doc map[string]any, f Filter) bool {
	v, ok := doc[f.Field]
	if !ok || v == nil {
		return false
	}
	switch f.Op {
	case OpEqual:
		if cmp, ok := compare(v, f.Value); ok {
			return cmp == 0
		}
		return reflect.DeepEqual(v, f.Value)
	case OpGreaterOrEqual:
		cmp, ok := compare(v, f.Value)
		return ok && cmp >= 0
	case OpLessOrEqual:
		cmp, ok := compare(v, f.Value)
		return ok && cmp <= 0
	}
	return false
}

func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case av.Before(bv):
			return -1, true
		case av.After(bv):
			return 1, true
		}
		return 0, true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	}
	return 0, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
