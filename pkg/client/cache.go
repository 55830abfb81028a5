package client

import (
	"strings"
	"sync"
)

// queryCache stores fetched query results keyed by entity and filter.
// List keys look like "plan" or "staff?tenantId=X", item keys like
// "plan/ID". Mutations never patch cached values in place; they drop
// the affected keys so the next read refetches.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string]interface{})}
}

func (qc *queryCache) get(key string) (interface{}, bool) {
	qc.mu.RLock()
	defer qc.mu.RUnlock()
	v, ok := qc.entries[key]
	return v, ok
}

func (qc *queryCache) set(key string, value interface{}) {
	qc.mu.Lock()
	qc.entries[key] = value
	qc.mu.Unlock()
}

// invalidateList drops the unfiltered list and every filtered variant
// of the same entity.
func (qc *queryCache) invalidateList(entity string) {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	delete(qc.entries, entity)
	prefix := entity + "?"
	for key := range qc.entries {
		if strings.HasPrefix(key, prefix) {
			delete(qc.entries, key)
		}
	}
}

func (qc *queryCache) invalidateItem(entity, id string) {
	qc.mu.Lock()
	delete(qc.entries, entity+"/"+id)
	qc.mu.Unlock()
}

func (qc *queryCache) clear() {
	qc.mu.Lock()
	qc.entries = make(map[string]interface{})
	qc.mu.Unlock()
}

func listKey(entity, filterQuery string) string {
	if filterQuery == "" {
		return entity
	}
	return entity + "?" + filterQuery
}

func itemKey(entity, id string) string {
	return entity + "/" + id
}
