package catalog

import "sync"

// Registry is the process-wide identity cache: at most one live Record
// exists per (entity type, id).  Id 0 denotes an uncreated stub and is
// never cached.  Entries live until the record is deleted or Reset is
// called; tests and long-running hosts reset explicitly.
type Registry struct {
	mu      sync.RWMutex
	records map[string]map[int]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]map[int]*Record)}
}

// Lookup returns the cached record for (typ, id), or nil.
func (r *Registry) Lookup(typ *EntityType, id int) *Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[typ.Name][id]
}

// intern caches rec unless an instance already holds its identity, and
// returns the one live record.  A differing name on the newcomer is
// ignored.
func (r *Registry) intern(rec *Record) *Record {
	if rec.id == 0 {
		return rec
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := r.records[rec.typ.Name]
	if byID == nil {
		byID = make(map[int]*Record)
		r.records[rec.typ.Name] = byID
	}
	if existing := byID[rec.id]; existing != nil {
		return existing
	}
	byID[rec.id] = rec
	return rec
}

func (r *Registry) evict(typ *EntityType, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records[typ.Name], id)
}

// Reset drops every cached record.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]map[int]*Record)
}

// Size returns the number of cached records across all types.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, byID := range r.records {
		n += len(byID)
	}
	return n
}
