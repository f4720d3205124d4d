// Package results provides the measurement store that analysis routines
// write into. The store is an explicit object handed to each routine
// rather than process-global state, so callers control its lifetime and
// tests stay deterministic.
package results

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Store accumulates named measurement series grouped by category, plus a
// flat list of emitted plot artifacts. Same-named fields overwrite on
// repeated writes; categories never interfere with each other. Safe for
// concurrent use.
type Store struct {
	mu           sync.RWMutex
	measurements map[string]map[string]interface{}
	images       []interface{}
}

func NewStore() *Store {
	return &Store{
		measurements: make(map[string]map[string]interface{}),
	}
}

// SetMeasurement records a value under category/field, overwriting any
// previous value for the same pair.
func (s *Store) SetMeasurement(category, field string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.measurements[category]
	if !ok {
		fields = make(map[string]interface{})
		s.measurements[category] = fields
	}
	fields[field] = value
}

// Measurement returns the value stored under category/field.
func (s *Store) Measurement(category, field string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.measurements[category]
	if !ok {
		return nil, false
	}
	value, ok := fields[field]
	return value, ok
}

// Category returns a copy of every field recorded under a category.
func (s *Store) Category(category string) (map[string]interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.measurements[category]
	if !ok {
		return nil, false
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out, true
}

// Categories lists the recorded category names in sorted order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.measurements))
	for name := range s.measurements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddImage appends a plot artifact to the image list.
func (s *Store) AddImage(artifact interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = append(s.images, artifact)
}

// Images returns a copy of the accumulated artifact list.
func (s *Store) Images() []interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]interface{}, len(s.images))
	copy(out, s.images)
	return out
}

// WriteJSON serializes every measurement category as indented JSON.
func (s *Store) WriteJSON(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.measurements); err != nil {
		return fmt.Errorf("results encoding failed: %w", err)
	}
	return nil
}
