// Package model implements PicoFramework's JSON record store and
// placeholder view rendering: a small array-of-objects collection
// persisted through a storage.Interface back-end, plus lightweight view
// types for turning values into HTTP response bodies. Grounded on
// original_source's framework/FrameworkModel.h and framework/FrameworkView.h.
package model

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/archbell/picoframework/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultIDField names the JSON key treated as a record's identifier.
const defaultIDField = "id"

// Store is a JSON-array-backed record collection persisted as a single
// file through a storage.Interface. It mirrors FrameworkModel's
// load/save/CRUD contract; subclasses of the original are expressed here
// as an IDField override rather than virtual dispatch.
type Store struct {
	backend storage.Interface
	path    string
	idField string

	collection []map[string]any
	state      map[string]any
}

// NewStore creates a Store backed by path on backend. Call Load before
// reading, and construct with WithIDField if the record key isn't "id".
func NewStore(backend storage.Interface, path string) *Store {
	return &Store{backend: backend, path: path, idField: defaultIDField, state: map[string]any{}}
}

// WithIDField overrides the record identifier key, matching the
// original's getIdField() override point.
func (s *Store) WithIDField(field string) *Store {
	s.idField = field
	return s
}

type document struct {
	Records []map[string]any `json:"records"`
	State   map[string]any   `json:"state,omitempty"`
}

// Load reads the collection (and any top-level scalar state) from the
// backing file. A missing file loads as an empty collection, matching
// the original's behavior of starting fresh rather than failing.
func (s *Store) Load() error {
	if !s.backend.Exists(s.path) {
		s.collection = nil
		s.state = map[string]any{}
		return nil
	}
	data, err := s.backend.ReadFile(s.path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		s.collection = nil
		s.state = map[string]any{}
		return nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.collection = doc.Records
	if doc.State == nil {
		doc.State = map[string]any{}
	}
	s.state = doc.State
	return nil
}

// Save persists the whole collection and top-level state.
func (s *Store) Save() error {
	doc := document{Records: s.collection, State: s.state}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.backend.WriteFile(s.path, data)
}

// SaveAll is an alias for Save, matching the original's naming of the
// bulk-persist entry point alongside the single-record Save(id, data).
func (s *Store) SaveAll() error { return s.Save() }

// All returns every record in the collection.
func (s *Store) All() []map[string]any {
	return s.collection
}

func (s *Store) indexOf(id string) int {
	for i, rec := range s.collection {
		if recID, ok := rec[s.idField]; ok && toString(recID) == id {
			return i
		}
	}
	return -1
}

// Find returns the record matching id, or false if not found.
func (s *Store) Find(id string) (map[string]any, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.collection[i], true
	}
	return nil, false
}

// FindAsJSON returns the record matching id as raw JSON, or "null" if
// not found, matching the original's findAsJson fallback.
func (s *Store) FindAsJSON(id string) ([]byte, error) {
	rec, ok := s.Find(id)
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(rec)
}

// Create appends item to the collection. It fails if item has no id
// field or a record with that id already exists.
func (s *Store) Create(item map[string]any) error {
	id, ok := item[s.idField]
	if !ok {
		return ErrMissingID
	}
	if _, exists := s.Find(toString(id)); exists {
		return ErrAlreadyExists
	}
	s.collection = append(s.collection, item)
	return nil
}

// CreateFromJSON decodes raw and calls Create.
func (s *Store) CreateFromJSON(raw []byte) error {
	var item map[string]any
	if err := json.Unmarshal(raw, &item); err != nil {
		return err
	}
	return s.Create(item)
}

// Update replaces the record matching id with updated. It fails if no
// record matches.
func (s *Store) Update(id string, updated map[string]any) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.collection[i] = updated
	return nil
}

// UpdateFromJSON decodes updates, merges them onto the existing record,
// and calls Update.
func (s *Store) UpdateFromJSON(id string, updates []byte) error {
	existing, ok := s.Find(id)
	if !ok {
		return ErrNotFound
	}
	merged := make(map[string]any, len(existing))
	for k, v := range existing {
		merged[k] = v
	}
	var patch map[string]any
	if err := json.Unmarshal(updates, &patch); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	return s.Update(id, merged)
}

// Remove deletes the record matching id.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.collection = append(s.collection[:i], s.collection[i+1:]...)
	return nil
}

// DeleteAsJSON removes the record matching id and returns the deleted
// record as JSON, or "null" if there was nothing to delete.
func (s *Store) DeleteAsJSON(id string) ([]byte, error) {
	rec, ok := s.Find(id)
	if !ok {
		return []byte("null"), nil
	}
	if err := s.Remove(id); err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// ToJSON returns the full collection as a JSON array.
func (s *Store) ToJSON() ([]byte, error) {
	return json.Marshal(s.collection)
}

// GetValue reads a top-level scalar key from the model's state, separate
// from the array-style record collection, for persistent app settings.
func GetValue[T any](s *Store, key string, defaultValue T) T {
	raw, ok := s.state[key]
	if !ok {
		return defaultValue
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return defaultValue
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return defaultValue
	}
	return v
}

// SetValue writes a top-level scalar key into the model's state. Call
// Save to persist it.
func SetValue[T any](s *Store, key string, value T) {
	s.state[key] = value
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		data, _ := json.Marshal(t)
		return string(data)
	}
}
