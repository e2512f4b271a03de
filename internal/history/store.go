// Package history persists analysis records as one bounded, most-recent-first
// JSON list under a single key of a string-keyed store, migrating older
// record shapes forward on every read.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kodnest/prepkit/internal/model"
)

// storageKey is the single key the history list lives under.
const storageKey = "prepkit_analysis_history"

// maxEntries bounds the history list; Save evicts the oldest entries beyond it.
const maxEntries = 50

// Store reads and writes the analysis history. It assumes a single logical
// writer; callers in a multi-writer environment must add their own mutual
// exclusion around the read-modify-write operations.
type Store struct {
	kv  model.KV
	now func() time.Time
}

// New returns a Store over the given key-value surface. A nil now defaults
// to time.Now.
func New(kv model.KV, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{kv: kv, now: now}
}

// Load returns all readable records, most recent first, each migrated to the
// current schema, plus a count of corrupted entries that were dropped. An
// unparsable or non-array payload yields an empty list with corrupted=1.
// Only a failing key-value surface returns an error.
func (s *Store) Load() ([]model.AnalysisRecord, int, error) {
	payload, ok, err := s.kv.Get(storageKey)
	if err != nil {
		return nil, 0, fmt.Errorf("reading history: %w", err)
	}
	if !ok || payload == "" {
		return nil, 0, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		return nil, 1, nil
	}

	records := make([]model.AnalysisRecord, 0, len(elements))
	corrupted := 0
	for _, el := range elements {
		var raw map[string]any
		if err := json.Unmarshal(el, &raw); err != nil {
			corrupted++
			continue
		}
		if !hasStringField(raw, "id") || !hasStringField(raw, "createdAt") {
			corrupted++
			continue
		}
		records = append(records, Migrate(raw))
	}
	return records, corrupted, nil
}

// Save prepends the record to the history and truncates to the most recent
// 50 entries before persisting.
func (s *Store) Save(rec model.AnalysisRecord) error {
	records, _, err := s.Load()
	if err != nil {
		return err
	}
	records = append([]model.AnalysisRecord{rec}, records...)
	if len(records) > maxEntries {
		records = records[:maxEntries]
	}
	return s.persist(records)
}

// GetByID returns the record with the given id, or nil when absent.
func (s *Store) GetByID(id string) (*model.AnalysisRecord, error) {
	records, _, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

// DeleteByID removes the record with the given id. Deleting an unknown id is
// a no-op.
func (s *Store) DeleteByID(id string) error {
	records, _, err := s.Load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.persist(kept)
}

// Patch holds the fields Update may change on a stored record. Nil fields
// are left untouched.
type Patch struct {
	Company         *string
	Role            *string
	SkillConfidence map[string]model.Confidence
	FinalScore      *int
}

// Update merges the patch into the record with the given id and refreshes
// its updatedAt timestamp. Updating an unknown id is a no-op.
func (s *Store) Update(id string, patch Patch) error {
	records, _, err := s.Load()
	if err != nil {
		return err
	}
	found := false
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if patch.Company != nil {
			records[i].Company = *patch.Company
		}
		if patch.Role != nil {
			records[i].Role = *patch.Role
		}
		if patch.SkillConfidence != nil {
			records[i].SkillConfidence = patch.SkillConfidence
		}
		if patch.FinalScore != nil {
			records[i].FinalScore = *patch.FinalScore
		}
		records[i].UpdatedAt = s.now()
		found = true
		break
	}
	if !found {
		return nil
	}
	return s.persist(records)
}

func (s *Store) persist(records []model.AnalysisRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.kv.Set(storageKey, string(payload)); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

func hasStringField(raw map[string]any, key string) bool {
	s, ok := raw[key].(string)
	return ok && s != ""
}
