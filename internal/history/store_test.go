package history

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kodnest/prepkit/internal/analysis"
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/store"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(store.NewMemKV(), fixedClock)
}

func testAnalyzer(seed int64) *analysis.Analyzer {
	return analysis.New(fixedClock, rand.New(rand.NewSource(seed)))
}

func TestLoad_EmptyStore(t *testing.T) {
	st := newTestStore(t)
	records, corrupted, err := st.Load()
	require.NoError(t, err)
	require.Empty(t, records)
	require.Zero(t, corrupted)
}

func TestSaveAndGetByID_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	rec := testAnalyzer(1).Run("Google", "SDE", "Java, React, AWS and SQL experience required.")

	require.NoError(t, st.Save(rec))

	got, err := st.GetByID(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, rec, *got, "a record in the current schema must survive save/load unchanged")
}

func TestSave_PrependsMostRecentFirst(t *testing.T) {
	st := newTestStore(t)
	a := testAnalyzer(1).Run("A", "r", "python")
	b := testAnalyzer(2).Run("B", "r", "python")

	require.NoError(t, st.Save(a))
	require.NoError(t, st.Save(b))

	records, _, err := st.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, b.ID, records[0].ID)
	require.Equal(t, a.ID, records[1].ID)
}

func TestSave_BoundAtFifty(t *testing.T) {
	st := newTestStore(t)
	var ids []string
	for i := 0; i < 55; i++ {
		rec := testAnalyzer(int64(i)).Run(fmt.Sprintf("Company%d", i), "r", "python")
		rec.ID = fmt.Sprintf("id-%02d", i)
		require.NoError(t, st.Save(rec))
		ids = append(ids, rec.ID)
	}

	records, corrupted, err := st.Load()
	require.NoError(t, err)
	require.Zero(t, corrupted)
	require.Len(t, records, 50)
	// Most recently inserted first; the five oldest evicted.
	require.Equal(t, ids[54], records[0].ID)
	require.Equal(t, ids[5], records[49].ID)
	for _, rec := range records {
		require.NotContains(t, ids[:5], rec.ID)
	}
}

func TestLoad_CorruptedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "unparsable JSON", payload: "{nope"},
		{name: "non-array shape", payload: `{"id":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemKV()
			require.NoError(t, kv.Set("prepkit_analysis_history", tt.payload))
			st := New(kv, fixedClock)

			records, corrupted, err := st.Load()
			require.NoError(t, err)
			require.Empty(t, records)
			require.Equal(t, 1, corrupted)
		})
	}
}

func TestLoad_DropsInvalidElementsKeepsRest(t *testing.T) {
	kv := store.NewMemKV()
	payload := `[
		{"id":"good","createdAt":"2026-03-14T09:26:53Z"},
		{"createdAt":"2026-03-14T09:26:53Z"},
		{"id":42,"createdAt":"2026-03-14T09:26:53Z"},
		"not an object",
		{"id":"also-good","createdAt":"2026-03-14T09:26:53Z"}
	]`
	require.NoError(t, kv.Set("prepkit_analysis_history", payload))
	st := New(kv, fixedClock)

	records, corrupted, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, 3, corrupted)
	require.Len(t, records, 2)
	require.Equal(t, "good", records[0].ID)
	require.Equal(t, "also-good", records[1].ID)
}

func TestDeleteByID(t *testing.T) {
	st := newTestStore(t)
	a := testAnalyzer(1).Run("A", "r", "python")
	b := testAnalyzer(2).Run("B", "r", "python")
	require.NoError(t, st.Save(a))
	require.NoError(t, st.Save(b))

	require.NoError(t, st.DeleteByID(a.ID))

	records, _, err := st.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, b.ID, records[0].ID)

	// Unknown id is a silent no-op.
	require.NoError(t, st.DeleteByID("missing"))
	records, _, _ = st.Load()
	require.Len(t, records, 1)
}

func TestGetByID_Unknown(t *testing.T) {
	st := newTestStore(t)
	got, err := st.GetByID("missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUpdate_MergesAndRefreshesUpdatedAt(t *testing.T) {
	later := fixedTime.Add(2 * time.Hour)
	clock := fixedTime
	st := New(store.NewMemKV(), func() time.Time { return clock })

	rec := testAnalyzer(1).Run("A", "r", "java and sql work")
	require.NoError(t, st.Save(rec))

	clock = later
	confidence := map[string]model.Confidence{"java": model.ConfidenceKnow, "sql": model.ConfidencePractice}
	final := 72
	require.NoError(t, st.Update(rec.ID, Patch{
		SkillConfidence: confidence,
		FinalScore:      &final,
	}))

	got, err := st.GetByID(rec.ID)
	require.NoError(t, err)
	require.Equal(t, confidence, got.SkillConfidence)
	require.Equal(t, 72, got.FinalScore)
	require.Equal(t, later, got.UpdatedAt)
	require.Equal(t, rec.CreatedAt, got.CreatedAt, "createdAt must not change on update")
	require.Equal(t, rec.Company, got.Company, "unpatched fields must not change")
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	st := newTestStore(t)
	rec := testAnalyzer(1).Run("A", "r", "python")
	require.NoError(t, st.Save(rec))

	final := 10
	require.NoError(t, st.Update("missing", Patch{FinalScore: &final}))

	got, err := st.GetByID(rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.FinalScore, got.FinalScore)
}

func TestLoad_MigratesLegacyRecordsTransparently(t *testing.T) {
	kv := store.NewMemKV()
	legacy := []any{legacyV1Record("lg1"), legacyV1Record("lg2")}
	payload, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set("prepkit_analysis_history", string(payload)))
	st := New(kv, fixedClock)

	records, corrupted, err := st.Load()
	require.NoError(t, err)
	require.Zero(t, corrupted)
	require.Len(t, records, 2)
	require.Equal(t, "lg1", records[0].ID)
	require.Equal(t, 82, records[0].BaseScore, "readinessScore becomes baseScore")

	// Persisting and reloading must not drift.
	require.NoError(t, st.Save(testAnalyzer(9).Run("C", "r", "python")))
	again, corrupted, err := st.Load()
	require.NoError(t, err)
	require.Zero(t, corrupted)
	require.Equal(t, records[0], again[1])
	require.Equal(t, records[1], again[2])
}
