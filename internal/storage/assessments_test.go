package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/dreamwell/internal"
)

func newAssessment(id string, quality int) internal.Assessment {
	return internal.Assessment{
		ID:               id,
		Date:             time.Date(2026, 10, 1, 7, 0, 0, 0, time.UTC),
		SleepQuality:     quality,
		SleepDuration:    7.5,
		Bedtime:          "23:00",
		WakeTime:         "06:30",
		SleepLatency:     10,
		MorningMood:      internal.MoodOkay,
		EnergyLevel:      6,
		CaffeineIntake:   1,
		ScreenTime:       1,
		StressLevel:      4,
		SleepEnvironment: internal.EnvironmentGood,
		RawAnswers:       map[string]any{"sleepQuality": "7"},
	}
}

func TestAssessmentStore_LoadEmpty(t *testing.T) {
	s := NewAssessmentStore(NewMemoryStorage(), internal.NewNopLogger())
	items := s.Load(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAssessmentStore_AppendNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	s := NewAssessmentStore(kv, internal.NewNopLogger())
	s.Load(ctx)

	r1 := newAssessment("r1", 6)
	r2 := newAssessment("r2", 8)

	got, err := s.Append(ctx, r1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.Append(ctx, r2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)

	reloaded := NewAssessmentStore(kv, internal.NewNopLogger()).Load(ctx)
	require.Len(t, reloaded, 2)
	assert.Equal(t, "r2", reloaded[0].ID)
	assert.Equal(t, "r1", reloaded[1].ID)
	assert.Equal(t, 8, reloaded[0].SleepQuality)
	assert.True(t, r1.Date.Equal(reloaded[1].Date))
	assert.Equal(t, "7", reloaded[1].RawAnswers["sleepQuality"])
}

func TestAssessmentStore_PriorRecordsKeepOrder(t *testing.T) {
	ctx := context.Background()
	s := NewAssessmentStore(NewMemoryStorage(), internal.NewNopLogger())
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Append(ctx, newAssessment(id, 5))
		require.NoError(t, err)
	}
	before := s.Load(ctx)

	_, err := s.Append(ctx, newAssessment("d", 5))
	require.NoError(t, err)
	after := s.Load(ctx)

	require.Len(t, after, len(before)+1)
	assert.Equal(t, "d", after[0].ID)
	assert.Equal(t, before, after[1:])
}

func TestAssessmentStore_CorruptBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, kv.Put(ctx, AssessmentsKey, []byte("{not json")))

	s := NewAssessmentStore(kv, internal.NewNopLogger())
	assert.Empty(t, s.Load(ctx))

	got, err := s.Append(ctx, newAssessment("fresh", 5))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAssessmentStore_NullBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	require.NoError(t, kv.Put(ctx, AssessmentsKey, []byte("null")))

	items := NewAssessmentStore(kv, internal.NewNopLogger()).Load(ctx)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

type failingKV struct {
	getErr error
	putErr error
}

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f failingKV) Put(context.Context, string, []byte) error   { return f.putErr }
func (f failingKV) Close() error                                { return nil }

func TestAssessmentStore_ReadErrorYieldsEmpty(t *testing.T) {
	s := NewAssessmentStore(failingKV{getErr: errors.New("disk on fire")}, internal.NewNopLogger())
	assert.Empty(t, s.Load(context.Background()))
}

func TestAssessmentStore_WriteErrorKeepsHistory(t *testing.T) {
	boom := errors.New("read-only filesystem")
	s := NewAssessmentStore(failingKV{getErr: ErrNotFound, putErr: boom}, internal.NewNopLogger())
	s.Load(context.Background())

	_, err := s.Append(context.Background(), newAssessment("r1", 5))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.List())
}

func TestAssessmentStore_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewAssessmentStore(NewMemoryStorage(), internal.NewNopLogger())
	_, err := s.Append(ctx, newAssessment("r1", 5))
	require.NoError(t, err)

	list := s.List()
	list[0].ID = "mutated"
	assert.Equal(t, "r1", s.List()[0].ID)
}

func TestAssessmentStore_AppendWithoutLoadKeepsHistory(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	first := NewAssessmentStore(kv, internal.NewNopLogger())
	_, err := first.Append(ctx, newAssessment("old", 5))
	require.NoError(t, err)

	second := NewAssessmentStore(kv, internal.NewNopLogger())
	got, err := second.Append(ctx, newAssessment("new", 5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}
