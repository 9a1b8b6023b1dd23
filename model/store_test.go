package model_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archbell/picoframework/model"
	"github.com/archbell/picoframework/storage/fatfs"
)

func newTestStore(t *testing.T) (*model.Store, *fatfs.Store) {
	t.Helper()
	backend := fatfs.NewStore(fatfs.Config{MountPoint: "sd0"}, afero.NewMemMapFs())
	require.NoError(t, backend.Mount())
	return model.NewStore(backend, "/devices.json"), backend
}

func TestLoadOnMissingFileStartsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	assert.Empty(t, s.All())
}

func TestCreateThenFindRoundTrips(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1", "name": "sensor"}))

	rec, ok := s.Find("d1")
	require.True(t, ok)
	assert.Equal(t, "sensor", rec["name"])
}

func TestCreateRejectsMissingID(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	assert.ErrorIs(t, s.Create(map[string]any{"name": "no id"}), model.ErrMissingID)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1"}))
	assert.ErrorIs(t, s.Create(map[string]any{"id": "d1"}), model.ErrAlreadyExists)
}

func TestUpdateReplacesRecord(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1", "name": "old"}))
	require.NoError(t, s.Update("d1", map[string]any{"id": "d1", "name": "new"}))

	rec, _ := s.Find("d1")
	assert.Equal(t, "new", rec["name"])
}

func TestUpdateFromJSONMergesFields(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1", "name": "old", "room": "lab"}))
	require.NoError(t, s.UpdateFromJSON("d1", []byte(`{"name":"new"}`)))

	rec, _ := s.Find("d1")
	assert.Equal(t, "new", rec["name"])
	assert.Equal(t, "lab", rec["room"])
}

func TestRemoveDeletesRecord(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1"}))
	require.NoError(t, s.Remove("d1"))

	_, ok := s.Find("d1")
	assert.False(t, ok)
}

func TestRemoveUnknownIDReturnsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	assert.ErrorIs(t, s.Remove("missing"), model.ErrNotFound)
}

func TestSaveThenLoadAcrossInstancesRoundTrips(t *testing.T) {
	s, backend := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1", "name": "sensor"}))
	require.NoError(t, s.Save())

	reloaded := model.NewStore(backend, "/devices.json")
	require.NoError(t, reloaded.Load())
	rec, ok := reloaded.Find("d1")
	require.True(t, ok)
	assert.Equal(t, "sensor", rec["name"])
}

func TestGetSetValuePersistsTopLevelState(t *testing.T) {
	s, backend := newTestStore(t)
	require.NoError(t, s.Load())
	model.SetValue(s, "armed", true)
	require.NoError(t, s.Save())

	reloaded := model.NewStore(backend, "/devices.json")
	require.NoError(t, reloaded.Load())
	assert.True(t, model.GetValue(reloaded, "armed", false))
	assert.Equal(t, "fallback", model.GetValue(reloaded, "missing", "fallback"))
}

func TestDeleteAsJSONReturnsRemovedRecord(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Load())
	require.NoError(t, s.Create(map[string]any{"id": "d1", "name": "sensor"}))

	raw, err := s.DeleteAsJSON("d1")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "sensor")

	_, ok := s.Find("d1")
	assert.False(t, ok)
}
