package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmlim/smartstore-lister/smartstore"
)

func tempStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, err := NewSnapshotStore(filepath.Join(t.TempDir(), "categories.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := tempStore(t)

	entries := []smartstore.CategoryEntry{
		{Path: "패션의류 > 여성의류 > 티셔츠", ID: "50000830"},
		{Path: "디지털/가전 > 모니터", ID: "50000204"},
		{Path: "식품 > 수산물 > 오징어", ID: "50007021"},
	}
	assert.Nil(t, store.SaveCategories(entries))

	loaded, err := store.LoadCategories()
	assert.Nil(t, err)
	assert.Equal(t, entries, loaded)
}

func TestSnapshotSaveReplaces(t *testing.T) {
	store := tempStore(t)

	assert.Nil(t, store.SaveCategories([]smartstore.CategoryEntry{
		{Path: "디지털/가전 > 모니터", ID: "50000204"},
		{Path: "디지털/가전 > USB 메모리", ID: "50000209"},
	}))
	assert.Nil(t, store.SaveCategories([]smartstore.CategoryEntry{
		{Path: "가구/인테리어 > 의자", ID: "50001534"},
	}))

	loaded, err := store.LoadCategories()
	assert.Nil(t, err)
	assert.Equal(t, []smartstore.CategoryEntry{
		{Path: "가구/인테리어 > 의자", ID: "50001534"},
	}, loaded)
}

func TestSnapshotEmptyLoad(t *testing.T) {
	store := tempStore(t)

	loaded, err := store.LoadCategories()
	assert.Nil(t, err)
	assert.Empty(t, loaded)
}
