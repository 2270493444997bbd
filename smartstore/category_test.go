package smartstore

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIndexBuild(t *testing.T) {
	index := builtTestIndex()

	t.Run("registers both delimiter variants", func(t *testing.T) {
		id, ok := index.Lookup("패션의류 > 여성의류 > 티셔츠")
		assert.True(t, ok)
		assert.Equal(t, "50000830", id)

		id, ok = index.Lookup("패션의류>여성의류>티셔츠")
		assert.True(t, ok)
		assert.Equal(t, "50000830", id)
	})

	t.Run("synthesizes path when whole name is missing", func(t *testing.T) {
		id, ok := index.Lookup("디지털/가전 > 모니터")
		assert.True(t, ok)
		assert.Equal(t, "50000204", id)
	})

	t.Run("does not register non-leaf paths", func(t *testing.T) {
		_, ok := index.Lookup("패션의류 > 여성의류")
		assert.False(t, ok)
		_, ok = index.Lookup("식품")
		assert.False(t, ok)
	})

	t.Run("not degraded", func(t *testing.T) {
		assert.False(t, index.Degraded())
		assert.False(t, index.IsEmpty())
	})
}

func TestCategoryIndexFallsBackToSeed(t *testing.T) {
	source := &fakeCategorySource{err: errors.New("gateway timeout")}
	index := NewCategoryIndex(source, nil)

	err := index.EnsureBuilt(context.Background())
	assert.NoError(t, err)
	assert.True(t, index.Degraded())
	assert.False(t, index.IsEmpty())

	// Seed table keeps common categories resolvable.
	id, ok := index.Lookup("디지털/가전 > 모니터")
	assert.True(t, ok)
	assert.Equal(t, "50000204", id)
}

type memorySnapshotStore struct {
	entries []CategoryEntry
	loadErr error
}

func (m *memorySnapshotStore) SaveCategories(entries []CategoryEntry) error {
	m.entries = entries
	return nil
}

func (m *memorySnapshotStore) LoadCategories() ([]CategoryEntry, error) {
	return m.entries, m.loadErr
}

func TestCategoryIndexPrefersSnapshotOverSeed(t *testing.T) {
	store := &memorySnapshotStore{entries: []CategoryEntry{
		{Path: "도서 > 소설", ID: "50009999"},
	}}
	source := &fakeCategorySource{err: errors.New("fetch failed")}
	index := NewCategoryIndex(source, store)

	assert.NoError(t, index.EnsureBuilt(context.Background()))
	assert.True(t, index.Degraded())

	id, ok := index.Lookup("도서 > 소설")
	assert.True(t, ok)
	assert.Equal(t, "50009999", id)

	// Snapshot replaces the seed table entirely.
	_, ok = index.Lookup("디지털/가전 > 모니터")
	assert.False(t, ok)
}

func TestCategoryIndexPersistsSnapshotAfterBuild(t *testing.T) {
	store := &memorySnapshotStore{}
	index := NewCategoryIndex(&fakeCategorySource{tree: testTree()}, store)

	assert.NoError(t, index.EnsureBuilt(context.Background()))
	assert.NotEmpty(t, store.entries)
	for _, e := range store.entries {
		// Only canonical-delimiter keys are persisted.
		assert.NotContains(t, e.Path, "의류>")
	}
}

func TestCategoryIndexConcurrentBuildFetchesOnce(t *testing.T) {
	source := &fakeCategorySource{tree: testTree()}
	index := NewCategoryIndex(source, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, index.EnsureBuilt(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, source.fetchCount())
}

func TestCategoryIndexInvalidate(t *testing.T) {
	source := &fakeCategorySource{tree: testTree()}
	index := NewCategoryIndex(source, nil)

	assert.NoError(t, index.EnsureBuilt(context.Background()))
	assert.NoError(t, index.EnsureBuilt(context.Background()))
	assert.Equal(t, 1, source.fetchCount())

	index.Invalidate()
	assert.True(t, index.IsEmpty())

	assert.NoError(t, index.EnsureBuilt(context.Background()))
	assert.Equal(t, 2, source.fetchCount())

	_, ok := index.Lookup("디지털/가전 > 모니터")
	assert.True(t, ok)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"식품", "과자"}, SplitPath("식품 > 과자"))
	assert.Equal(t, []string{"식품", "과자"}, SplitPath("식품>과자"))
	assert.Equal(t, []string{"식품", "과자"}, SplitPath(" 식품 >  과자 "))
	assert.Empty(t, SplitPath(" > "))
}
