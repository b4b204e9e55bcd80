package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
)

var testNow = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()

	created := store.Create(&domain.Client{ID: "c1", Name: "Anna"}, testNow)
	assert.Equal(t, testNow, created.CreatedAt)

	got, err := store.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)

	_, err = store.GetByID("missing")
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestStore_Exists(t *testing.T) {
	store := NewStore()
	store.Create(&domain.Client{ID: "c1", Name: "Anna"}, testNow)

	assert.True(t, store.Exists("c1"))
	assert.False(t, store.Exists("c2"))
}

func TestStore_List_SortedByName(t *testing.T) {
	store := NewStore()
	store.Create(&domain.Client{ID: "c1", Name: "Viktor"}, testNow)
	store.Create(&domain.Client{ID: "c2", Name: "Anna"}, testNow)
	store.Create(&domain.Client{ID: "c3", Name: "Boris"}, testNow)

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Anna", list[0].Name)
	assert.Equal(t, "Boris", list[1].Name)
	assert.Equal(t, "Viktor", list[2].Name)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	store.Create(&domain.Client{ID: "c1", Name: "Anna"}, testNow)

	got, err := store.GetByID("c1")
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := store.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", again.Name)
}
