package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalcafe/cafectl/internal/model"
)

func TestStore_SetLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store := NewStore(path)
	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.User())
	assert.Equal(t, model.Role(""), store.Role())

	user := &model.User{ID: 7, Name: "Asha", Email: "asha@example.com", RoleType: "cafeowner"}
	require.NoError(t, store.Set("tok-123", user))
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, model.RoleCafeOwner, store.Role())

	// A fresh store sees the persisted session
	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsLoggedIn())
	assert.Equal(t, "tok-123", reloaded.Token())
	if assert.NotNil(t, reloaded.User()) {
		assert.Equal(t, "asha@example.com", reloaded.User().Email)
	}

	store.Clear()
	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.User())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, store.Load())
	assert.False(t, store.IsLoggedIn())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not-json"), 0o600))

	store := NewStore(path)
	assert.NoError(t, store.Load())
	assert.False(t, store.IsLoggedIn())
}

func TestStore_NotifiesListeners(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	calls := 0
	store.OnChange(func() { calls++ })

	require.NoError(t, store.Set("tok", &model.User{ID: 1, RoleType: "customer"}))
	assert.Equal(t, 1, calls)

	store.Clear()
	assert.Equal(t, 2, calls)
}

func TestStore_UserReturnsCopy(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Set("tok", &model.User{ID: 1, Name: "Asha"}))

	u := store.User()
	u.Name = "changed"
	assert.Equal(t, "Asha", store.User().Name)
}
