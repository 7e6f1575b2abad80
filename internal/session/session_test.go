package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

var dewi = user.User{ID: 4, Name: "Dewi Lestari", Email: "dewi@arjuna.digital", Role: user.RoleAdmin}

func TestSaveAndLoad(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, Save(store, dewi, "tok-1"))

	sess, ok := Load(store)
	require.True(t, ok)
	assert.Equal(t, dewi.Email, sess.User.Email)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, user.StorePrinting, sess.StoreContext)
}

func TestLoadAbsent(t *testing.T) {
	store := localstore.NewMemory()
	_, ok := Load(store)
	assert.False(t, ok)
}

func TestLoadCorruptUserClearsSession(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.Set(localstore.KeyAuthToken, "tok-1"))
	require.NoError(t, store.Set(localstore.KeyUser, "{broken"))

	_, ok := Load(store)
	assert.False(t, ok)

	_, present, _ := store.Get(localstore.KeyAuthToken)
	assert.False(t, present, "corrupt session must be fully reset")
}

func TestLoadHalfSessionClears(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, localstore.SetJSON(store, localstore.KeyUser, dewi))

	_, ok := Load(store)
	assert.False(t, ok)

	_, present, _ := store.Get(localstore.KeyUser)
	assert.False(t, present)
}

func TestClear(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, Save(store, dewi, "tok-1"))
	require.NoError(t, Clear(store))

	_, ok := Load(store)
	assert.False(t, ok)
}

func TestContext(t *testing.T) {
	store := localstore.NewMemory()
	assert.Equal(t, user.StoreGeneral, Context(store))

	require.NoError(t, Save(store, dewi, "tok-1"))
	assert.Equal(t, user.StorePrinting, Context(store))
}
