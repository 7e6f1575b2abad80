// Package session holds the logged-in state as an explicit context object
// with a load/save/clear lifecycle over the persisted store, instead of
// ambient globals.
package session

import (
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Session is the current user plus their token and derived store context.
type Session struct {
	User         user.User         `json:"user"`
	Token        string            `json:"token"`
	StoreContext user.StoreContext `json:"store_context"`
}

// Load reads the persisted session. A missing or corrupted session reads as
// absent; corruption additionally clears both session keys so the next load
// starts clean.
func Load(s localstore.Store) (*Session, bool) {
	token, hasToken, err := s.Get(localstore.KeyAuthToken)
	if err != nil {
		return nil, false
	}
	var u user.User
	hasUser, err := localstore.GetJSON(s, localstore.KeyUser, &u)
	if err != nil {
		return nil, false
	}
	if !hasToken || !hasUser || u.Email == "" {
		// Half a session is no session.
		_ = Clear(s)
		return nil, false
	}
	return &Session{User: u, Token: token, StoreContext: u.StoreContext()}, true
}

// Save persists the session after a successful login.
func Save(s localstore.Store, u user.User, token string) error {
	if err := s.Set(localstore.KeyAuthToken, token); err != nil {
		return err
	}
	return localstore.SetJSON(s, localstore.KeyUser, u)
}

// Clear removes the persisted session. Used by logout and defensive resets.
func Clear(s localstore.Store) error {
	if err := s.Delete(localstore.KeyAuthToken); err != nil {
		return err
	}
	return s.Delete(localstore.KeyUser)
}

// Context reports the active store context, general when logged out.
func Context(s localstore.Store) user.StoreContext {
	if sess, ok := Load(s); ok {
		return sess.StoreContext
	}
	return user.StoreGeneral
}
