package session_test

import (
	"testing"

	"github.com/blackwell-systems/bookshopctl/internal/session"
	"github.com/blackwell-systems/bookshopctl/internal/store"
)

func TestLoad_Empty(t *testing.T) {
	s := session.Load(store.NewMemStore())
	if s.LoggedIn() {
		t.Error("fresh store should not be logged in")
	}
	if s.Token() != "" || s.Username() != "" {
		t.Error("fresh session should be blank")
	}
}

func TestSetCredentials_RoundTrip(t *testing.T) {
	kv := store.NewMemStore()
	s := session.Load(kv)
	if err := s.SetCredentials("tok-1", "alice"); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}

	s2 := session.Load(kv)
	if !s2.LoggedIn() {
		t.Fatal("reloaded session should be logged in")
	}
	if s2.Token() != "tok-1" || s2.Username() != "alice" {
		t.Errorf("reloaded session = %q/%q", s2.Token(), s2.Username())
	}
}

func TestClear(t *testing.T) {
	kv := store.NewMemStore()
	s := session.Load(kv)
	_ = s.SetCredentials("tok-1", "alice")
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.LoggedIn() {
		t.Error("session still logged in after Clear")
	}
	if session.Load(kv).LoggedIn() {
		t.Error("credential survived Clear in the store")
	}
}

func TestLoad_CorruptBlob(t *testing.T) {
	kv := store.NewMemStore()
	_ = kv.Put(session.StoreKey, []byte("{{{ not yaml"))
	s := session.Load(kv)
	if s.LoggedIn() {
		t.Error("corrupt session blob should mean logged out")
	}
}
