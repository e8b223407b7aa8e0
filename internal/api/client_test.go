package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/bookshopctl/internal/api"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func respond(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("encoding response: %v", err)
	}
}

func envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{"success": true, "message": "", "data": data}
}

func TestListBooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		respond(t, w, http.StatusOK, envelope([]map[string]interface{}{
			{"id": "b1", "title": "SICP", "writer": "Abelson", "price": "50000", "stock_quantity": 3, "genre": "cs"},
			{"id": "b2", "title": "TAPL", "writer": "Pierce", "price": "80000", "stock_quantity": 1, "genre": "cs"},
		}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	books, err := c.ListBooks()
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != "b1" || books[0].Price != "50000" || books[0].StockQuantity != 3 {
		t.Errorf("unexpected first book: %+v", books[0])
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		respond(t, w, http.StatusOK, envelope(map[string]string{"id": "u1", "username": "alice", "email": "a@b.co"}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken("tok123"))
	if _, err := c.Me(); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		respond(t, w, http.StatusOK, envelope([]api.Book{}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken(""))
	if _, err := c.ListBooks(); err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "token expired"})
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken("stale"))
	_, err := c.Me()
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestNotFoundIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "no such book"})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	_, err := c.GetBook("nope")
	if !errors.Is(err, api.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEnvelopeFailureSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, map[string]interface{}{"success": false, "message": "stock exhausted"})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	_, err := c.ListBooks()
	if err == nil {
		t.Fatal("expected error for success=false envelope")
	}
	if got := err.Error(); got != "api: stock exhausted" {
		t.Errorf("error = %q, want server message surfaced", got)
	}
}

func TestMalformedEnvelopeFailsLoudly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"books": []}`)) // no envelope fields at all
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	if _, err := c.ListBooks(); err == nil {
		t.Fatal("expected error for non-envelope response")
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding login body: %v", err)
		}
		if req.Email != "a@b.co" || req.Password != "hunter22" {
			t.Errorf("unexpected credentials: %+v", req)
		}
		respond(t, w, http.StatusOK, envelope(map[string]string{"access_token": "tok-abc"}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	tok, err := c.Login("a@b.co", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok != "tok-abc" {
		t.Errorf("token = %q, want %q", tok, "tok-abc")
	}
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, envelope(map[string]string{}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	if _, err := c.Login("a@b.co", "pw"); err == nil {
		t.Fatal("expected error when login response carries no token")
	}
}

func TestCreateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Items []api.CheckoutItem `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding checkout body: %v", err)
		}
		if len(req.Items) != 2 || req.Items[0].BookID != "b1" || req.Items[0].Quantity != 2 {
			t.Errorf("unexpected checkout items: %+v", req.Items)
		}
		respond(t, w, http.StatusCreated, envelope(map[string]interface{}{
			"id": "tx1", "total_amount": 3, "total_price": "180000", "status": "completed",
			"created_at": "2026-08-30T10:00:00Z",
		}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken("tok"))
	tx, err := c.CreateTransaction([]api.CheckoutItem{
		{BookID: "b1", Quantity: 2},
		{BookID: "b2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if tx.ID != "tx1" || tx.TotalAmount != 3 {
		t.Errorf("unexpected transaction: %+v", tx)
	}
}

func TestCreateTransaction_EmptyCart(t *testing.T) {
	c := api.New("http://unused.invalid", nil)
	if _, err := c.CreateTransaction(nil); err == nil {
		t.Fatal("expected error for empty checkout")
	}
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusCreated, map[string]interface{}{
			"success": true, "message": "registered", "data": nil,
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	if err := c.Register("alice", "a@b.co", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestRegister_FailureSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		respond(t, w, http.StatusOK, map[string]interface{}{
			"success": false, "message": "email already registered",
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	err := c.Register("alice", "a@b.co", "hunter22")
	if err == nil {
		t.Fatal("expected error for success=false register response")
	}
	if got := err.Error(); got != "api: email already registered" {
		t.Errorf("error = %q, want server message surfaced", got)
	}
}

func TestDeleteBook_FailureSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, map[string]interface{}{
			"success": false, "message": "book has pending orders",
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken("tok"))
	if err := c.DeleteBook("b9"); err == nil {
		t.Fatal("expected error for success=false delete response")
	}
}

func TestDeleteBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/b9" || r.Method != http.MethodDelete {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.New(srv.URL, staticToken("tok"))
	if err := c.DeleteBook("b9"); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
}

func TestGenresRouteIsSingular(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre" {
			t.Errorf("path = %q, want /genre", r.URL.Path)
		}
		respond(t, w, http.StatusOK, envelope([]api.Genre{{ID: "g1", Name: "fiction"}}))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	genres, err := c.ListGenres()
	if err != nil {
		t.Fatalf("ListGenres: %v", err)
	}
	if len(genres) != 1 || genres[0].Name != "fiction" {
		t.Errorf("unexpected genres: %+v", genres)
	}
}
