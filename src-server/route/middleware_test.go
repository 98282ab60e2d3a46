package route_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gridcal/src-server/route"
	"gridcal/src-server/utils"
)

func TestAPIKeyMiddleware(t *testing.T) {
	t.Setenv("API_KEY", "super-secret")
	as := &utils.AppState{Config: utils.NewConfig()}

	handler := route.APIKeyMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	call := func(configure func(r *http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/calendar/create-event", nil)
		configure(req)
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	// case: no key at all
	if rec := call(func(r *http.Request) {}); rec.Code != http.StatusUnauthorized {
		t.Errorf("want 401 without a key, got %d", rec.Code)
	}

	// case: wrong key
	if rec := call(func(r *http.Request) {
		r.Header.Set("X-Api-Key", "nope")
	}); rec.Code != http.StatusUnauthorized {
		t.Errorf("want 401 for a wrong key, got %d", rec.Code)
	}

	// case: correct key in the X-Api-Key header
	if rec := call(func(r *http.Request) {
		r.Header.Set("X-Api-Key", "super-secret")
	}); rec.Code != http.StatusOK {
		t.Errorf("want 200 for the right key, got %d", rec.Code)
	}

	// case: correct key as a bearer token
	if rec := call(func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer super-secret")
	}); rec.Code != http.StatusOK {
		t.Errorf("want 200 for the right bearer token, got %d", rec.Code)
	}
}

func TestAPIKeyMiddlewareOpenWhenUnset(t *testing.T) {
	t.Setenv("API_KEY", "")
	as := &utils.AppState{Config: utils.NewConfig()}

	handler := route.APIKeyMiddleware(as, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/calendar/create-event", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("a blank configured key must leave the route open, got %d", rec.Code)
	}
}
