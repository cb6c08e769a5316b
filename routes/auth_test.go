package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	deps := setupServerWithDeps(t)

	w := doReq(deps.s, http.MethodPost, "/register",
		`{"username":"alice","password":"pw","isProfessional":true}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register got %d body=%s", w.Code, w.Body.String())
	}

	w = doReq(deps.s, http.MethodPost, "/login", `{"username":"alice","password":"pw"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}

	// The token unlocks the profile endpoint.
	w = doReq(deps.s, http.MethodGet, "/profile", "", resp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("profile got %d body=%s", w.Code, w.Body.String())
	}
	var profile struct {
		Username       string `json:"username"`
		IsProfessional bool   `json:"isProfessional"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if profile.Username != "alice" || !profile.IsProfessional {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	deps := setupServerWithDeps(t)
	deps.addUser(t, "alice", false)

	w := doReq(deps.s, http.MethodPost, "/register", `{"username":"alice","password":"pw"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	deps := setupServerWithDeps(t)

	w := doReq(deps.s, http.MethodPost, "/register", `{"username":"alice"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	deps := setupServerWithDeps(t)
	deps.addUser(t, "alice", false)

	w := doReq(deps.s, http.MethodPost, "/login", `{"username":"alice","password":"nope"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	deps := setupServerWithDeps(t)

	w := doReq(deps.s, http.MethodPost, "/events", `{}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}

	w = doReq(deps.s, http.MethodGet, "/attending-events", "", "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}
