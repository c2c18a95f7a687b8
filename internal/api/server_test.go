package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/terra-clan/codehunt/internal/config"
	"github.com/terra-clan/codehunt/pkg/datarelease"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	fsys := fstest.MapFS{
		"solutions/Sector1-Level1.challengeId": {Data: []byte("chal-11\n")},
		"solutions/Sector1-Level1.cs":          {Data: []byte("class Program {}")},
		"solutions/Sector1-Level2.challengeId": {Data: []byte("chal-12")},
		"solutions/Sector1-Level2.cs":          {Data: []byte("class Program {}")},

		"users/User001/experience":                                            {Data: []byte("3\n")},
		"users/User001/Sector1-Level1/attempt001-20150601-143000.java":        {Data: []byte("class A {}")},
		"users/User001/Sector1-Level1/attempt002-20150601-143100-winning1.cs": {Data: []byte("class B {}")},
		"users/User001/Sector1-Level2/notes.txt":                              {Data: []byte("oops")},
		"users/User002/experience":                                            {Data: []byte("1")},
	}

	data, err := datarelease.Load(fsys)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := config.Default().Server
	cfg.RequestTimeout = 5 * time.Second
	return NewServer(cfg, data).Router()
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) apiError {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *apiError       `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
	if resp.Error != nil {
		return *resp.Error
	}
	if data != nil {
		if err := json.Unmarshal(resp.Data, data); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
	return apiError{}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)
	rec := doGet(t, h, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
}

func TestLevels(t *testing.T) {
	h := newTestServer(t)

	rec := doGet(t, h, "/api/v1/levels")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list struct {
		Levels []map[string]interface{} `json:"levels"`
		Total  int                      `json:"total"`
	}
	decode(t, rec, &list)
	if list.Total != 2 || len(list.Levels) != 2 {
		t.Errorf("expected 2 levels, got %d", list.Total)
	}

	rec = doGet(t, h, "/api/v1/levels/Sector1-Level1")
	var level struct {
		Name        string `json:"name"`
		Sector      int    `json:"sector"`
		ChallengeID string `json:"challengeId"`
	}
	decode(t, rec, &level)
	if level.ChallengeID != "chal-11" || level.Sector != 1 {
		t.Errorf("unexpected level: %+v", level)
	}

	rec = doGet(t, h, "/api/v1/levels/Sector1-Level1/solution")
	if rec.Code != http.StatusOK || rec.Body.String() != "class Program {}" {
		t.Errorf("unexpected solution response %d %q", rec.Code, rec.Body.String())
	}

	rec = doGet(t, h, "/api/v1/levels/Sector9-Level9")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUsers(t *testing.T) {
	h := newTestServer(t)

	rec := doGet(t, h, "/api/v1/users/User001")
	var user struct {
		ID         string `json:"id"`
		Experience string `json:"experience"`
	}
	decode(t, rec, &user)
	if user.ID != "User001" || user.Experience != "3" {
		t.Errorf("unexpected user: %+v", user)
	}

	rec = doGet(t, h, "/api/v1/users/User999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAttempts(t *testing.T) {
	h := newTestServer(t)

	rec := doGet(t, h, "/api/v1/users/User001/levels/Sector1-Level1/attempts")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list struct {
		Attempts []struct {
			Filename string `json:"filename"`
			Number   int    `json:"number"`
			Won      bool   `json:"won"`
			Rating   *int   `json:"rating"`
			Language string `json:"language"`
		} `json:"attempts"`
	}
	decode(t, rec, &list)
	if len(list.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(list.Attempts))
	}
	if list.Attempts[0].Rating != nil || list.Attempts[0].Language != "Java" {
		t.Errorf("unexpected first attempt: %+v", list.Attempts[0])
	}
	if !list.Attempts[1].Won || list.Attempts[1].Rating == nil || *list.Attempts[1].Rating != 1 {
		t.Errorf("unexpected second attempt: %+v", list.Attempts[1])
	}

	rec = doGet(t, h, "/api/v1/users/User001/levels/Sector1-Level1/attempts/2/source")
	if rec.Code != http.StatusOK || rec.Body.String() != "class B {}" {
		t.Errorf("unexpected source response %d %q", rec.Code, rec.Body.String())
	}

	rec = doGet(t, h, "/api/v1/users/User001/levels/Sector1-Level1/attempts/7/source")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown attempt, got %d", rec.Code)
	}

	rec = doGet(t, h, "/api/v1/users/User001/levels/Sector1-Level1/attempts/x/source")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad number, got %d", rec.Code)
	}
}

func TestAttemptsNotAttempted(t *testing.T) {
	h := newTestServer(t)

	rec := doGet(t, h, "/api/v1/users/User002/levels/Sector1-Level1/attempts")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if e := decode(t, rec, nil); e.Code != "no_attempts" {
		t.Errorf("expected no_attempts, got %q", e.Code)
	}
}

func TestAttemptsMalformed(t *testing.T) {
	h := newTestServer(t)

	rec := doGet(t, h, "/api/v1/users/User001/levels/Sector1-Level2/attempts")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if e := decode(t, rec, nil); e.Code != "malformed_data" {
		t.Errorf("expected malformed_data, got %q", e.Code)
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/levels", nil)
	req.Header.Set("Origin", "https://viewer.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("unexpected allow origin %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
