package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giglog/giglog/internal/db"
)

type testClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	if err := db.InitializeInMemory(); err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	server := httptest.NewServer(NewRouter())
	t.Cleanup(func() {
		server.Close()
		db.Close()
		db.DB = nil
	})
	return &testClient{t: t, server: server}
}

func (c *testClient) do(method, path string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encoding request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	if err != nil {
		c.t.Fatalf("building request: %v", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.t.Fatalf("decoding %s %s response: %v", method, path, err)
	}
	return resp, decoded
}

func (c *testClient) signUp() {
	c.t.Helper()
	resp, body := c.do("POST", "/auth/sign-up", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"email":      "api-test@example.com",
		"password":   "password123",
	})
	if resp.StatusCode != http.StatusCreated {
		c.t.Fatalf("sign-up status = %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body["token"], &c.token); err != nil || c.token == "" {
		c.t.Fatalf("sign-up returned no token: %v", err)
	}
}

func (c *testClient) createCompanyAndJob() (companyID, jobID string) {
	c.t.Helper()

	resp, body := c.do("POST", "/companies", map[string]interface{}{
		"name": "Acme Corp",
	})
	if resp.StatusCode != http.StatusCreated {
		c.t.Fatalf("create company status = %d", resp.StatusCode)
	}
	var company struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body["company"], &company); err != nil {
		c.t.Fatalf("decoding company: %v", err)
	}

	resp, body = c.do("POST", "/jobs", map[string]interface{}{
		"company_id":   company.ID,
		"title":        "Backend Development",
		"payment_type": "hourly",
		"hourly_rate":  "45.00",
	})
	if resp.StatusCode != http.StatusCreated {
		c.t.Fatalf("create job status = %d", resp.StatusCode)
	}
	var job struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body["job"], &job); err != nil {
		c.t.Fatalf("decoding job: %v", err)
	}

	return company.ID, job.ID
}

func TestAuthGuard(t *testing.T) {
	c := newTestClient(t)

	resp, _ := c.do("GET", "/work-sessions/active", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated request status = %d, want 401", resp.StatusCode)
	}
}

func TestHealthCheck(t *testing.T) {
	c := newTestClient(t)

	resp, body := c.do("GET", "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}
	var status string
	json.Unmarshal(body["status"], &status)
	if status != "ok" {
		t.Errorf("health body status = %q", status)
	}
}

func TestWorkSessionFlow(t *testing.T) {
	c := newTestClient(t)
	c.signUp()
	_, jobID := c.createCompanyAndJob()

	// No active session yet: 404 is the normal idle answer.
	resp, _ := c.do("GET", "/work-sessions/active", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("active with none status = %d, want 404", resp.StatusCode)
	}

	// Start.
	resp, body := c.do("POST", "/work-sessions/start", map[string]string{"job_id": jobID})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start status = %d", resp.StatusCode)
	}
	var session struct {
		ID                        string `json:"id"`
		JobID                     string `json:"job_id"`
		IsRunning                 bool   `json:"is_running"`
		AccumulatedPausedDuration int64  `json:"accumulated_paused_duration"`
	}
	if err := json.Unmarshal(body["work_session"], &session); err != nil {
		t.Fatalf("decoding work session: %v", err)
	}
	if !session.IsRunning || session.JobID != jobID || session.AccumulatedPausedDuration != 0 {
		t.Errorf("unexpected started session: %+v", session)
	}

	// Second start conflicts.
	resp, _ = c.do("POST", "/work-sessions/start", map[string]string{"job_id": jobID})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("second start status = %d, want 400", resp.StatusCode)
	}

	// Pause.
	resp, body = c.do("POST", fmt.Sprintf("/work-sessions/%s/pause", session.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pause status = %d", resp.StatusCode)
	}
	var pausedSession struct {
		IsRunning bool    `json:"is_running"`
		PausedAt  *string `json:"paused_at"`
	}
	json.Unmarshal(body["work_session"], &pausedSession)
	if pausedSession.IsRunning || pausedSession.PausedAt == nil {
		t.Errorf("unexpected paused session: %+v", pausedSession)
	}

	// Paused session is still the active one.
	resp, _ = c.do("GET", "/work-sessions/active", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("active while paused status = %d", resp.StatusCode)
	}

	// Resume, then complete.
	resp, _ = c.do("POST", fmt.Sprintf("/work-sessions/%s/resume", session.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resume status = %d", resp.StatusCode)
	}
	resp, body = c.do("POST", fmt.Sprintf("/work-sessions/%s/complete", session.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d", resp.StatusCode)
	}
	var completedSession struct {
		EndTime   *string `json:"end_time"`
		IsRunning bool    `json:"is_running"`
	}
	json.Unmarshal(body["work_session"], &completedSession)
	if completedSession.EndTime == nil || completedSession.IsRunning {
		t.Errorf("unexpected completed session: %+v", completedSession)
	}

	// Terminal: further transitions rejected, active is gone.
	resp, _ = c.do("POST", fmt.Sprintf("/work-sessions/%s/pause", session.ID), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("pause after complete status = %d, want 400", resp.StatusCode)
	}
	resp, _ = c.do("GET", "/work-sessions/active", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("active after complete status = %d, want 404", resp.StatusCode)
	}

	// History remains queryable.
	resp, body = c.do("GET", "/work-sessions?job_id="+jobID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var sessions []json.RawMessage
	json.Unmarshal(body["work_sessions"], &sessions)
	if len(sessions) != 1 {
		t.Errorf("listed %d sessions, want 1", len(sessions))
	}
}

func TestCompanyDetailAggregates(t *testing.T) {
	c := newTestClient(t)
	c.signUp()
	companyID, _ := c.createCompanyAndJob()

	resp, _ := c.do("POST", "/payments", map[string]interface{}{
		"company_id":       companyID,
		"total":            "1500.00",
		"payout_type":      "check",
		"payment_received": true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create payment status = %d", resp.StatusCode)
	}

	resp, body := c.do("GET", "/companies/"+companyID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("company detail status = %d", resp.StatusCode)
	}

	var total string
	json.Unmarshal(body["payment_total"], &total)
	if total != "1500" {
		t.Errorf("payment_total = %q, want \"1500\"", total)
	}
	var hours string
	json.Unmarshal(body["hours"], &hours)
	if hours != "0h 0m" {
		t.Errorf("hours = %q, want \"0h 0m\"", hours)
	}
}

func TestAppearanceFlow(t *testing.T) {
	c := newTestClient(t)
	c.signUp()

	resp, body := c.do("POST", "/appearance/palettes", map[string]string{
		"name":             "Dusk",
		"green_seed_hex":   "#336699",
		"red_seed_hex":     "#e65100",
		"yellow_seed_hex":  "#f9a825",
		"blue_seed_hex":    "#1e88e5",
		"magenta_seed_hex": "#8e24aa",
		"cyan_seed_hex":    "#00838f",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create palette status = %d", resp.StatusCode)
	}

	var created struct {
		ID              string `json:"id"`
		GeneratedTokens struct {
			Green100 string `json:"green_100"`
		} `json:"generated_tokens"`
	}
	if err := json.Unmarshal(body["palette"], &created); err != nil {
		t.Fatalf("decoding palette: %v", err)
	}
	if created.GeneratedTokens.Green100 != "51, 102, 153" {
		t.Errorf("green_100 = %q", created.GeneratedTokens.Green100)
	}

	// Creating a palette makes it active.
	resp, body = c.do("GET", "/appearance", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get appearance status = %d", resp.StatusCode)
	}
	var active struct {
		PaletteType     string  `json:"palette_type"`
		CustomPaletteID *string `json:"custom_palette_id"`
	}
	json.Unmarshal(body["active_palette"], &active)
	if active.PaletteType != "custom" || active.CustomPaletteID == nil || *active.CustomPaletteID != created.ID {
		t.Errorf("active palette = %+v", active)
	}

	// Invalid seed color rejected.
	resp, _ = c.do("POST", "/appearance/palettes", map[string]string{
		"name":             "Broken",
		"green_seed_hex":   "nope",
		"red_seed_hex":     "#e65100",
		"yellow_seed_hex":  "#f9a825",
		"blue_seed_hex":    "#1e88e5",
		"magenta_seed_hex": "#8e24aa",
		"cyan_seed_hex":    "#00838f",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid palette status = %d, want 400", resp.StatusCode)
	}
}

func TestLogOutRevokesToken(t *testing.T) {
	c := newTestClient(t)
	c.signUp()

	resp, _ := c.do("POST", "/auth/log-out", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("log-out status = %d", resp.StatusCode)
	}

	resp, _ = c.do("GET", "/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("me after log-out status = %d, want 401", resp.StatusCode)
	}
}
