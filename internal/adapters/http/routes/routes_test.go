package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/http/middleware"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/config"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	return newTestAppWithAuth(t, config.AuthConfig{})
}

func newTestAppWithAuth(t *testing.T, auth config.AuthConfig) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret", ExpiryMinutes: 60},
		Auth:    auth,
	}
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(cfg)})
	Setup(app, db, cfg)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp, decoded
}

func loginAs(t *testing.T, app *fiber.App, email, pass string) string {
	t.Helper()

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": pass,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login %s: status %d, body %v", email, resp.StatusCode, body)
	}
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("login %s: no token in %v", email, body)
	}
	return token
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	return loginAs(t, app, config.DefaultAdminEmail, "admin123456")
}

func TestLoginAndProtectedAccess(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/members", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("members with token: status %d, body %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}

	resp, body = doRequest(t, app, fiber.MethodGet, "/api/auth/verify", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("verify: status %d, body %v", resp.StatusCode, body)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok || user["email"] != config.DefaultAdminEmail {
		t.Errorf("verify user = %v", body["user"])
	}
}

func TestMissingAndBadTokens(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doRequest(t, app, fiber.MethodGet, "/api/members", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", resp.StatusCode)
	}

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/members", "not-a-jwt", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", resp.StatusCode)
	}
	if body["message"] != "Invalid access token" {
		t.Errorf("garbage token message = %v", body["message"])
	}
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    config.DefaultAdminEmail,
		"password": "wrong-password",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", resp.StatusCode)
	}
	if body["message"] != "Invalid credentials" {
		t.Errorf("bad password message = %v", body["message"])
	}
}

func TestRegisterAndRoleRestrictions(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      "kanyinda@ljmdi.org",
		"password":   "secret-password",
		"last_name":  "Kanyinda",
		"first_name": "Jean",
		"role":       "member",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register: status %d, body %v", resp.StatusCode, body)
	}

	token := loginAs(t, app, "kanyinda@ljmdi.org", "secret-password")

	// members listing is reserved to administrators
	resp, _ = doRequest(t, app, fiber.MethodGet, "/api/members", token, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("member role on /api/members: status %d, want 403", resp.StatusCode)
	}

	// contributions are within the member role's permissions
	resp, _ = doRequest(t, app, fiber.MethodGet, "/api/contributions", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("member role on /api/contributions: status %d, want 200", resp.StatusCode)
	}

	// account administration stays admin only
	resp, _ = doRequest(t, app, fiber.MethodGet, "/api/accounts", token, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("member role on /api/accounts: status %d, want 403", resp.StatusCode)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{
		"email":      "dup@ljmdi.org",
		"password":   "secret-password",
		"last_name":  "Mbuyi",
		"first_name": "Alice",
		"role":       "member",
	}
	resp, _ := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", payload)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first register: status %d", resp.StatusCode)
	}
	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", payload)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("duplicate register: status %d, want 400", resp.StatusCode)
	}
	if body["message"] != "Email already registered" {
		t.Errorf("duplicate register message = %v", body["message"])
	}
}

func TestValidationErrorsListEveryField(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "not-an-email",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("invalid register: status %d", resp.StatusCode)
	}
	errs, ok := body["errors"].([]interface{})
	if !ok {
		t.Fatalf("errors missing from %v", body)
	}
	// email format plus the four required fields
	if len(errs) != 5 {
		t.Errorf("got %d field errors, want 5: %v", len(errs), errs)
	}
}

func TestMemberCrudFlow(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	resp, body := doRequest(t, app, fiber.MethodPost, "/api/members", token, fiber.Map{
		"last_name":  "Tshibanda",
		"first_name": "Paul",
		"email":      "tshibanda@ljmdi.org",
		"join_date":  "2024-01-15",
		"status":     "Active",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create member: status %d, body %v", resp.StatusCode, body)
	}
	created := body["data"].(map[string]interface{})
	id := fmt.Sprintf("%.0f", created["id"].(float64))

	resp, _ = doRequest(t, app, fiber.MethodPost, "/api/members", token, fiber.Map{
		"last_name":  "Kalala",
		"first_name": "Joe",
		"email":      "tshibanda@ljmdi.org",
		"join_date":  "2024-02-01",
		"status":     "Active",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("duplicate member email: status %d, want 400", resp.StatusCode)
	}

	resp, body = doRequest(t, app, fiber.MethodGet, "/api/members/"+id, token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get member: status %d", resp.StatusCode)
	}
	fetched := body["data"].(map[string]interface{})
	if fetched["email"] != "tshibanda@ljmdi.org" {
		t.Errorf("fetched email = %v", fetched["email"])
	}

	resp, _ = doRequest(t, app, fiber.MethodPut, "/api/members/"+id, token, fiber.Map{
		"last_name":  "Tshibanda",
		"first_name": "Paul",
		"email":      "tshibanda@ljmdi.org",
		"join_date":  "2024-01-15",
		"status":     "Inactive",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update member: status %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, fiber.MethodDelete, "/api/members/"+id, token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete member: status %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, fiber.MethodGet, "/api/members/"+id, token, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("get deleted member: status %d, want 404", resp.StatusCode)
	}
}

func TestAttendanceDuplicateConflict(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	_, body := doRequest(t, app, fiber.MethodPost, "/api/members", token, fiber.Map{
		"last_name":  "Ilunga",
		"first_name": "Marie",
		"email":      "ilunga@ljmdi.org",
		"join_date":  "2024-01-15",
		"status":     "Active",
	})
	memberID := body["data"].(map[string]interface{})["id"].(float64)

	_, body = doRequest(t, app, fiber.MethodPost, "/api/activities", token, fiber.Map{
		"title":      "General assembly",
		"type":       "Assembly",
		"start_time": "2026-09-01T10:00:00Z",
		"end_time":   "2026-09-01T12:00:00Z",
	})
	activityID := body["data"].(map[string]interface{})["id"].(float64)

	record := fiber.Map{
		"activity_id": activityID,
		"member_id":   memberID,
		"status":      "Present",
		"timestamp":   "2026-09-01T10:05:00Z",
	}
	resp, _ := doRequest(t, app, fiber.MethodPost, "/api/attendance", token, record)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first attendance: status %d", resp.StatusCode)
	}
	resp, _ = doRequest(t, app, fiber.MethodPost, "/api/attendance", token, record)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate attendance: status %d, want 409", resp.StatusCode)
	}

	path := fmt.Sprintf("/api/attendance/member/%.0f", memberID)
	resp, body = doRequest(t, app, fiber.MethodGet, path, token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("attendance by member: status %d", resp.StatusCode)
	}
	data := body["data"].(map[string]interface{})
	if data["participationRate"] != float64(100) {
		t.Errorf("participationRate = %v, want 100", data["participationRate"])
	}

	resp, body = doRequest(t, app, fiber.MethodGet, "/api/attendance/stats/overview", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("attendance overview: status %d", resp.StatusCode)
	}
	overview := body["data"].(map[string]interface{})
	if overview["total"] != float64(1) || overview["present"] != float64(1) || overview["participationRate"] != float64(100) {
		t.Errorf("overview = %v", overview)
	}
}

func TestDashboardStatsPayload(t *testing.T) {
	app := newTestApp(t)
	token := loginAdmin(t, app)

	_, created := doRequest(t, app, fiber.MethodPost, "/api/members", token, fiber.Map{
		"last_name":  "Ngalula",
		"first_name": "Grace",
		"email":      "ngalula@ljmdi.org",
		"join_date":  "2024-01-01",
		"status":     "Active",
	})
	memberID := created["data"].(map[string]interface{})["id"].(float64)

	resp, _ := doRequest(t, app, fiber.MethodPost, "/api/contributions", token, fiber.Map{
		"member_id":      memberID,
		"type":           "Weekly",
		"amount":         10,
		"currency":       "USD",
		"payment_date":   "2024-12-01",
		"payment_status": "Paid",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create contribution: status %d", resp.StatusCode)
	}

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/dashboard/stats", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("dashboard stats: status %d, body %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]interface{})
	for _, key := range []string{"activeMembers", "treasury", "participationRate", "statusBreakdown", "contributionsEvolution"} {
		if _, ok := data[key]; !ok {
			t.Errorf("stats payload missing %q: %v", key, data)
		}
	}
	if treasury, _ := data["treasury"].(float64); treasury < 10 {
		t.Errorf("treasury = %v, want >= 10", data["treasury"])
	}
}

func TestDevBypassToken(t *testing.T) {
	app := newTestAppWithAuth(t, config.AuthConfig{DevBypass: true, DevToken: "local-dev-token"})

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/members", "local-dev-token", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bypass token: status %d, body %v", resp.StatusCode, body)
	}

	resp, body = doRequest(t, app, fiber.MethodGet, "/api/auth/verify", "local-dev-token", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bypass verify: status %d", resp.StatusCode)
	}
	user := body["user"].(map[string]interface{})
	if user["role"] != "admin" || user["email"] != config.DefaultAdminEmail {
		t.Errorf("bypass identity = %v", user)
	}

	// the sentinel is inert unless the flag is on
	plain := newTestApp(t)
	resp, _ = doRequest(t, plain, fiber.MethodGet, "/api/members", "local-dev-token", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bypass token with flag off: status %d, want 401", resp.StatusCode)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, body := doRequest(t, app, fiber.MethodGet, "/health", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("health body = %v", body)
	}
}
