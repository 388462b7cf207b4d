package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/auth"
	"github.com/JasirAhamed786/unifield-be/internal/database"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/seed"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

type testEnv struct {
	router *chi.Mux
	db     *sql.DB
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenManager(testSecret, time.Hour)
	router := NewRouter(Deps{
		Tokens:         tokens,
		Users:          services.NewUserService(db),
		Stats:          services.NewStatsService(db),
		CropGuides:     services.NewCropGuideService(db),
		Market:         services.NewMarketService(db),
		Schemes:        services.NewSchemeService(db),
		Research:       services.NewResearchService(db),
		Policies:       services.NewPolicyService(db),
		Forum:          services.NewForumService(db),
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return &testEnv{router: router, db: db, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the API and returns a login token plus the
// user ID.
func (e *testEnv) register(t *testing.T, name, email, role string) (token, id string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

// makeAdmin elevates a user directly in the database and mints a fresh token
// carrying the Admin role.
func (e *testEnv) makeAdmin(t *testing.T, id string) string {
	t.Helper()

	_, err := e.db.Exec("UPDATE users SET role = ? WHERE id = ?", models.RoleAdmin, id)
	require.NoError(t, err)
	token, err := e.tokens.Issue(id, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestMutationsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/cropguides", "", map[string]string{
		"name": "Wheat", "season": "Winter", "soil": "Loamy", "water": "500mm",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Nothing was written
	rec = env.do(t, http.MethodGet, "/api/cropguides", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var guides []models.CropGuide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guides))
	assert.Empty(t, guides)
}

func TestRejectsForgedAndExpiredTokens(t *testing.T) {
	env := newTestEnv(t)

	forger := auth.NewTokenManager("attacker-secret", time.Hour)
	forged, err := forger.Issue("any-user", models.RoleAdmin)
	require.NoError(t, err)
	rec := env.do(t, http.MethodPost, "/api/schemes", forged, map[string]string{"title": "x", "description": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	staleIssuer := auth.NewTokenManager(testSecret, -time.Minute)
	stale, err := staleIssuer.Issue("any-user", models.RoleFarmer)
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/api/schemes", stale, map[string]string{"title": "x", "description": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterLoginAndUpdateProfile(t *testing.T) {
	env := newTestEnv(t)

	token, id := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)

	rec := env.do(t, http.MethodPut, "/api/users/"+id, token, map[string]string{
		"name": "Johnny Farmer", "email": "john@example.com", "location": "Punjab",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Johnny Farmer", user.Name)
	assert.Equal(t, "Punjab", user.Location)
	assert.NotContains(t, rec.Body.String(), "password")

	// Without a token the same update is rejected and nothing changes
	rec = env.do(t, http.MethodPut, "/api/users/"+id, "", map[string]string{
		"name": "Nobody", "email": "john@example.com", "location": "Nowhere",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/users/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Punjab", user.Location)
}

func TestRegisterDuplicateEmailStaysGeneric(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Impostor", "email": "john@example.com", "password": "other123", "role": models.RoleExpert,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The response must not reveal that the email exists
	assert.NotContains(t, rec.Body.String(), "email")
	assert.NotContains(t, rec.Body.String(), "exists")
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Sneaky", "email": "sneaky@example.com", "password": "secret123", "role": models.RoleAdmin,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)

	wrongPassword := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "john@example.com", "password": "wrong",
	})
	unknownEmail := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestProfileUpdateOfAnotherUserForbidden(t *testing.T) {
	env := newTestEnv(t)

	_, targetID := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)
	otherToken, _ := env.register(t, "Dr. Sarah", "sarah@example.com", models.RoleExpert)

	rec := env.do(t, http.MethodPut, "/api/users/"+targetID, otherToken, map[string]string{
		"name": "Hacked", "email": "john@example.com",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestForumOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)

	authorToken, authorID := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)
	otherToken, _ := env.register(t, "Dr. Sarah", "sarah@example.com", models.RoleExpert)

	rec := env.do(t, http.MethodPost, "/api/forumposts", authorToken, map[string]interface{}{
		"title": "Aphids on tomatoes", "content": "Help!", "tags": []string{"pest-control"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post models.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	// Authorship comes from the token, never the body
	assert.Equal(t, authorID, post.UserID)

	rec = env.do(t, http.MethodDelete, "/api/forumposts/"+post.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/forumposts/"+post.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/forumposts/"+post.ID, otherToken, map[string]string{
		"title": "Defaced", "content": "x",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/forumposts/"+post.ID, authorToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/api/forumposts/"+post.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminMayModerateForum(t *testing.T) {
	env := newTestEnv(t)

	authorToken, _ := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)
	_, adminID := env.register(t, "Moderator", "mod@example.com", models.RoleExpert)
	adminToken := env.makeAdmin(t, adminID)

	rec := env.do(t, http.MethodPost, "/api/forumposts", authorToken, map[string]string{
		"title": "Spam", "content": "Buy now!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var post models.ForumPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))

	rec = env.do(t, http.MethodDelete, "/api/forumposts/"+post.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesGated(t *testing.T) {
	env := newTestEnv(t)

	farmerToken, farmerID := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)

	for _, path := range []string{"/api/users/", "/api/admin/stats"} {
		rec := env.do(t, http.MethodGet, path, farmerToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	rec := env.do(t, http.MethodPut, "/api/users/"+farmerID+"/role", farmerToken, map[string]string{"role": models.RoleAdmin})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, adminID := env.register(t, "Root", "root@example.com", models.RoleExpert)
	adminToken := env.makeAdmin(t, adminID)

	rec = env.do(t, http.MethodGet, "/api/users/", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = env.do(t, http.MethodPut, "/api/users/"+farmerID+"/role", adminToken, map[string]string{"role": models.RoleExpert})
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, models.RoleExpert, user.Role)

	rec = env.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalUsers)
}

func TestChangePasswordSelfOnly(t *testing.T) {
	env := newTestEnv(t)

	token, id := env.register(t, "John Farmer", "john@example.com", models.RoleFarmer)
	otherToken, _ := env.register(t, "Dr. Sarah", "sarah@example.com", models.RoleExpert)

	rec := env.do(t, http.MethodPut, "/api/users/"+id+"/password", otherToken, map[string]string{
		"currentPassword": "secret123", "newPassword": "newsecret",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/users/"+id+"/password", token, map[string]string{
		"currentPassword": "wrong", "newPassword": "newsecret",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/users/"+id+"/password", token, map[string]string{
		"currentPassword": "secret123", "newPassword": "newsecret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "john@example.com", "password": "newsecret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContentReadsArePublic(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, seed.Run(env.db, "seed-password"))

	for _, path := range []string{
		"/api/cropguides", "/api/marketdata", "/api/schemes",
		"/api/research", "/api/policies", "/api/forumposts",
	} {
		rec := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEqual(t, "null", rec.Body.String(), path)
	}
}

func TestContentCrudRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "Dr. Sarah", "sarah@example.com", models.RoleExpert)

	rec := env.do(t, http.MethodPost, "/api/schemes", token, map[string]string{
		"title": "Credit Subsidy", "description": "Interest subvention", "category": "Loan",
		"eligibility": "All farmers", "benefits": "3% subvention", "applicationProcess": "Through banks",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var scheme models.GovernmentScheme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scheme))
	assert.True(t, scheme.IsActive)

	rec = env.do(t, http.MethodGet, "/api/schemes/"+scheme.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/schemes/"+scheme.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/schemes/"+scheme.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdvisoryStubs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/weather", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var weather map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &weather))
	assert.Contains(t, weather, "temperature")
}
