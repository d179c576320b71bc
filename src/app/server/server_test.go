package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
	"survivordraft/src/infra/config"
)

const testAdminPassword = "torch-snuffer"

func newTestServer(repo ports.DraftRepository) *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:   config.LogConfig{Level: "info", Format: "json"},
		Admin: config.AdminConfig{Password: testAdminPassword},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, log, repo)
}

func doJSON(t *testing.T, srv *Server, method, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/health/detailed", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database"`)
}

func TestSessionJoinAndUsers(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodPost, "/v1/session/join", `{"username":"alice"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var joined struct {
		Username string `json:"username"`
		Created  bool   `json:"created"`
	}
	decodeData(t, rec, &joined)
	assert.Equal(t, "alice", joined.Username)
	assert.True(t, joined.Created)

	// Same name again logs in instead of registering.
	rec = doJSON(t, srv, http.MethodPost, "/v1/session/join", `{"username":"Alice"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &joined)
	assert.False(t, joined.Created)

	rec = doJSON(t, srv, http.MethodGet, "/v1/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []string
	decodeData(t, rec, &users)
	assert.Equal(t, []string{"alice"}, users)
}

func TestSessionJoinRejectsMissingUsername(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodPost, "/v1/session/join", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestCastawayListWithTribeFilter(t *testing.T) {
	repo := newMemRepo(
		domain.Castaway{PlayerName: "Ana", Tribe: "Vatu"},
		domain.Castaway{PlayerName: "Ben", Tribe: "Cila"},
	)
	srv := newTestServer(repo)

	rec := doJSON(t, srv, http.MethodGet, "/v1/castaways?tribe=Cila", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var castaways []domain.Castaway
	decodeData(t, rec, &castaways)
	require.Len(t, castaways, 1)
	assert.Equal(t, "Ben", castaways[0].PlayerName)
}

func TestPicksRoundTrip(t *testing.T) {
	repo := newMemRepo(
		domain.Castaway{PlayerName: "Ana", Tribe: "Vatu"},
		domain.Castaway{PlayerName: "Ben", Tribe: "Cila"},
		domain.Castaway{PlayerName: "Cleo", Tribe: "Kalo"},
	)
	srv := newTestServer(repo)

	rec := doJSON(t, srv, http.MethodPost, "/v1/session/join", `{"username":"alice"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/v1/users/alice/picks",
		`{"picks":[{"player_name":"Ben","predicted_rank":1},{"player_name":"Ana","predicted_rank":3}]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var saved struct {
		Saved int `json:"saved"`
		Total int `json:"total"`
	}
	decodeData(t, rec, &saved)
	assert.Equal(t, 2, saved.Saved)
	assert.Equal(t, 3, saved.Total)

	rec = doJSON(t, srv, http.MethodGet, "/v1/users/alice/picks", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []struct {
		PlayerName    string `json:"player_name"`
		PredictedRank *int   `json:"predicted_rank"`
	}
	decodeData(t, rec, &rows)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0].PlayerName)
	require.NotNil(t, rows[0].PredictedRank)
	assert.Equal(t, 3, *rows[0].PredictedRank)
	assert.Nil(t, rows[2].PredictedRank) // Cleo unranked
}

func TestPicksValidationSurfacesAsHTTP400(t *testing.T) {
	repo := newMemRepo(
		domain.Castaway{PlayerName: "Ana", Tribe: "Vatu"},
		domain.Castaway{PlayerName: "Ben", Tribe: "Cila"},
	)
	srv := newTestServer(repo)
	doJSON(t, srv, http.MethodPost, "/v1/session/join", `{"username":"alice"}`, nil)

	rec := doJSON(t, srv, http.MethodPut, "/v1/users/alice/picks",
		`{"picks":[{"player_name":"Ana","predicted_rank":1},{"player_name":"Ben","predicted_rank":1}]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "duplicate rank")
}

func TestPicksForUnknownUser(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodGet, "/v1/users/ghost/picks", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestOverviewEndpoints(t *testing.T) {
	one, two := 1, 2
	repo := newMemRepo(
		domain.Castaway{PlayerName: "Ana", Tribe: "Vatu", ActualRank: &one},
		domain.Castaway{PlayerName: "Ben", Tribe: "Cila", ActualRank: &two},
		domain.Castaway{PlayerName: "Cleo", Tribe: "Kalo"},
		domain.Castaway{PlayerName: "Dina", Tribe: "Vatu"},
	)
	repo.preds = []domain.Prediction{
		{Username: "alice", PlayerName: "Ben", PredictedRank: 2},
		{Username: "bob", PlayerName: "Ben", PredictedRank: 4},
	}
	srv := newTestServer(repo)

	rec := doJSON(t, srv, http.MethodGet, "/v1/overview/scores", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var leaderboard []map[string]any
	decodeData(t, rec, &leaderboard)
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "alice", leaderboard[0]["username"])

	rec = doJSON(t, srv, http.MethodGet, "/v1/overview/progression", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/v1/overview/standings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var table struct {
		Usernames []string         `json:"usernames"`
		Rows      []map[string]any `json:"rows"`
	}
	decodeData(t, rec, &table)
	assert.Equal(t, []string{"alice", "bob"}, table.Usernames)
	assert.Len(t, table.Rows, 4)

	rec = doJSON(t, srv, http.MethodGet, "/v1/overview/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state struct {
		State struct {
			NEliminated int `json:"n_eliminated"`
		} `json:"state"`
		Narrative []string `json:"narrative"`
	}
	decodeData(t, rec, &state)
	assert.Equal(t, 2, state.State.NEliminated)
	require.NotEmpty(t, state.Narrative)
	assert.Equal(t, "Previously on Survivor...", state.Narrative[0])
}

func TestAdminAuthGuard(t *testing.T) {
	repo := newMemRepo(domain.Castaway{PlayerName: "Ana", Tribe: "Vatu"})
	srv := newTestServer(repo)

	// No header at all.
	rec := doJSON(t, srv, http.MethodPut, "/v1/admin/castaways/Ana/outcome", `{"actual_rank":1}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong password.
	rec = doJSON(t, srv, http.MethodPut, "/v1/admin/castaways/Ana/outcome", `{"actual_rank":1}`,
		map[string]string{"X-Admin-Password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct password records the outcome.
	rec = doJSON(t, srv, http.MethodPut, "/v1/admin/castaways/Ana/outcome", `{"actual_rank":1}`,
		map[string]string{"X-Admin-Password": testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated domain.Castaway
	decodeData(t, rec, &updated)
	require.NotNil(t, updated.ActualRank)
	assert.Equal(t, 1, *updated.ActualRank)
}

func TestAdminLogin(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodPost, "/v1/admin/login", `{"password":"`+testAdminPassword+`"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)

	rec = doJSON(t, srv, http.MethodPost, "/v1/admin/login", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodGet, "/v1/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestResponsesCarryRequestID(t *testing.T) {
	srv := newTestServer(newMemRepo())

	rec := doJSON(t, srv, http.MethodGet, "/v1/users/ghost/picks", "", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(newMemRepo())
	doJSON(t, srv, http.MethodGet, "/health", "", nil)

	rec := doJSON(t, srv, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "survivordraft_http_requests_total")
}

// memRepo is an in-memory ports.DraftRepository for router tests.
type memRepo struct {
	users     []domain.User
	castaways []domain.Castaway
	preds     []domain.Prediction
	nextID    int64
}

var _ ports.DraftRepository = (*memRepo)(nil)

func newMemRepo(castaways ...domain.Castaway) *memRepo {
	return &memRepo{castaways: castaways, nextID: 1}
}

func (m *memRepo) Health(ctx context.Context) error { return nil }

func (m *memRepo) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	user := domain.User{ID: m.nextID, Username: username, CreatedAt: time.Now()}
	m.nextID++
	m.users = append(m.users, user)
	return &user, nil
}

func (m *memRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			user := u
			return &user, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memRepo) ListUsernames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.users))
	for _, u := range m.users {
		names = append(names, u.Username)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memRepo) ListCastaways(ctx context.Context) ([]domain.Castaway, error) {
	out := make([]domain.Castaway, len(m.castaways))
	copy(out, m.castaways)
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out, nil
}

func (m *memRepo) GetCastaway(ctx context.Context, playerName string) (*domain.Castaway, error) {
	for _, c := range m.castaways {
		if c.PlayerName == playerName {
			castaway := c
			return &castaway, nil
		}
	}
	return nil, domain.NewNotFoundError("castaway")
}

func (m *memRepo) UpdateOutcome(ctx context.Context, playerName string, update ports.OutcomeUpdate) (*domain.Castaway, error) {
	for i := range m.castaways {
		if m.castaways[i].PlayerName != playerName {
			continue
		}
		if update.ActualRank != nil {
			m.castaways[i].ActualRank = update.ActualRank
		}
		if update.IsFinalThree != nil {
			m.castaways[i].IsFinalThree = *update.IsFinalThree
		}
		if update.IsWinner != nil {
			m.castaways[i].IsWinner = *update.IsWinner
		}
		castaway := m.castaways[i]
		return &castaway, nil
	}
	return nil, domain.NewNotFoundError("castaway")
}

func (m *memRepo) ListPredictions(ctx context.Context) ([]domain.Prediction, error) {
	out := make([]domain.Prediction, len(m.preds))
	copy(out, m.preds)
	return out, nil
}

func (m *memRepo) ListPredictionsByUser(ctx context.Context, username string) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range m.preds {
		if strings.EqualFold(p.Username, username) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memRepo) ReplacePredictions(ctx context.Context, username string, predictions []domain.Prediction) error {
	kept := m.preds[:0]
	for _, p := range m.preds {
		if !strings.EqualFold(p.Username, username) {
			kept = append(kept, p)
		}
	}
	m.preds = append(kept, predictions...)
	return nil
}
