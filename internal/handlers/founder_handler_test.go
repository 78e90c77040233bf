package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelink/venturelink/internal/models"
)

func TestGetFoundersEmptyCollection(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/founders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Founder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got)
}

// Whole-collection replace followed by a read returns exactly the posted
// collection: no server-side merge.
func TestReplaceFoundersRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	posted := []models.Founder{
		{
			ID: "f1", Name: "Alice", Email: "alice@example.com", Company: "Acme",
			Industry: "Robotics", Stage: "Seed", Location: "Berlin",
			Status: models.StatusActive, Favorites: []string{"i1"}, CreatedAt: created,
		},
		{
			ID: "f2", Name: "Carol", Email: "carol@example.com", Company: "Greenleaf",
			Industry: "AgTech", Stage: "Series A", Location: "Lisbon",
			Status: models.StatusSuspended, Favorites: []string{}, CreatedAt: created,
		},
	}

	body, err := json.Marshal(map[string]interface{}{"founders": posted})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/founders", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var postResp struct {
		Success  bool             `json:"success"`
		Founders []models.Founder `json:"founders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &postResp))
	assert.True(t, postResp.Success)

	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/founders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Founder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, posted, got)

	// A second replace discards the first wholesale.
	body, err = json.Marshal(map[string]interface{}{"founders": posted[:1]})
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/founders", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/founders", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, posted[:1], got)
}

func TestReplaceFoundersRejectsBadPayload(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/founders", bytes.NewReader([]byte("not json"))))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestApplyFounderCreatesRecord(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(models.Founder{
		Name: "Dana", Email: "dana@example.com", Company: "Finely",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/founders/apply", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Founder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
}
