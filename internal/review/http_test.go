package review

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	handler := NewHandler(NewService(store))

	r := chi.NewRouter()
	r.Mount("/reviews", handler.Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, store
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

// Full lifecycle: create, list, forbidden delete, owner delete, empty list.
func TestReviewLifecycle(t *testing.T) {
	server, _ := newTestServer(t)
	url := server.URL + "/reviews"

	// Create without an id
	resp, body := doJSON(t, http.MethodPost, url, map[string]interface{}{
		"tournament":        "Spring Cup",
		"ageGroup":          "U12",
		"gender":            "Girls",
		"level":             "Gold",
		"fieldRating":       4,
		"competitionRating": 5,
		"reviewer":          "Alex",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created upsertResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "success", created.Status)
	require.NotEmpty(t, created.Review.ID)
	assert.NotEmpty(t, created.Review.Timestamp)

	// List shows exactly one record with the submitted content
	resp, body = doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed listResponse
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed.Reviews, 1)
	assert.Equal(t, 4, listed.Reviews[0].FieldRating)

	// A different reviewer may not delete it
	resp, _ = doJSON(t, http.MethodDelete, url, map[string]string{
		"id":       created.Review.ID,
		"reviewer": "Sam",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The owner may
	resp, body = doJSON(t, http.MethodDelete, url, map[string]string{
		"id":       created.Review.ID,
		"reviewer": "Alex",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status statusResponse
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "success", status.Status)

	// List is empty again, and the envelope still carries an array
	resp, body = doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"reviews":[]}`, string(body))
}

func TestPostMissingFieldResponse(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/reviews", map[string]interface{}{
		"tournament": "Spring Cup",
		"reviewer":   "Alex",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing required field: ageGroup"}`, string(body))
}

func TestPostInvalidJSON(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/reviews", bytes.NewBufferString("{broken"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteErrorResponses(t *testing.T) {
	server, _ := newTestServer(t)
	url := server.URL + "/reviews"

	resp, body := doJSON(t, http.MethodDelete, url, map[string]string{"reviewer": "Alex"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing review ID"}`, string(body))

	resp, body = doJSON(t, http.MethodDelete, url, map[string]string{
		"id":       "review-404-zzzzzz",
		"reviewer": "Alex",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Review not found"}`, string(body))
}

func TestListSurvivesCorruptEntry(t *testing.T) {
	server, store := newTestServer(t)

	require.NoError(t, store.Set(context.Background(), "review-bad", []byte("not json at all")))

	resp, body := doJSON(t, http.MethodGet, server.URL+"/reviews", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"reviews":[]}`, string(body))
}
