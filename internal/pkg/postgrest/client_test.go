package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDecodesSuccessBody(t *testing.T) {
	var gotPath, gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	var rows []struct {
		ID int `json:"id"`
	}
	err := client.Get(context.Background(), "employees", NewQuery().Select("*"), &rows)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "/rest/v1/employees", gotPath)
	assert.Equal(t, "secret", gotAPIKey)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestGetEmptyResourceReturnsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	rows := []struct{}{}
	err := client.Get(context.Background(), "employees", nil, &rows)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNon2xxBecomesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	err := client.Post(context.Background(), "employees", map[string]string{"nik": "123"})

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusConflict, backendErr.Status)
	assert.Contains(t, backendErr.Body, "23505")
	assert.True(t, backendErr.IsUniqueViolation())
}

func TestUnreachableHostBecomesTransportError(t *testing.T) {
	// Reserve a port then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "secret", 2*time.Second)
	err := client.Get(context.Background(), "employees", nil, &[]struct{}{})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)

	var backendErr *BackendError
	assert.NotErrorAs(t, err, &backendErr)
}

func TestMalformedSuccessBodyBecomesDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	err := client.Get(context.Background(), "employees", nil, &[]struct{}{})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, `{"not":"an array"`, decodeErr.RawBody)
}

func TestUpsertSendsConflictResolution(t *testing.T) {
	var gotPrefer, gotOnConflict, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotOnConflict = r.URL.Query().Get("on_conflict")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	err := client.Upsert(context.Background(), "presensi", "employee_id,tanggal", map[string]any{
		"employee_id": 1,
		"tanggal":     "2024-02-01",
		"status":      "hadir",
	})

	require.NoError(t, err)
	assert.Equal(t, "resolution=merge-duplicates", gotPrefer)
	assert.Equal(t, "employee_id,tanggal", gotOnConflict)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDeleteAppliesIdentityPredicate(t *testing.T) {
	var gotRawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.Query().Get("nama")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	err := client.Delete(context.Background(), "jabatan", NewQuery().Eq("nama", "Staff Gudang"))

	require.NoError(t, err)
	assert.Equal(t, "eq.Staff Gudang", gotRawQuery)
}
