package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-backend/internal/api"
	"github.com/spendlens/spendlens-backend/internal/api/dto"
	"github.com/spendlens/spendlens-backend/internal/application/service"
	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

// newTestServer wires a server against a real sqlite database in a
// temp directory.
func newTestServer(t *testing.T) (*api.Server, *storage.Storage) {
	t.Helper()

	store, err := storage.NewStorage(t.TempDir() + "/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc, err := service.NewDetectionService(store, nil)
	require.NoError(t, err)

	return api.NewServer(api.DefaultConfig(), store, svc, nil), store
}

func TestServer_HealthRoute(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RecurringEndToEnd(t *testing.T) {
	// Arrange - seed a monthly pattern through real storage
	server, store := newTestServer(t)
	now := time.Now().UTC()
	var txs []ledger.Transaction
	for _, daysAgo := range []int{61, 31, 1} {
		txs = append(txs, ledger.Transaction{
			Date:     now.AddDate(0, 0, -daysAgo),
			Amount:   15.49,
			Merchant: "NETFLIX.COM 123456",
			Category: "Subscriptions",
			Account:  "Checking",
		})
	}
	_, err := store.SaveTransactions(txs)
	require.NoError(t, err)

	// Act
	req := httptest.NewRequest(http.MethodGet, "/api/recurring", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	var response dto.RecurringResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Equal(t, 1, response.Count)
	assert.Equal(t, "Monthly", response.Candidates[0].Frequency)

	// The run was recorded
	runs, err := store.RecentRuns(5)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestServer_UnknownRoute(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
