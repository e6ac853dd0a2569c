package sheetsync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylark/droneops/internal/httputil"
	"github.com/skylark/droneops/pkg/types"
)

func init() {
	// Use a tiny base delay so retry tests finish quickly.
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func testPilots() []*types.Pilot {
	return []*types.Pilot{
		{ID: "P1", Name: "Anjali", Status: types.StatusOnLeave, DailyRate: 5000},
		{ID: "P2", Name: "Ravi", Status: types.StatusAssigned, CurrentAssignment: "M1", DailyRate: 7500},
	}
}

func testConfig(endpoint string) types.SheetSyncConfig {
	return types.SheetSyncConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "droneops-test/0.1",
		},
		Endpoint:    endpoint,
		Spreadsheet: "skylark-ops",
		MaxRetries:  3,
	}
}

func TestSyncPilotsPushesWorksheet(t *testing.T) {
	var gotPath, gotAuth, gotAgent string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), "tok-123")
	require.NoError(t, c.SyncPilots(context.Background(), testPilots()))

	assert.Equal(t, "/spreadsheets/skylark-ops/worksheets/pilot-roster", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "droneops-test/0.1", gotAgent)

	var rows []types.Pilot
	require.NoError(t, json.Unmarshal(gotBody, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "P1", rows[0].ID)
	assert.Equal(t, types.StatusOnLeave, rows[0].Status)
}

func TestSyncPilotsNoTokenOmitsAuthHeader(t *testing.T) {
	var sawAuth bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), "")
	require.NoError(t, c.SyncPilots(context.Background(), testPilots()))
	assert.False(t, sawAuth)
}

func TestSyncPilotsRetriesThrottledPush(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), "tok")
	require.NoError(t, c.SyncPilots(context.Background(), testPilots()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSyncPilotsSurfacesBridgeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "worksheet locked", http.StatusConflict)
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL), "tok")
	err := c.SyncPilots(context.Background(), testPilots())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worksheet locked")
	assert.Contains(t, err.Error(), "409")
}
