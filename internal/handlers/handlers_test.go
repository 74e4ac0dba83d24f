package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/SmartLocalApps/service-finder/internal/db"
	"github.com/SmartLocalApps/service-finder/internal/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	database, err := dbpkg.Open(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	require.NoError(t, dbpkg.Seed(database))

	r := gin.New()
	routes.RegisterRoutes(r, database)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestListServices(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var services []map[string]any
	decode(t, w, &services)
	require.Len(t, services, 9)

	keys := make(map[string]bool)
	for _, s := range services {
		keys[s["key"].(string)] = true
		assert.NotEmpty(t, s["displayName"])
		assert.IsType(t, []any{}, s["categories"])
	}
	assert.True(t, keys["ac_service"])
	assert.True(t, keys["other"])
}

func TestRegisterThenConflict(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{
		"name": "Asha", "phone": "9000000001",
		"password": "secret", "role": "customer",
	}

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		User    struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "customer", resp.User.Role)
	assert.NotEmpty(t, resp.User.ID)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusConflict, w.Code)

	var errResp struct {
		Error string `json:"error"`
	}
	decode(t, w, &errResp)
	assert.NotEmpty(t, errResp.Error)

	// The duplicate is also visible through the check endpoint.
	w = doJSON(t, r, http.MethodGet, "/api/check-duplicate?phone=9000000001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dup struct {
		Exists bool `json:"exists"`
	}
	decode(t, w, &dup)
	assert.True(t, dup.Exists)
}

func registerWorker(t *testing.T, r *gin.Engine, phone, service string) (userID, workerID string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/workers/register", gin.H{
		"user": gin.H{
			"name": "Ravi", "phone": phone, "password": "secret",
		},
		"worker": gin.H{
			"service": service, "cost": 350,
			"latitude": 12.9716, "longitude": 77.5946,
			"slots": gin.H{"mon": []string{"10:00", "14:00"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID       string `json:"id"`
			WorkerID string `json:"workerId"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.User.WorkerID)
	return resp.User.ID, resp.User.WorkerID
}

func TestWorkerRegistrationAndMatching(t *testing.T) {
	r := setupRouter(t)
	_, workerID := registerWorker(t, r, "9000000002", "ac_service")

	// Loose filter matches the key variant.
	w := doJSON(t, r, http.MethodGet, "/api/workers?service=service", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var workers []map[string]any
	decode(t, w, &workers)
	require.Len(t, workers, 1)
	assert.Equal(t, workerID, workers[0]["id"])
	assert.Equal(t, workerID, workers[0]["_id"])
	assert.Equal(t, "Ravi", workers[0]["name"])

	// Unrelated filter excludes it.
	w = doJSON(t, r, http.MethodGet, "/api/workers?service=plumber", nil)
	decode(t, w, &workers)
	assert.Empty(t, workers)

	// With an origin the result carries a rounded distance.
	w = doJSON(t, r, http.MethodGet, "/api/workers?service=ac_service&lat=13.0827&lng=77.5946", nil)
	decode(t, w, &workers)
	require.Len(t, workers, 1)
	assert.InDelta(t, 12.4, workers[0]["distance"].(float64), 0.5)
}

func TestWorkerDetailAndAvailability(t *testing.T) {
	r := setupRouter(t)
	_, workerID := registerWorker(t, r, "9000000003", "plumber")

	w := doJSON(t, r, http.MethodGet, "/api/workers/"+workerID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail map[string]any
	decode(t, w, &detail)
	assert.Equal(t, true, detail["available"])
	assert.EqualValues(t, 0, detail["earnings"])
	assert.EqualValues(t, 0, detail["totalBookings"])
	assert.NotNil(t, detail["slots"])

	w = doJSON(t, r, http.MethodGet, "/api/workers/worker_404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/workers/"+workerID+"/availability", gin.H{"available": false})
	require.Equal(t, http.StatusOK, w.Code)
	var noop map[string]any
	decode(t, w, &noop)
	assert.Equal(t, true, noop["available"])
}

func TestBookingLifecycle(t *testing.T) {
	r := setupRouter(t)
	userID, workerID := registerWorker(t, r, "9000000004", "plumber")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"userId": userID, "workerId": workerID, "service": "plumber",
		"slot": "2026-09-02 10:00", "price": 500, "address": "12 MG Road",
		"location": gin.H{"lat": 12.97, "lng": 77.59},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Success   bool   `json:"success"`
		BookingID string `json:"bookingId"`
	}
	decode(t, w, &created)
	require.True(t, created.Success)
	require.NotEmpty(t, created.BookingID)

	w = doJSON(t, r, http.MethodPatch, "/api/bookings/"+created.BookingID+"/status",
		gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/user?userId="+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var userBookings []map[string]any
	decode(t, w, &userBookings)
	require.Len(t, userBookings, 1)
	assert.Equal(t, "completed", userBookings[0]["status"])

	w = doJSON(t, r, http.MethodGet, "/api/bookings/worker/"+workerID, nil)
	var workerBookings []map[string]any
	decode(t, w, &workerBookings)
	require.Len(t, workerBookings, 1)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]any
	decode(t, w, &stats)
	assert.EqualValues(t, 500, stats["totalEarnings"])
	assert.EqualValues(t, 1, stats["totalBookings"])
	assert.EqualValues(t, 0, stats["pendingVerifications"])
}

func TestAddServiceDuplicateKeyFails(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", gin.H{
		"name": "tutoring", "displayName": "Tutoring",
		"categories": []string{"Maths", "Physics"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Same key again surfaces the storage error.
	w = doJSON(t, r, http.MethodPost, "/api/admin/services", gin.H{
		"name": "tutoring", "displayName": "Tutoring Again",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var errResp struct {
		Error string `json:"error"`
	}
	decode(t, w, &errResp)
	assert.NotEmpty(t, errResp.Error)
}

func TestAdminListsAndDelete(t *testing.T) {
	r := setupRouter(t)
	userID, _ := registerWorker(t, r, "9000000005", "plumber")

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	decode(t, w, &users)
	// The seeded admin plus the worker's user account.
	require.Len(t, users, 2)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/users/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/workers?service=all", nil)
	var workers []map[string]any
	decode(t, w, &workers)
	assert.Empty(t, workers)
}
