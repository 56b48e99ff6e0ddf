package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"camisetas-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationLifecycleScenario(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	seedVerifiedUser(t, adminEmail, "admin-secret")
	ownerToken := loginToken(t, r, "ana@example.com", "secret123")
	adminToken := loginToken(t, r, adminEmail, "admin-secret")

	// Owner places a reservation
	w := doJSON(t, r, http.MethodPost, "/api/reservations", ownerToken, gin.H{
		"design":       "Diseño 1",
		"size":         "M",
		"pickup_point": "Crossfit Do-Box",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["reservation"].(map[string]interface{})
	id := uint(created["id"].(float64))
	assert.Equal(t, "PROVISIONAL", created["status"])

	// Admin advances to PAID
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/reservations/%d/status", id), adminToken, gin.H{
		"status": "PAID",
		"note":   "bizum received",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Reserva pagada", decode(t, w)["status_label"])

	// Owner can no longer delete
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", id), ownerToken, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "PAID", decode(t, w)["current_status"])

	// The record is unchanged and still visible to its owner
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reservations/%d", id), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)["reservation"].(map[string]interface{})
	assert.Equal(t, "PAID", got["status"])
}

func TestCreateReservationValidatesCatalog(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	token := loginToken(t, r, "ana@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{
		"design":       "Diseño 9",
		"size":         "M",
		"pickup_point": "Crossfit Do-Box",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "design", decode(t, w)["field"])

	// Missing fields are caught by binding before the repository
	w = doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{"design": "Diseño 1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProvisionalReservation(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	token := loginToken(t, r, "ana@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reservations", token, gin.H{
		"design":       "Diseño 2",
		"size":         "L",
		"pickup_point": "Wallapop",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(decode(t, w)["reservation"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reservations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestOwnersNeverSeeEachOther(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	seedVerifiedUser(t, "bruno@example.com", "secret456")
	tokenA := loginToken(t, r, "ana@example.com", "secret123")
	tokenB := loginToken(t, r, "bruno@example.com", "secret456")

	w := doJSON(t, r, http.MethodPost, "/api/reservations", tokenA, gin.H{
		"design": "Diseño 1", "size": "S", "pickup_point": "Wallapop",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/reservations", tokenB, gin.H{
		"design": "Diseño 2", "size": "XL", "pickup_point": "Crossfit Torredembarra",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	idB := uint(decode(t, w)["reservation"].(map[string]interface{})["id"].(float64))

	// Listings are owner-scoped
	w = doJSON(t, r, http.MethodGet, "/api/reservations", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
	only := body["reservations"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Diseño 1", only["design"])

	// Foreign detail and delete read as not found
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reservations/%d", idB), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", idB), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminEndpointsAreGated(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	token := loginToken(t, r, "ana@example.com", "secret123")

	// A regular user never reaches the aggregate view
	w := doJSON(t, r, http.MethodGet, "/api/admin/reservations", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/reservations/1/status", token, gin.H{"status": "PAID"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No token at all
	w = doJSON(t, r, http.MethodGet, "/api/admin/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminDashboardView(t *testing.T) {
	r := setupServer(t)
	seedVerifiedUser(t, "ana@example.com", "secret123")
	seedVerifiedUser(t, "bruno@example.com", "secret456")
	seedVerifiedUser(t, adminEmail, "admin-secret")
	tokenA := loginToken(t, r, "ana@example.com", "secret123")
	tokenB := loginToken(t, r, "bruno@example.com", "secret456")
	adminToken := loginToken(t, r, adminEmail, "admin-secret")

	doJSON(t, r, http.MethodPost, "/api/reservations", tokenA, gin.H{
		"design": "Diseño 1", "size": "M", "pickup_point": "Crossfit Do-Box",
	})
	doJSON(t, r, http.MethodPost, "/api/reservations", tokenB, gin.H{
		"design": "Diseño 2", "size": "L", "pickup_point": "Wallapop",
	})

	w := doJSON(t, r, http.MethodGet, "/api/admin/reservations", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["count"])

	summary := body["reservation_summary"].(map[string]interface{})
	assert.EqualValues(t, 2, summary["PROVISIONAL"])

	rows := body["reservations"].([]interface{})
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		owner := row["owner"].(map[string]interface{})
		assert.NotEmpty(t, owner["email"], "each row carries the owner's public profile")
		assert.Equal(t, "Reserva provisional", row["status_label"])
	}

	// Dashboard free-text search
	w = doJSON(t, r, http.MethodGet, "/api/admin/reservations?q=bruno", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}

func TestLifecycleInfoEndpoint(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/reservation-lifecycle", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	statuses := body["statuses"].([]interface{})
	assert.Equal(t, []interface{}{"PROVISIONAL", "PAID", "RECEIVED"}, statuses)

	labels := body["labels"].(map[string]interface{})
	assert.Equal(t, models.StatusProvisional.Label(), labels["PROVISIONAL"])
}
