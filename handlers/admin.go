package handlers

import (
	"net/http"
	"time"

	"camisetas-api/config"
	"camisetas-api/middleware"
	"camisetas-api/models"
	"camisetas-api/statemachine"

	"github.com/gin-gonic/gin"
)

// adminReservationRow joins a reservation with its owner's public profile
type adminReservationRow struct {
	ID          uint                     `json:"id"`
	Design      string                   `json:"design"`
	Size        string                   `json:"size"`
	PickupPoint string                   `json:"pickup_point"`
	Status      models.ReservationStatus `json:"status"`
	StatusLabel string                   `json:"status_label"`
	CreatedAt   time.Time                `json:"created_at"`
	Owner       models.PublicProfile     `json:"owner"`
}

// AdminGetAllReservations returns every reservation joined with its
// owner's public profile — admin only. Supports ?status= and a free-text
// ?q= filter like the dashboard search box.
func AdminGetAllReservations(c *gin.Context) {
	reservations, err := Resv.ListAll(c.Query("status"), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	// Dashboard summary: counts per lifecycle state
	summary := map[string]int{}
	rows := make([]adminReservationRow, 0, len(reservations))
	for _, r := range reservations {
		summary[string(r.Status)]++
		rows = append(rows, adminReservationRow{
			ID:          r.ID,
			Design:      r.Design,
			Size:        r.Size,
			PickupPoint: r.PickupPoint,
			Status:      r.Status,
			StatusLabel: r.Status.Label(),
			CreatedAt:   r.CreatedAt,
			Owner:       r.User.Public(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation_summary": summary,
		"count":               len(rows),
		"reservations":        rows,
	})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
	Note   string                   `json:"note"`
}

// AdminUpdateReservationStatus advances a reservation one lifecycle step
func AdminUpdateReservationStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := Resv.SetStatus(id, req.Status, middleware.GetUserID(c), req.Note)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Reservation status updated",
		"reservation_id": reservation.ID,
		"current_status": reservation.Status,
		"status_label":   reservation.Status.Label(),
	})
}

type ForceReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
	Reason string                   `json:"reason"`
}

// AdminForceReservationStatus lets the admin jump a reservation forward
// past a step (e.g. cash handed over in person). Never moves backward.
func AdminForceReservationStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req ForceReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := Resv.ForceStatus(id, req.Status, middleware.GetUserID(c), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Reservation status force-updated by admin",
		"reservation_id": reservation.ID,
		"current_status": reservation.Status,
	})
}

// AdminGetAllUsers returns all registered users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetLifecycleInfo exposes the reservation state machine for documentation
func GetLifecycleInfo(c *gin.Context) {
	labels := map[string]string{}
	for _, s := range models.AllStatuses {
		labels[string(s)] = s.Label()
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":    models.AllStatuses,
		"labels":      labels,
		"transitions": statemachine.GetAllTransitions(),
	})
}
