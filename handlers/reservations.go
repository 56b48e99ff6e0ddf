package handlers

import (
	"net/http"
	"strconv"

	"camisetas-api/middleware"
	"camisetas-api/repository"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	Design      string `json:"design" binding:"required"`
	Size        string `json:"size" binding:"required"`
	PickupPoint string `json:"pickup_point" binding:"required"`
}

// CreateReservation places a new pre-order for the logged-in user
func CreateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := Resv.Create(repository.CreateInput{
		OwnerID:     userID,
		Design:      req.Design,
		Size:        req.Size,
		PickupPoint: req.PickupPoint,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation placed",
		"reservation": reservation,
	})
}

// GetMyReservations returns the logged-in user's reservations, newest first
func GetMyReservations(c *gin.Context) {
	userID := middleware.GetUserID(c)

	reservations, err := Resv.ListForOwner(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetReservationDetail returns one reservation with its status history
func GetReservationDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	reservation, err := Resv.GetForOwner(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// DeleteReservation removes a reservation, allowed only while provisional
func DeleteReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	if err := Resv.Delete(id, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted", "reservation_id": id})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
