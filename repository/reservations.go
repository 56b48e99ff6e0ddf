package repository

import (
	"errors"

	"camisetas-api/apperrors"
	"camisetas-api/models"
	"camisetas-api/statemachine"

	"gorm.io/gorm"
)

// Reservations is the scoped CRUD façade over the reservation table.
// Owner-facing methods re-check ownership here, so the HTTP layer is
// never the only guard.
type Reservations struct {
	db *gorm.DB
}

func NewReservations(db *gorm.DB) *Reservations {
	return &Reservations{db: db}
}

// CreateInput carries the order form fields
type CreateInput struct {
	OwnerID     uint
	Design      string
	Size        string
	PickupPoint string
}

func (in CreateInput) validate() error {
	if in.OwnerID == 0 {
		return &apperrors.ValidationError{Field: "owner", Reason: "missing owning user"}
	}
	if !models.ValidDesign(in.Design) {
		return &apperrors.ValidationError{Field: "design", Reason: "must be one of the catalog designs"}
	}
	if !models.ValidSize(in.Size) {
		return &apperrors.ValidationError{Field: "size", Reason: "must be one of the catalog sizes"}
	}
	if !models.ValidPickupPoint(in.PickupPoint) {
		return &apperrors.ValidationError{Field: "pickup_point", Reason: "must be one of the pickup points"}
	}
	return nil
}

// Create inserts a reservation with status PROVISIONAL and records the
// initial history row
func (r *Reservations) Create(in CreateInput) (*models.Reservation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		UserID:      in.OwnerID,
		Design:      in.Design,
		Size:        in.Size,
		PickupPoint: in.PickupPoint,
		Status:      models.StatusProvisional,
	}
	if err := r.db.Create(&reservation).Error; err != nil {
		return nil, &apperrors.BackendError{Op: "create reservation", Err: err}
	}

	history := models.ReservationStatusHistory{
		ReservationID: reservation.ID,
		ToStatus:      models.StatusProvisional,
		ChangedBy:     in.OwnerID,
		Note:          "Reservation placed",
	}
	r.db.Create(&history)

	return &reservation, nil
}

// ListForOwner returns the owner's reservations, newest first. An empty
// result is valid, not an error.
func (r *Reservations) ListForOwner(ownerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("StatusHistory").
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&reservations).Error
	if err != nil {
		return nil, &apperrors.BackendError{Op: "list reservations", Err: err}
	}
	return reservations, nil
}

// GetForOwner loads one reservation, rejecting foreign owners
func (r *Reservations) GetForOwner(id, ownerID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.Preload("StatusHistory").First(&reservation, id).Error; err != nil {
		return nil, err
	}
	if reservation.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return &reservation, nil
}

// ListAll returns every reservation with its owner joined, newest first.
// Optional filters: exact status, free-text q over owner name/email/phone
// and reservation design/status. Admin gating happens in middleware
// before this is reachable.
func (r *Reservations) ListAll(status, q string) ([]models.Reservation, error) {
	query := r.db.Preload("User").Preload("StatusHistory").
		Joins("JOIN users ON users.id = reservations.user_id")

	if status != "" {
		query = query.Where("reservations.status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"users.full_name LIKE ? OR users.email LIKE ? OR users.phone LIKE ? OR reservations.design LIKE ? OR reservations.status LIKE ?",
			like, like, like, like, like,
		)
	}

	var reservations []models.Reservation
	if err := query.Order("reservations.created_at desc").Find(&reservations).Error; err != nil {
		return nil, &apperrors.BackendError{Op: "list all reservations", Err: err}
	}
	return reservations, nil
}

// Delete removes an owner's reservation, permitted only while PROVISIONAL
func (r *Reservations) Delete(id, ownerID uint) error {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return err
	}
	if reservation.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	if reservation.Status != models.StatusProvisional {
		return &apperrors.InvalidStateError{
			Current: string(reservation.Status),
			Reason:  "only provisional reservations can be deleted",
		}
	}
	if err := r.db.Delete(&reservation).Error; err != nil {
		return &apperrors.BackendError{Op: "delete reservation", Err: err}
	}
	r.db.Where("reservation_id = ?", id).Delete(&models.ReservationStatusHistory{})
	return nil
}

// SetStatus advances a reservation strictly one step forward, validating
// against the state machine, and records the change
func (r *Reservations) SetStatus(id uint, next models.ReservationStatus, changedBy uint, note string) (*models.Reservation, error) {
	return r.updateStatus(id, next, changedBy, note, false)
}

// ForceStatus is the admin override: any forward jump, never backward
func (r *Reservations) ForceStatus(id uint, next models.ReservationStatus, changedBy uint, reason string) (*models.Reservation, error) {
	return r.updateStatus(id, next, changedBy, "[ADMIN OVERRIDE] "+reason, true)
}

func (r *Reservations) updateStatus(id uint, next models.ReservationStatus, changedBy uint, note string, force bool) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, err
	}

	var err error
	if force {
		err = statemachine.CanForce(reservation.Status, next)
	} else {
		err = statemachine.CanTransition(reservation.Status, next, "admin")
	}
	if err != nil {
		return nil, &apperrors.InvalidStateError{Current: string(reservation.Status), Reason: err.Error()}
	}

	prev := reservation.Status
	if err := r.db.Model(&reservation).Update("status", next).Error; err != nil {
		return nil, &apperrors.BackendError{Op: "update reservation status", Err: err}
	}

	history := models.ReservationStatusHistory{
		ReservationID: reservation.ID,
		FromStatus:    prev,
		ToStatus:      next,
		ChangedBy:     changedBy,
		Note:          note,
	}
	r.db.Create(&history)

	reservation.Status = next
	return &reservation, nil
}

// IsNotFound reports whether err is a missing-record lookup
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
