package models

import "time"

// ReservationStatus represents the lifecycle state of a t-shirt reservation
type ReservationStatus string

const (
	StatusProvisional ReservationStatus = "PROVISIONAL"
	StatusPaid        ReservationStatus = "PAID"
	StatusReceived    ReservationStatus = "RECEIVED"
)

// AllStatuses in lifecycle order
var AllStatuses = []ReservationStatus{StatusProvisional, StatusPaid, StatusReceived}

// Valid reports whether s is one of the three known lifecycle states
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusProvisional, StatusPaid, StatusReceived:
		return true
	}
	return false
}

// Label returns the Spanish display label used on the campaign site
func (s ReservationStatus) Label() string {
	switch s {
	case StatusProvisional:
		return "Reserva provisional"
	case StatusPaid:
		return "Reserva pagada"
	case StatusReceived:
		return "Recibida"
	}
	return string(s)
}

type Reservation struct {
	ID            uint                       `json:"id" gorm:"primaryKey"`
	UserID        uint                       `json:"user_id" gorm:"not null"`
	User          User                       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Design        string                     `json:"design" gorm:"not null"`
	Size          string                     `json:"size" gorm:"not null"`
	PickupPoint   string                     `json:"pickup_point" gorm:"not null"`
	Status        ReservationStatus          `json:"status" gorm:"not null;default:'PROVISIONAL'"`
	StatusHistory []ReservationStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:ReservationID"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// ReservationStatusHistory tracks every status change — audit trail
type ReservationStatusHistory struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	ReservationID uint              `json:"reservation_id" gorm:"not null"`
	FromStatus    ReservationStatus `json:"from_status"`
	ToStatus      ReservationStatus `json:"to_status" gorm:"not null"`
	ChangedBy     uint              `json:"changed_by"` // user ID who triggered the transition
	Note          string            `json:"note"`
	CreatedAt     time.Time         `json:"created_at"`
}
