package statemachine

import (
	"errors"

	"camisetas-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor string // "admin" is the only status-advancing actor
}

// validTransitions is the authoritative state machine definition.
// Owners never advance status; their only lifecycle action is deleting
// a PROVISIONAL reservation, which is not a transition.
var validTransitions = []Transition{
	// Admin confirms the payment arrived
	{From: models.StatusProvisional, To: models.StatusPaid, Actor: "admin"},
	// Admin marks the shirt as handed over
	{From: models.StatusPaid, To: models.StatusReceived, Actor: "admin"},
}

// statusRank orders the lifecycle; higher rank is further along
var statusRank = map[models.ReservationStatus]int{
	models.StatusProvisional: 0,
	models.StatusPaid:        1,
	models.StatusReceived:    2,
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.ReservationStatus) []models.ReservationStatus {
	var nexts []models.ReservationStatus
	seen := map[models.ReservationStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another.
// Transitions are strictly one step forward; there is no reverse path.
func CanTransition(from, to models.ReservationStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// CanForce validates an admin override: any forward jump is allowed,
// going backward or to an unknown status is not.
func CanForce(from, to models.ReservationStatus) error {
	toRank, ok := statusRank[to]
	if !ok {
		return errors.New("unknown status: " + string(to))
	}
	if toRank <= statusRank[from] {
		return errors.New(
			"invalid override: " + string(from) + " -> " + string(to) +
				" does not move the reservation forward",
		)
	}
	return nil
}

func describeValidFrom(status models.ReservationStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
