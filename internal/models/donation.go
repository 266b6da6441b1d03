// internal/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation types.
const (
	DonationTypeBlood = "blood"
	DonationTypeOrgan = "organ"
)

// Donation statuses.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// Urgency levels.
const (
	UrgencyNormal   = "normal"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

// Donation links one donor and one recipient for a blood or organ transfer.
// It is the single source of truth for the relation; participants' donation
// lists are derived by querying on the donor/recipient references.
type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Donor        primitive.ObjectID `bson:"donor" json:"donor"`
	Recipient    primitive.ObjectID `bson:"recipient,omitempty" json:"recipient,omitempty"`
	DonationType string             `bson:"donationType" json:"donationType"`
	Details      string             `bson:"details,omitempty" json:"details,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	Status       string             `bson:"status" json:"status"`
	Hospital     string             `bson:"hospital,omitempty" json:"hospital,omitempty"`
	Doctor       string             `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Urgency      string             `bson:"urgency" json:"urgency"`
}

// DonationSummary is the projection of a donation embedded in the donor and
// recipient "info" responses. Internal references are omitted.
type DonationSummary struct {
	DonationType string    `json:"donationType"`
	Details      string    `json:"details,omitempty"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	Hospital     string    `json:"hospital,omitempty"`
	Doctor       string    `json:"doctor,omitempty"`
	Urgency      string    `json:"urgency"`
}

// Summary strips the donation down to its wire projection.
func (d Donation) Summary() DonationSummary {
	return DonationSummary{
		DonationType: d.DonationType,
		Details:      d.Details,
		Date:         d.Date,
		Status:       d.Status,
		Hospital:     d.Hospital,
		Doctor:       d.Doctor,
		Urgency:      d.Urgency,
	}
}

// CanTransition reports whether a donation status change is legal.
// Pending requests may be scheduled, completed or rejected outright;
// a scheduled donation may still complete or fall through.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusScheduled || to == StatusCompleted || to == StatusRejected
	case StatusScheduled:
		return to == StatusCompleted || to == StatusRejected
	default:
		return false
	}
}
