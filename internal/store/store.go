// internal/store/store.go
package store

import (
	"context"
	"errors"

	"donorlink-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when creating a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrInvalidTransition is returned when a donation status change is not legal
	// from the donation's current status.
	ErrInvalidTransition = errors.New("illegal donation status transition")
)

// ProfileUpdate carries a partial recipient profile update. Nil fields are
// left untouched; only non-nil fields are written.
type ProfileUpdate struct {
	PhoneNumber     *string
	Address         *string
	MedicalHistory  *string
	NeededBloodType *string
	NeededOrgan     *string
}

// UserStore is the system of record for accounts.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRecipientProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (*models.User, error)

	// ListBloodDonors returns donors with a non-empty blood type.
	ListBloodDonors(ctx context.Context) ([]models.BloodDonorSummary, error)
	// ListOrganDonors returns donors with a non-empty organ field.
	ListOrganDonors(ctx context.Context) ([]models.OrganDonorSummary, error)

	// ListByRole returns users with the given role, newest first. An empty
	// role returns every non-admin user.
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// DonationStore is the system of record for donation requests. A donation's
// donor/recipient references are immutable after creation; participants'
// donation lists are derived from them at read time.
type DonationStore interface {
	Create(ctx context.Context, donation models.Donation) (models.Donation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)
	ListByDonor(ctx context.Context, donorID primitive.ObjectID) ([]models.Donation, error)
	ListByRecipient(ctx context.Context, recipientID primitive.ObjectID) ([]models.Donation, error)

	// List returns donations newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]models.Donation, error)

	// UpdateStatus applies a status transition, conditional on the donation
	// still being in a status the transition is legal from.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Donation, error)
}
