// internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. A role is fixed at registration and gates route access.
const (
	RoleDonor     = "donor"
	RoleRecipient = "recipient"
	RoleAdmin     = "admin"
)

// DonorProfile holds the fields that are only meaningful for donor accounts.
type DonorProfile struct {
	BloodType string `bson:"bloodType,omitempty" json:"bloodType,omitempty"`
	Organs    string `bson:"organs,omitempty" json:"organs,omitempty"`
}

// RecipientProfile holds the fields that are only meaningful for recipient accounts.
type RecipientProfile struct {
	NeededBloodType string `bson:"neededBloodType,omitempty" json:"neededBloodType,omitempty"`
	NeededOrgan     string `bson:"neededOrgan,omitempty" json:"neededOrgan,omitempty"`
	Address         string `bson:"address,omitempty" json:"address,omitempty"`
	MedicalHistory  string `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
}

// User is a registered account. At most one of Donor/Recipient is set,
// discriminated by Role; admins carry neither.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Donor       *DonorProfile      `bson:"donor,omitempty" json:"donor,omitempty"`
	Recipient   *RecipientProfile  `bson:"recipient,omitempty" json:"recipient,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleDonor || role == RoleRecipient || role == RoleAdmin
}

// BloodDonorSummary is the projection returned to recipients browsing blood donors.
type BloodDonorSummary struct {
	ID          primitive.ObjectID `json:"id"`
	FullName    string             `json:"fullName"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	BloodType   string             `json:"bloodType"`
}

// OrganDonorSummary is the projection returned to recipients browsing organ donors.
type OrganDonorSummary struct {
	ID       primitive.ObjectID `json:"id"`
	FullName string             `json:"fullName"`
	Email    string             `json:"email"`
	Organs   string             `json:"organs"`
}
