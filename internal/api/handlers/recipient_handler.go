// internal/api/handlers/recipient_handler.go
package handlers

import (
	"errors"
	"net/http"

	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecipientHandler struct {
	Users     store.UserStore
	Donations store.DonationStore
}

type CreateRequestRequest struct {
	DonorID      string `json:"donorId" binding:"required"`
	DonationType string `json:"donationType" binding:"required,oneof=blood organ"`
	Details      string `json:"details"`
	Hospital     string `json:"hospital"`
	Doctor       string `json:"doctor"`
	Urgency      string `json:"urgency" binding:"omitempty,oneof=normal urgent critical"`
}

type UpdateProfileRequest struct {
	PhoneNumber     *string `json:"phoneNumber"`
	Address         *string `json:"address"`
	MedicalHistory  *string `json:"medicalHistory"`
	NeededBloodType *string `json:"neededBloodType"`
	NeededOrgan     *string `json:"neededOrgan"`
}

// Info returns the recipient's own profile together with the donations they
// are the recipient on, oldest first.
func (h *RecipientHandler) Info(c *gin.Context) {
	recipient := principal(c)

	donations, err := h.Donations.ListByRecipient(c.Request.Context(), recipient.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching recipient data")
		return
	}

	respondData(c, http.StatusOK, userInfoResponse{
		User:      *recipient,
		Donations: summarize(donations),
	})
}

// Donors lists blood and organ donors with the relevant eligibility field set.
func (h *RecipientHandler) Donors(c *gin.Context) {
	bloodDonors, organDonors, err := h.donorListings(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching donor list")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"bloodDonors": bloodDonors,
		"organDonors": organDonors,
	})
}

// Dashboard bundles the recipient's profile with both donor listings.
func (h *RecipientHandler) Dashboard(c *gin.Context) {
	recipient := principal(c)

	bloodDonors, organDonors, err := h.donorListings(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching recipient dashboard data")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"recipientInfo": recipient,
		"donors": gin.H{
			"bloodDonors": bloodDonors,
			"organDonors": organDonors,
		},
	})
}

func (h *RecipientHandler) donorListings(c *gin.Context) ([]models.BloodDonorSummary, []models.OrganDonorSummary, error) {
	bloodDonors, err := h.Users.ListBloodDonors(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	organDonors, err := h.Users.ListOrganDonors(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return bloodDonors, organDonors, nil
}

// CreateRequest creates a pending donation request against a donor. The
// donation document holds both references; no participant record is mutated.
func (h *RecipientHandler) CreateRequest(c *gin.Context) {
	recipient := principal(c)

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if req.DonorID == "" || req.DonationType == "" {
			respondError(c, http.StatusBadRequest, "Donor ID and donation type are required")
			return
		}
		// Both required fields present; the failure is a bad enum value.
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	donorID, err := primitive.ObjectIDFromHex(req.DonorID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid donor ID")
		return
	}

	donor, err := h.Users.GetByID(c.Request.Context(), donorID)
	if err != nil || donor.Role != models.RoleDonor {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusInternalServerError, "Server error while creating donation request")
			return
		}
		respondError(c, http.StatusNotFound, "Donor not found or not a donor user")
		return
	}

	donation, err := h.Donations.Create(c.Request.Context(), models.Donation{
		Donor:        donorID,
		Recipient:    recipient.ID,
		DonationType: req.DonationType,
		Details:      req.Details,
		Hospital:     req.Hospital,
		Doctor:       req.Doctor,
		Urgency:      req.Urgency,
		Status:       models.StatusPending,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while creating donation request")
		return
	}

	respondData(c, http.StatusCreated, donation)
}

// UpdateProfile applies a partial update; omitted fields are left untouched.
func (h *RecipientHandler) UpdateProfile(c *gin.Context) {
	recipient := principal(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Users.UpdateRecipientProfile(c.Request.Context(), recipient.ID, store.ProfileUpdate{
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		MedicalHistory:  req.MedicalHistory,
		NeededBloodType: req.NeededBloodType,
		NeededOrgan:     req.NeededOrgan,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Recipient not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error while updating profile")
		return
	}

	respondData(c, http.StatusOK, updated)
}
