// internal/api/handlers/admin_handler.go
package handlers

import (
	"errors"
	"net/http"

	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminHandler struct {
	Users     store.UserStore
	Donations store.DonationStore
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending scheduled completed rejected"`
}

// ListUsers returns every non-admin user, newest first.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	h.listByRole(c, "")
}

// ListDonors returns every donor, newest first.
func (h *AdminHandler) ListDonors(c *gin.Context) {
	h.listByRole(c, models.RoleDonor)
}

// ListRecipients returns every recipient, newest first.
func (h *AdminHandler) ListRecipients(c *gin.Context) {
	h.listByRole(c, models.RoleRecipient)
}

func (h *AdminHandler) listByRole(c *gin.Context, role string) {
	users, err := h.Users.ListByRole(c.Request.Context(), role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching users")
		return
	}
	respondData(c, http.StatusOK, users)
}

// ListDonations returns all donation requests, newest first, optionally
// filtered by ?status=.
func (h *AdminHandler) ListDonations(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", models.StatusPending, models.StatusScheduled, models.StatusCompleted, models.StatusRejected:
	default:
		respondError(c, http.StatusBadRequest, "Unknown donation status")
		return
	}

	donations, err := h.Donations.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching donations")
		return
	}
	respondData(c, http.StatusOK, donations)
}

// UpdateDonationStatus moves a donation through its lifecycle. Only
// pending -> scheduled/completed/rejected and scheduled -> completed/rejected
// are legal.
func (h *AdminHandler) UpdateDonationStatus(c *gin.Context) {
	donationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid donation ID")
		return
	}

	var req UpdateDonationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	donation, err := h.Donations.UpdateStatus(c.Request.Context(), donationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, "Donation not found")
		case errors.Is(err, store.ErrInvalidTransition):
			respondError(c, http.StatusBadRequest, "Illegal donation status transition")
		default:
			respondError(c, http.StatusInternalServerError, "Server error while updating donation")
		}
		return
	}

	respondData(c, http.StatusOK, donation)
}
