// internal/api/handlers/donor_handler.go
package handlers

import (
	"net/http"

	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type DonorHandler struct {
	Donations store.DonationStore
}

type userInfoResponse struct {
	models.User
	Donations []models.DonationSummary `json:"donations"`
}

// Info returns the donor's own profile together with the donations they are
// the donor on, oldest first.
func (h *DonorHandler) Info(c *gin.Context) {
	donor := principal(c)

	donations, err := h.Donations.ListByDonor(c.Request.Context(), donor.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error while fetching donor data")
		return
	}

	respondData(c, http.StatusOK, userInfoResponse{
		User:      *donor,
		Donations: summarize(donations),
	})
}
