// internal/api/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"

	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users  store.UserStore
	Tokens *auth.TokenManager
}

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=donor recipient admin"`
	PhoneNumber string `json:"phoneNumber"`

	// Donor fields; ignored unless role is donor.
	BloodType string `json:"bloodType"`
	Organs    string `json:"organs"`

	// Recipient fields; ignored unless role is recipient.
	NeededBloodType string `json:"neededBloodType"`
	NeededOrgan     string `json:"neededOrgan"`
	Address         string `json:"address"`
	MedicalHistory  string `json:"medicalHistory"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and issues a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
	}

	// Only the variant matching the role is stored; mismatched fields are
	// dropped silently.
	switch req.Role {
	case models.RoleDonor:
		user.Donor = &models.DonorProfile{
			BloodType: req.BloodType,
			Organs:    req.Organs,
		}
	case models.RoleRecipient:
		user.Recipient = &models.RecipientProfile{
			NeededBloodType: req.NeededBloodType,
			NeededOrgan:     req.NeededOrgan,
			Address:         req.Address,
			MedicalHistory:  req.MedicalHistory,
		}
	}

	created, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := h.Tokens.Generate(created.ID.Hex(), created.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"token":    token,
		"role":     created.Role,
		"userId":   created.ID.Hex(),
		"userName": created.FullName,
	})
}

// Login verifies credentials and issues a token. No session is persisted
// server-side.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"role":     user.Role,
		"userId":   user.ID.Hex(),
		"userName": user.FullName,
	})
}
