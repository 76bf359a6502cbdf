package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/utils"
)

// AuthController handles token issuance
type AuthController struct{}

// NewAuthController creates a new AuthController
func NewAuthController() *AuthController {
	return &AuthController{}
}

// CreateToken issues a bearer token for the given email identity claim.
// Credential verification happens upstream at the auth provider; this
// endpoint only signs the claim.
func (ac *AuthController) CreateToken(w http.ResponseWriter, r *http.Request) {
	var claim struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&claim)
	if err != nil || claim.Email == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWT(claim.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
