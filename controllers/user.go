package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/middleware"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
)

// UserController handles user-related requests
type UserController struct {
	Users store.UserStore
}

// NewUserController creates a new UserController
func NewUserController(users store.UserStore) *UserController {
	return &UserController{Users: users}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var payload struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
		Role  string `json:"role"`
	}
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if payload.Role != models.RoleUser && payload.Role != models.RoleDeliveryMan {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	// Counters start at zero for the fields the role actually uses.
	user := models.User{
		Name:      payload.Name,
		Email:     email,
		Photo:     payload.Photo,
		Role:      payload.Role,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	id, err := uc.Users.Create(ctx, user)
	if errors.Is(err, store.ErrDuplicate) {
		// The unique index on email is the conflict signal; a lost race
		// lands here too, never as a second record.
		json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
		return
	}
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"insertedId": id})
}

// UpdatePhoto updates the authenticated user's photo
func (uc *UserController) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Photo string `json:"photo"`
	}
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err = uc.Users.UpdatePhoto(ctx, claims.Email, payload.Photo)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Photo updated"})
}

// GetRole returns the user id and role for an email
func (uc *UserController) GetRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"userId": user.ID,
		"role":   user.Role,
	})
}

// ListUsers returns all accounts with the customer role
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, models.RoleUser)
}

// ListDeliveryMen returns all accounts with the deliveryMan role
func (uc *UserController) ListDeliveryMen(w http.ResponseWriter, r *http.Request) {
	uc.listByRole(w, r, models.RoleDeliveryMan)
}

func (uc *UserController) listByRole(w http.ResponseWriter, r *http.Request, role string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	users, err := uc.Users.ListByRole(ctx, role)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// UpdateRole reassigns a user's role. Role-specific counters reset to zero;
// prior counts are not migrated.
func (uc *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Role string `json:"role"`
	}
	err = json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if payload.Role != models.RoleUser && payload.Role != models.RoleDeliveryMan {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err = uc.Users.UpdateRole(ctx, id, payload.Role)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Role updated"})
}

// DeliveryManNames returns the {_id, name} projection of all delivery men
func (uc *UserController) DeliveryManNames(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	names, err := uc.Users.DeliveryManNames(ctx)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

// TopDeliveryMen returns the top 3 delivery men by delivered parcel count
func (uc *UserController) TopDeliveryMen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	top, err := uc.Users.TopDeliveryMen(ctx, 3)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}
