package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
)

// ReviewController handles review submission and lookup
type ReviewController struct {
	Reviews store.ReviewStore
	Users   store.UserStore
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviews store.ReviewStore, users store.UserStore) *ReviewController {
	return &ReviewController{Reviews: reviews, Users: users}
}

// Add inserts a review and writes the recomputed average back onto the
// delivery man's record. The recompute runs over the full review set for
// that id, so concurrent submissions converge on the same mean.
func (rc *ReviewController) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeliveryManID string  `json:"deliveryManId"`
		UserName      string  `json:"userName"`
		UserPhoto     string  `json:"userPhoto"`
		Rating        float64 `json:"rating"`
		Feedback      string  `json:"feedback"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	deliveryManID, err := primitive.ObjectIDFromHex(req.DeliveryManID)
	if err != nil {
		http.Error(w, "Invalid delivery man ID", http.StatusBadRequest)
		return
	}

	review := models.Review{
		DeliveryManID: deliveryManID,
		UserName:      req.UserName,
		UserPhoto:     req.UserPhoto,
		Rating:        req.Rating,
		Feedback:      req.Feedback,
		CreatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := rc.Reviews.Insert(ctx, review)
	if err != nil {
		http.Error(w, "Error creating review", http.StatusInternalServerError)
		return
	}

	average, err := rc.Reviews.AverageRating(ctx, deliveryManID)
	if err != nil {
		http.Error(w, "Error computing average review", http.StatusInternalServerError)
		return
	}
	if err := rc.Users.SetAverageReview(ctx, deliveryManID, average); err != nil {
		writeStoreError(w, err, "Delivery man not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"insertedId":    id,
		"averageReview": average,
	})
}

// ListByDeliveryMan returns all reviews for a delivery man
func (rc *ReviewController) ListByDeliveryMan(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid delivery man ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	reviews, err := rc.Reviews.FindByDeliveryMan(ctx, id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}
