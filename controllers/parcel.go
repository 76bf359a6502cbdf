package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/middleware"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/utils"
)

// ParcelController handles booking lifecycle requests
type ParcelController struct {
	Parcels      store.ParcelStore
	Users        store.UserStore
	EmailService *utils.EmailService
	Logger       zerolog.Logger
}

// NewParcelController creates a new ParcelController
func NewParcelController(parcels store.ParcelStore, users store.UserStore, emailService *utils.EmailService, logger zerolog.Logger) *ParcelController {
	return &ParcelController{
		Parcels:      parcels,
		Users:        users,
		EmailService: emailService,
		Logger:       logger,
	}
}

type bookParcelRequest struct {
	Name                string  `json:"name"`
	PhoneNumber         string  `json:"phoneNumber"`
	ParcelType          string  `json:"parcelType"`
	ParcelWeight        float64 `json:"parcelWeight"`
	ReceiverName        string  `json:"receiverName"`
	ReceiverPhoneNumber string  `json:"receiverPhoneNumber"`
	DeliveryAddress     string  `json:"deliveryAddress"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Price               float64 `json:"price"`
	DeliveryDate        string  `json:"deliveryDate"`
}

// Book creates a pending booking for the authenticated user, bumps their
// booking counters and refreshes their stored phone number. The counter
// write happens before the response, not as a background send-off, so a
// failed increment fails the request instead of silently drifting.
func (pc *ParcelController) Book(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	email := claims.Email

	var req bookParcelRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		http.Error(w, "Invalid delivery date", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = pc.Users.AdjustCounters(ctx, email, 1, req.Price, store.Increase)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	if err := pc.Users.UpdatePhone(ctx, email, req.PhoneNumber); err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	parcel := models.Parcel{
		User: models.ParcelUser{
			Email: email,
			Name:  req.Name,
			Phone: req.PhoneNumber,
		},
		ParcelDetails: models.ParcelDetails{
			ParcelType:   req.ParcelType,
			ParcelWeight: req.ParcelWeight,
		},
		ReceiverDetails: models.ReceiverDetails{
			Name:      req.ReceiverName,
			Phone:     req.ReceiverPhoneNumber,
			Address:   req.DeliveryAddress,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		Price:        req.Price,
		Status:       models.StatusPending,
		DeliveryDate: deliveryDate,
		BookedDate:   time.Now(),
	}

	id, err := pc.Parcels.Insert(ctx, parcel)
	if err != nil {
		http.Error(w, "Failed to book parcel", http.StatusInternalServerError)
		return
	}

	if pc.EmailService != nil {
		parcel.ID = id
		go func(toEmail string, parcel models.Parcel) {
			if err := pc.EmailService.SendBookingConfirmationEmail(toEmail, parcel); err != nil {
				pc.Logger.Error().Err(err).Str("email", toEmail).Msg("booking confirmation email failed")
			}
		}(email, parcel)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"insertedId": id})
}

// UserParcels returns all bookings made by the authenticated user
func (pc *ParcelController) UserParcels(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	parcels, err := pc.Parcels.FindByUserEmail(ctx, claims.Email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcels)
}

// GetByID returns a single booking
func (pc *ParcelController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid parcel ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	parcel, err := pc.Parcels.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcel)
}

// Update overwrites the editable booking fields
func (pc *ParcelController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid parcel ID", http.StatusBadRequest)
		return
	}

	var req bookParcelRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		http.Error(w, "Invalid delivery date", http.StatusBadRequest)
		return
	}

	update := store.ParcelUpdate{
		Phone:         req.PhoneNumber,
		ParcelType:    req.ParcelType,
		ParcelWeight:  req.ParcelWeight,
		ReceiverName:  req.ReceiverName,
		ReceiverPhone: req.ReceiverPhoneNumber,
		Address:       req.DeliveryAddress,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Price:         req.Price,
		DeliveryDate:  deliveryDate,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err = pc.Parcels.UpdateDetails(ctx, id, update)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Parcel updated"})
}

// Assign sets the delivery man, status and estimated delivery date on a
// live booking
func (pc *ParcelController) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid parcel ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status                  string `json:"status"`
		DeliveryManID           string `json:"deliveryManID"`
		ApproximateDeliveryDate string `json:"approximateDeliveryDate"`
	}
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	deliveryManID, err := primitive.ObjectIDFromHex(req.DeliveryManID)
	if err != nil {
		http.Error(w, "Invalid delivery man ID", http.StatusBadRequest)
		return
	}
	approximateDate, err := time.Parse("2006-01-02", req.ApproximateDeliveryDate)
	if err != nil {
		http.Error(w, "Invalid approximate delivery date", http.StatusBadRequest)
		return
	}
	status := req.Status
	if status == "" {
		status = models.StatusOnTheWay
	}
	if models.IsTerminalStatus(status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err = pc.Parcels.Assign(ctx, id, deliveryManID, status, approximateDate)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Delivery man assigned"})
}

// Cancel flips a live booking to cancelled and reverses the owner's booking
// counters with the originally booked price. The decrement runs only after
// the status flip matched, so a parcel can never be refunded twice.
func (pc *ParcelController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid parcel ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	parcel, err := pc.Parcels.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	err = pc.Parcels.Cancel(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	err = pc.Users.AdjustCounters(ctx, parcel.User.Email, 1, parcel.Price, store.Decrease)
	if err != nil {
		// The parcel is cancelled either way; surface the counter failure
		// instead of pretending the reversal happened.
		pc.Logger.Error().Err(err).Str("email", parcel.User.Email).Msg("counter reversal failed")
		http.Error(w, "Parcel cancelled but counter update failed", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Parcel cancelled"})
}

// Deliver marks a live booking delivered and credits the delivery man
func (pc *ParcelController) Deliver(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid parcel ID", http.StatusBadRequest)
		return
	}

	var req struct {
		UserID string `json:"userId"`
	}
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	deliveryManID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		http.Error(w, "Invalid delivery man ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	parcel, err := pc.Parcels.FindByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	// Flip the status first; a cancelled parcel must not credit anyone.
	err = pc.Parcels.MarkDelivered(ctx, id)
	if err != nil {
		writeStoreError(w, err, "Parcel not found")
		return
	}

	err = pc.Users.IncrementDelivered(ctx, deliveryManID)
	if err != nil {
		writeStoreError(w, err, "Delivery man not found")
		return
	}

	if pc.EmailService != nil {
		go func(toEmail, parcelID string) {
			if err := pc.EmailService.SendDeliveredEmail(toEmail, parcelID); err != nil {
				pc.Logger.Error().Err(err).Str("email", toEmail).Msg("delivery notice email failed")
			}
		}(parcel.User.Email, id.Hex())
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Parcel delivered"})
}

// AdminSummaries returns the projected booking listing for the admin panel
func (pc *ParcelController) AdminSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	summaries, err := pc.Parcels.AdminSummaries(ctx)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// ByDeliveryMan returns all bookings assigned to a delivery man
func (pc *ParcelController) ByDeliveryMan(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid delivery man ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	parcels, err := pc.Parcels.FindByDeliveryMan(ctx, id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parcels)
}

// DateWiseCounts returns booking counts grouped by booked date, ascending
func (pc *ParcelController) DateWiseCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	counts, err := pc.Parcels.DateWiseCounts(ctx)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}

// Totals returns the site-wide parcel and user counters
func (pc *ParcelController) Totals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	totalParcels, err := pc.Parcels.Count(ctx)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	totalDelivered, err := pc.Parcels.CountByStatus(ctx, models.StatusDelivered)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	totalUsers, err := pc.Users.Count(ctx)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PlatformTotals{
		TotalBookedParcel:    totalParcels,
		TotalDeliveredParcel: totalDelivered,
		TotalUser:            totalUsers,
	})
}
