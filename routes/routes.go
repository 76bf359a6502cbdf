package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/controllers"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, userController *controllers.UserController, parcelController *controllers.ParcelController, reviewController *controllers.ReviewController) {
	// Public routes
	router.HandleFunc("/", welcome).Methods("GET")
	router.HandleFunc("/jwt/create", authController.CreateToken).Methods("POST")
	router.HandleFunc("/users/role/{email}", userController.GetRole).Methods("GET")
	router.HandleFunc("/users/top-delivery-man", userController.TopDeliveryMen).Methods("GET")
	router.HandleFunc("/users/{email}", userController.Register).Methods("POST")
	router.HandleFunc("/user-parcel/total", parcelController.Totals).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	// User routes
	protected.HandleFunc("/users/user/all", userController.ListUsers).Methods("GET")
	protected.HandleFunc("/users/delivery-man/all", userController.ListDeliveryMen).Methods("GET")
	protected.HandleFunc("/users/deliveryMan", userController.DeliveryManNames).Methods("GET")
	protected.HandleFunc("/users/update/role/{id}", userController.UpdateRole).Methods("PATCH")

	// Self-only user routes
	self := protected.PathPrefix("/").Subrouter()
	self.Use(middleware.SelfOnlyMiddleware)
	self.HandleFunc("/users/update/photo/{email}", userController.UpdatePhoto).Methods("PATCH")
	self.HandleFunc("/bookedParcel/add/{email}", parcelController.Book).Methods("POST")

	// Parcel routes; fixed paths go before the {id} catch-all
	protected.HandleFunc("/bookedParcel/user-parcels", parcelController.UserParcels).Methods("GET")
	protected.HandleFunc("/bookedParcel/admin/all", parcelController.AdminSummaries).Methods("GET")
	protected.HandleFunc("/bookedParcel/admin/date-wise", parcelController.DateWiseCounts).Methods("GET")
	protected.HandleFunc("/bookedParcel/deliveryMan/{id}", parcelController.ByDeliveryMan).Methods("GET")
	protected.HandleFunc("/bookedParcel/update/{id}", parcelController.Update).Methods("PATCH")
	protected.HandleFunc("/bookedParcel/assign/{id}", parcelController.Assign).Methods("PATCH")
	protected.HandleFunc("/bookedParcel/cancel/{id}", parcelController.Cancel).Methods("PATCH")
	protected.HandleFunc("/bookedParcel/deliver/{id}", parcelController.Deliver).Methods("PATCH")
	protected.HandleFunc("/bookedParcel/{id}", parcelController.GetByID).Methods("GET")

	// Review routes
	protected.HandleFunc("/review/add", reviewController.Add).Methods("POST")
	protected.HandleFunc("/reviews/deliveryMan/{id}", reviewController.ListByDeliveryMan).Methods("GET")
}

func welcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to the DeliBox parcel delivery API"))
}
