package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/middleware"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/utils"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := middleware.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookedParcel/user-parcels", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	handler := middleware.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookedParcel/user-parcels", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	handler := middleware.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookedParcel/user-parcels", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateJWT("ana@example.com")
	require.NoError(t, err)

	var gotEmail string
	handler := middleware.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotEmail = claims.Email
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookedParcel/user-parcels", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ana@example.com", gotEmail)
}

func TestSelfOnlyMiddleware(t *testing.T) {
	token, err := utils.GenerateJWT("ana@example.com")
	require.NoError(t, err)

	router := mux.NewRouter()
	sub := router.PathPrefix("/").Subrouter()
	sub.Use(middleware.AuthMiddleware)
	sub.Use(middleware.SelfOnlyMiddleware)

	reached := false
	sub.HandleFunc("/bookedParcel/add/{email}", func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}).Methods("POST")

	// Matching email passes through.
	req := httptest.NewRequest(http.MethodPost, "/bookedParcel/add/ana@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)

	// A different email in the path is rejected.
	reached = false
	req = httptest.NewRequest(http.MethodPost, "/bookedParcel/add/karim@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
}
