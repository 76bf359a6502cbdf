package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/controllers"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/utils"
)

func TestAuthController_CreateToken(t *testing.T) {
	ac := controllers.NewAuthController()

	req := newRequest(t, http.MethodPost, "/jwt/create", `{"email":"ana@example.com"}`, nil)
	rec := httptest.NewRecorder()
	ac.CreateToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	claims, err := utils.ParseJWT(resp["token"])
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", claims.Email)
}

func TestAuthController_CreateToken_MissingEmail(t *testing.T) {
	ac := controllers.NewAuthController()

	req := newRequest(t, http.MethodPost, "/jwt/create", `{}`, nil)
	rec := httptest.NewRecorder()
	ac.CreateToken(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
