package controllers

import (
	"errors"
	"net/http"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
)

// writeStoreError maps store sentinel errors onto HTTP statuses. Anything
// unrecognized is a generic 500; the detail belongs in the log, not the
// response body.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, store.ErrTerminalStatus):
		http.Error(w, "Parcel is already delivered or cancelled", http.StatusConflict)
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}
