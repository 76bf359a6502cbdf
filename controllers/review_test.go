package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/controllers"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
)

func TestReviewController_Add(t *testing.T) {
	t.Parallel()

	deliveryManID := primitive.NewObjectID()

	var inserted models.Review
	reviews := &stubReviewStore{
		insertFn: func(ctx context.Context, review models.Review) (primitive.ObjectID, error) {
			inserted = review
			return primitive.NewObjectID(), nil
		},
		averageRatingFn: func(ctx context.Context, id primitive.ObjectID) (float64, error) {
			require.Equal(t, deliveryManID, id)
			// Mean of ratings [4, 5] rounded to one decimal.
			return 4.5, nil
		},
	}

	var writtenAverage float64
	users := &stubUserStore{
		setAverageReviewFn: func(ctx context.Context, id primitive.ObjectID, average float64) error {
			require.Equal(t, deliveryManID, id)
			writtenAverage = average
			return nil
		},
	}

	rc := controllers.NewReviewController(reviews, users)

	body := `{"deliveryManId":"` + deliveryManID.Hex() + `","userName":"Ana","rating":5,"feedback":"fast and careful"}`
	req := authedRequest(t, http.MethodPost, "/review/add", body, "ana@example.com", nil)
	rec := httptest.NewRecorder()
	rc.Add(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, deliveryManID, inserted.DeliveryManID)
	require.EqualValues(t, 5, inserted.Rating)
	require.False(t, inserted.CreatedAt.IsZero())
	require.Equal(t, 4.5, writtenAverage)

	var resp struct {
		AverageReview float64 `json:"averageReview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 4.5, resp.AverageReview)
}

func TestReviewController_Add_BadDeliveryManID(t *testing.T) {
	t.Parallel()

	rc := controllers.NewReviewController(&stubReviewStore{}, &stubUserStore{})

	req := authedRequest(t, http.MethodPost, "/review/add",
		`{"deliveryManId":"nope","rating":5}`, "ana@example.com", nil)
	rec := httptest.NewRecorder()
	rc.Add(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewController_ListByDeliveryMan(t *testing.T) {
	t.Parallel()

	deliveryManID := primitive.NewObjectID()
	reviews := &stubReviewStore{
		findByDeliveryManFn: func(ctx context.Context, id primitive.ObjectID) ([]models.Review, error) {
			require.Equal(t, deliveryManID, id)
			return []models.Review{
				{DeliveryManID: id, Rating: 4, Feedback: "good"},
				{DeliveryManID: id, Rating: 5, Feedback: "great"},
			}, nil
		},
	}

	rc := controllers.NewReviewController(reviews, &stubUserStore{})

	req := authedRequest(t, http.MethodGet, "/reviews/deliveryMan/"+deliveryManID.Hex(),
		"", "ana@example.com", map[string]string{"id": deliveryManID.Hex()})
	rec := httptest.NewRecorder()
	rc.ListByDeliveryMan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
}
