package controllers_test

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
)

var errStubNotConfigured = errors.New("stub not configured")

type stubUserStore struct {
	createFn             func(ctx context.Context, user models.User) (primitive.ObjectID, error)
	findByEmailFn        func(ctx context.Context, email string) (*models.User, error)
	listByRoleFn         func(ctx context.Context, role string) ([]models.User, error)
	deliveryManNamesFn   func(ctx context.Context) ([]models.DeliveryManName, error)
	updateRoleFn         func(ctx context.Context, id primitive.ObjectID, role string) error
	updatePhotoFn        func(ctx context.Context, email, photo string) error
	updatePhoneFn        func(ctx context.Context, email, phone string) error
	topDeliveryMenFn     func(ctx context.Context, limit int64) ([]models.TopDeliveryMan, error)
	adjustCountersFn     func(ctx context.Context, email string, parcelCount int64, amount float64, dir store.CounterDirection) error
	incrementDeliveredFn func(ctx context.Context, id primitive.ObjectID) error
	setAverageReviewFn   func(ctx context.Context, id primitive.ObjectID, average float64) error
	countFn              func(ctx context.Context) (int64, error)
}

func (s *stubUserStore) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	if s.createFn == nil {
		return primitive.NilObjectID, errStubNotConfigured
	}
	return s.createFn(ctx, user)
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.findByEmailFn == nil {
		return nil, errStubNotConfigured
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	if s.listByRoleFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listByRoleFn(ctx, role)
}

func (s *stubUserStore) DeliveryManNames(ctx context.Context) ([]models.DeliveryManName, error) {
	if s.deliveryManNamesFn == nil {
		return nil, errStubNotConfigured
	}
	return s.deliveryManNamesFn(ctx)
}

func (s *stubUserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if s.updateRoleFn == nil {
		return errStubNotConfigured
	}
	return s.updateRoleFn(ctx, id, role)
}

func (s *stubUserStore) UpdatePhoto(ctx context.Context, email, photo string) error {
	if s.updatePhotoFn == nil {
		return errStubNotConfigured
	}
	return s.updatePhotoFn(ctx, email, photo)
}

func (s *stubUserStore) UpdatePhone(ctx context.Context, email, phone string) error {
	if s.updatePhoneFn == nil {
		return errStubNotConfigured
	}
	return s.updatePhoneFn(ctx, email, phone)
}

func (s *stubUserStore) TopDeliveryMen(ctx context.Context, limit int64) ([]models.TopDeliveryMan, error) {
	if s.topDeliveryMenFn == nil {
		return nil, errStubNotConfigured
	}
	return s.topDeliveryMenFn(ctx, limit)
}

func (s *stubUserStore) AdjustCounters(ctx context.Context, email string, parcelCount int64, amount float64, dir store.CounterDirection) error {
	if s.adjustCountersFn == nil {
		return errStubNotConfigured
	}
	return s.adjustCountersFn(ctx, email, parcelCount, amount, dir)
}

func (s *stubUserStore) IncrementDelivered(ctx context.Context, id primitive.ObjectID) error {
	if s.incrementDeliveredFn == nil {
		return errStubNotConfigured
	}
	return s.incrementDeliveredFn(ctx, id)
}

func (s *stubUserStore) SetAverageReview(ctx context.Context, id primitive.ObjectID, average float64) error {
	if s.setAverageReviewFn == nil {
		return errStubNotConfigured
	}
	return s.setAverageReviewFn(ctx, id, average)
}

func (s *stubUserStore) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, errStubNotConfigured
	}
	return s.countFn(ctx)
}

type stubParcelStore struct {
	insertFn            func(ctx context.Context, parcel models.Parcel) (primitive.ObjectID, error)
	findByIDFn          func(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	findByUserEmailFn   func(ctx context.Context, email string) ([]models.Parcel, error)
	findByDeliveryManFn func(ctx context.Context, id primitive.ObjectID) ([]models.Parcel, error)
	updateDetailsFn     func(ctx context.Context, id primitive.ObjectID, update store.ParcelUpdate) error
	assignFn            func(ctx context.Context, id, deliveryManID primitive.ObjectID, status string, approximateDate time.Time) error
	cancelFn            func(ctx context.Context, id primitive.ObjectID) error
	markDeliveredFn     func(ctx context.Context, id primitive.ObjectID) error
	adminSummariesFn    func(ctx context.Context) ([]models.ParcelSummary, error)
	dateWiseCountsFn    func(ctx context.Context) ([]models.DateWiseCount, error)
	countFn             func(ctx context.Context) (int64, error)
	countByStatusFn     func(ctx context.Context, status string) (int64, error)
}

func (s *stubParcelStore) Insert(ctx context.Context, parcel models.Parcel) (primitive.ObjectID, error) {
	if s.insertFn == nil {
		return primitive.NilObjectID, errStubNotConfigured
	}
	return s.insertFn(ctx, parcel)
}

func (s *stubParcelStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	if s.findByIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubParcelStore) FindByUserEmail(ctx context.Context, email string) ([]models.Parcel, error) {
	if s.findByUserEmailFn == nil {
		return nil, errStubNotConfigured
	}
	return s.findByUserEmailFn(ctx, email)
}

func (s *stubParcelStore) FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Parcel, error) {
	if s.findByDeliveryManFn == nil {
		return nil, errStubNotConfigured
	}
	return s.findByDeliveryManFn(ctx, id)
}

func (s *stubParcelStore) UpdateDetails(ctx context.Context, id primitive.ObjectID, update store.ParcelUpdate) error {
	if s.updateDetailsFn == nil {
		return errStubNotConfigured
	}
	return s.updateDetailsFn(ctx, id, update)
}

func (s *stubParcelStore) Assign(ctx context.Context, id, deliveryManID primitive.ObjectID, status string, approximateDate time.Time) error {
	if s.assignFn == nil {
		return errStubNotConfigured
	}
	return s.assignFn(ctx, id, deliveryManID, status, approximateDate)
}

func (s *stubParcelStore) Cancel(ctx context.Context, id primitive.ObjectID) error {
	if s.cancelFn == nil {
		return errStubNotConfigured
	}
	return s.cancelFn(ctx, id)
}

func (s *stubParcelStore) MarkDelivered(ctx context.Context, id primitive.ObjectID) error {
	if s.markDeliveredFn == nil {
		return errStubNotConfigured
	}
	return s.markDeliveredFn(ctx, id)
}

func (s *stubParcelStore) AdminSummaries(ctx context.Context) ([]models.ParcelSummary, error) {
	if s.adminSummariesFn == nil {
		return nil, errStubNotConfigured
	}
	return s.adminSummariesFn(ctx)
}

func (s *stubParcelStore) DateWiseCounts(ctx context.Context) ([]models.DateWiseCount, error) {
	if s.dateWiseCountsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.dateWiseCountsFn(ctx)
}

func (s *stubParcelStore) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, errStubNotConfigured
	}
	return s.countFn(ctx)
}

func (s *stubParcelStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	if s.countByStatusFn == nil {
		return 0, errStubNotConfigured
	}
	return s.countByStatusFn(ctx, status)
}

type stubReviewStore struct {
	insertFn            func(ctx context.Context, review models.Review) (primitive.ObjectID, error)
	findByDeliveryManFn func(ctx context.Context, id primitive.ObjectID) ([]models.Review, error)
	averageRatingFn     func(ctx context.Context, deliveryManID primitive.ObjectID) (float64, error)
}

func (s *stubReviewStore) Insert(ctx context.Context, review models.Review) (primitive.ObjectID, error) {
	if s.insertFn == nil {
		return primitive.NilObjectID, errStubNotConfigured
	}
	return s.insertFn(ctx, review)
}

func (s *stubReviewStore) FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Review, error) {
	if s.findByDeliveryManFn == nil {
		return nil, errStubNotConfigured
	}
	return s.findByDeliveryManFn(ctx, id)
}

func (s *stubReviewStore) AverageRating(ctx context.Context, deliveryManID primitive.ObjectID) (float64, error) {
	if s.averageRatingFn == nil {
		return 0, errStubNotConfigured
	}
	return s.averageRatingFn(ctx, deliveryManID)
}
