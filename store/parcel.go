package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
)

// ParcelUpdate carries the customer-editable fields of a booking.
type ParcelUpdate struct {
	Phone         string
	ParcelType    string
	ParcelWeight  float64
	ReceiverName  string
	ReceiverPhone string
	Address       string
	Latitude      float64
	Longitude     float64
	Price         float64
	DeliveryDate  time.Time
}

// ParcelStore is the persistence surface for bookings.
type ParcelStore interface {
	Insert(ctx context.Context, parcel models.Parcel) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.Parcel, error)
	FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Parcel, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, update ParcelUpdate) error
	Assign(ctx context.Context, id, deliveryManID primitive.ObjectID, status string, approximateDate time.Time) error
	Cancel(ctx context.Context, id primitive.ObjectID) error
	MarkDelivered(ctx context.Context, id primitive.ObjectID) error
	AdminSummaries(ctx context.Context) ([]models.ParcelSummary, error)
	DateWiseCounts(ctx context.Context) ([]models.DateWiseCount, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type mongoParcelStore struct {
	coll *mongo.Collection
}

// NewMongoParcelStore returns a ParcelStore backed by the bookedParcel
// collection.
func NewMongoParcelStore(db *mongo.Database) ParcelStore {
	return &mongoParcelStore{coll: db.Collection("bookedParcel")}
}

func (s *mongoParcelStore) Insert(ctx context.Context, parcel models.Parcel) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, parcel)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoParcelStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	var parcel models.Parcel
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (s *mongoParcelStore) FindByUserEmail(ctx context.Context, email string) ([]models.Parcel, error) {
	return s.findAll(ctx, bson.M{"user.email": email})
}

func (s *mongoParcelStore) FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Parcel, error) {
	return s.findAll(ctx, bson.M{"deliveryMenID": id})
}

func (s *mongoParcelStore) findAll(ctx context.Context, filter bson.M) ([]models.Parcel, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parcels []models.Parcel
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (s *mongoParcelStore) UpdateDetails(ctx context.Context, id primitive.ObjectID, update ParcelUpdate) error {
	set := bson.M{
		"user.phone":                 update.Phone,
		"parcelDetails.parcelType":   update.ParcelType,
		"parcelDetails.parcelWeight": update.ParcelWeight,
		"receiverDetails.name":       update.ReceiverName,
		"receiverDetails.phone":      update.ReceiverPhone,
		"receiverDetails.address":    update.Address,
		"receiverDetails.latitude":   update.Latitude,
		"receiverDetails.longitude":  update.Longitude,
		"price":                      update.Price,
		"deliveryDate":               update.DeliveryDate,
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// liveFilter matches a parcel only while it can still change state. Keeping
// the status check inside the update filter makes the terminality guard
// atomic with the write.
func liveFilter(id primitive.ObjectID) bson.M {
	return bson.M{
		"_id":    id,
		"status": bson.M{"$nin": bson.A{models.StatusDelivered, models.StatusCancelled}},
	}
}

// resolveMiss classifies a zero-match conditional update: the parcel either
// does not exist or sits in a terminal status.
func (s *mongoParcelStore) resolveMiss(ctx context.Context, id primitive.ObjectID) error {
	count, err := s.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrTerminalStatus
}

func (s *mongoParcelStore) Assign(ctx context.Context, id, deliveryManID primitive.ObjectID, status string, approximateDate time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status":                  status,
			"deliveryMenID":           deliveryManID,
			"approximateDeliveryDate": approximateDate,
		},
	}
	result, err := s.coll.UpdateOne(ctx, liveFilter(id), update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return s.resolveMiss(ctx, id)
	}
	return nil
}

func (s *mongoParcelStore) Cancel(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.UpdateOne(ctx, liveFilter(id), bson.M{"$set": bson.M{"status": models.StatusCancelled}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return s.resolveMiss(ctx, id)
	}
	return nil
}

func (s *mongoParcelStore) MarkDelivered(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.UpdateOne(ctx, liveFilter(id), bson.M{"$set": bson.M{"status": models.StatusDelivered}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return s.resolveMiss(ctx, id)
	}
	return nil
}

func (s *mongoParcelStore) AdminSummaries(ctx context.Context) ([]models.ParcelSummary, error) {
	projection := bson.M{
		"_id":          1,
		"user.name":    1,
		"user.phone":   1,
		"bookedDate":   1,
		"deliveryDate": 1,
		"price":        1,
		"status":       1,
	}
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.ParcelSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// DateWiseCounts groups bookings by their booked day, one bucket per
// distinct date, regardless of the parcel's later status.
func (s *mongoParcelStore) DateWiseCounts(ctx context.Context) ([]models.DateWiseCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%d-%m-%Y",
				"date":   "$bookedDate",
			}},
			"bookedParcel": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"date":         "$_id",
			"bookedParcel": 1,
		}}},
		{{Key: "$sort", Value: bson.M{"date": 1}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []models.DateWiseCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *mongoParcelStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func (s *mongoParcelStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"status": status})
}
