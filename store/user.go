package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
)

// CounterDirection selects whether AdjustCounters adds or removes a booking
// from the user's denormalized totals.
type CounterDirection int

const (
	Increase CounterDirection = 1
	Decrease CounterDirection = -1
)

// UserStore is the persistence surface for accounts and their counters.
type UserStore interface {
	Create(ctx context.Context, user models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	DeliveryManNames(ctx context.Context) ([]models.DeliveryManName, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
	UpdatePhoto(ctx context.Context, email, photo string) error
	UpdatePhone(ctx context.Context, email, phone string) error
	TopDeliveryMen(ctx context.Context, limit int64) ([]models.TopDeliveryMan, error)
	AdjustCounters(ctx context.Context, email string, parcelCount int64, amount float64, dir CounterDirection) error
	IncrementDelivered(ctx context.Context, id primitive.ObjectID) error
	SetAverageReview(ctx context.Context, id primitive.ObjectID, average float64) error
	Count(ctx context.Context) (int64, error)
}

type mongoUserStore struct {
	coll *mongo.Collection
}

// NewMongoUserStore returns a UserStore backed by the users collection.
func NewMongoUserStore(db *mongo.Database) UserStore {
	return &mongoUserStore{coll: db.Collection("users")}
}

func (s *mongoUserStore) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicate
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) DeliveryManNames(ctx context.Context) ([]models.DeliveryManName, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})
	cursor, err := s.coll.Find(ctx, bson.M{"role": models.RoleDeliveryMan}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []models.DeliveryManName
	if err := cursor.All(ctx, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// UpdateRole overwrites the role and zeroes the role-specific counters.
// Prior counts are not migrated; a role change is an irreversible reset.
func (s *mongoUserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	update := bson.M{
		"$set": bson.M{
			"role":            role,
			"averageReview":   0,
			"deliveredParcel": 0,
		},
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) UpdatePhoto(ctx context.Context, email, photo string) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"photo": photo}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) UpdatePhone(ctx context.Context, email, phone string) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"phone": phone}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) TopDeliveryMen(ctx context.Context, limit int64) ([]models.TopDeliveryMan, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": models.RoleDeliveryMan}}},
		{{Key: "$project", Value: bson.M{
			"name":            1,
			"photo":           1,
			"averageReview":   1,
			"deliveredParcel": 1,
		}}},
		{{Key: "$sort", Value: bson.M{"deliveredParcel": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var top []models.TopDeliveryMan
	if err := cursor.All(ctx, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// AdjustCounters moves bookedParcel and totalSpent by the given amounts in
// one atomic $inc. It is the only writer of those fields, keeping them equal
// to the count/sum over the user's live parcels.
func (s *mongoUserStore) AdjustCounters(ctx context.Context, email string, parcelCount int64, amount float64, dir CounterDirection) error {
	sign := int64(dir)
	update := bson.M{
		"$inc": bson.M{
			"bookedParcel": parcelCount * sign,
			"totalSpent":   amount * float64(sign),
		},
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) IncrementDelivered(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"deliveredParcel": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) SetAverageReview(ctx context.Context, id primitive.ObjectID, average float64) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"averageReview": average}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
