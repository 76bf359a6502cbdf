package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
)

// ReviewStore is the persistence surface for delivery-man reviews.
type ReviewStore interface {
	Insert(ctx context.Context, review models.Review) (primitive.ObjectID, error)
	FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Review, error)
	AverageRating(ctx context.Context, deliveryManID primitive.ObjectID) (float64, error)
}

type mongoReviewStore struct {
	coll *mongo.Collection
}

// NewMongoReviewStore returns a ReviewStore backed by the reviews collection.
func NewMongoReviewStore(db *mongo.Database) ReviewStore {
	return &mongoReviewStore{coll: db.Collection("reviews")}
}

func (s *mongoReviewStore) Insert(ctx context.Context, review models.Review) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoReviewStore) FindByDeliveryMan(ctx context.Context, id primitive.ObjectID) ([]models.Review, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"deliveryManId": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating computes the mean rating over all reviews for the delivery
// man, rounded to one decimal place. ErrNotFound when no reviews exist.
func (s *mongoReviewStore) AverageRating(ctx context.Context, deliveryManID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deliveryManId": deliveryManID}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"averageRating": bson.M{"$round": bson.A{"$averageRating", 1}},
		}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, ErrNotFound
	}
	return results[0].AverageRating, nil
}
