package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCatalog stores records of type T as documents of type D.
// Documents must zero their created_at field on update so $set leaves it intact.
type mongoCatalog[T any, D any] struct {
	collection *mongo.Collection
	toDoc      func(T, bool) D
	fromDoc    func(D) T
}

func (r *mongoCatalog[T, D]) list(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]T, 0, len(docs))
	for _, d := range docs {
		records = append(records, r.fromDoc(d))
	}
	return records, nil
}

func (r *mongoCatalog[T, D]) get(ctx context.Context, id string) (*T, error) {
	var doc D
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	record := r.fromDoc(doc)
	return &record, nil
}

func (r *mongoCatalog[T, D]) create(ctx context.Context, record T) error {
	_, err := r.collection.InsertOne(ctx, r.toDoc(record, true))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *mongoCatalog[T, D]) update(ctx context.Context, id string, record T) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": r.toDoc(record, false)})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCatalog[T, D]) remove(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
