package contact

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nursemed/homecare/internal/platform/db"
)

type contactRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &contactRepoMongo{collection: database.Collection(db.UnableToContactCollection)}
}

func (r *contactRepoMongo) Create(ctx context.Context, rec *UnableToContact) error {
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

func (r *contactRepoMongo) GetByID(ctx context.Context, id string) (*UnableToContact, error) {
	return r.findOne(ctx, bson.M{"id": id}, nil)
}

func (r *contactRepoMongo) findOne(ctx context.Context, filter bson.M, sort interface{}) (*UnableToContact, error) {
	opts := options.FindOne()
	if sort != nil {
		opts.SetSort(sort)
	}
	var rec UnableToContact
	err := r.collection.FindOne(ctx, filter, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *contactRepoMongo) ListByPatient(ctx context.Context, patientID string) ([]*UnableToContact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "attempt_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*UnableToContact
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *contactRepoMongo) LastByPatient(ctx context.Context, patientID string) (*UnableToContact, error) {
	return r.findOne(ctx, bson.M{"patient_id": patientID}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *contactRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepoMongo) DeleteByPatient(ctx context.Context, patientID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}
