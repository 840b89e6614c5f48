package intervention

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nursemed/homecare/internal/platform/db"
)

type interventionRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &interventionRepoMongo{collection: database.Collection(db.InterventionsCollection)}
}

func (r *interventionRepoMongo) Create(ctx context.Context, i *Intervention) error {
	_, err := r.collection.InsertOne(ctx, i)
	return err
}

func (r *interventionRepoMongo) GetByID(ctx context.Context, id string) (*Intervention, error) {
	var i Intervention
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *interventionRepoMongo) ListByPatient(ctx context.Context, patientID string) ([]*Intervention, error) {
	opts := options.Find().SetSort(bson.D{{Key: "intervention_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interventions []*Intervention
	if err := cursor.All(ctx, &interventions); err != nil {
		return nil, err
	}
	return interventions, nil
}

func (r *interventionRepoMongo) Update(ctx context.Context, i *Intervention) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": i.ID}, i)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *interventionRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *interventionRepoMongo) DeleteByPatient(ctx context.Context, patientID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}
