package patient

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nursemed/homecare/internal/domain/visit"
	"github.com/nursemed/homecare/internal/platform/db"
)

type patientRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &patientRepoMongo{collection: database.Collection(db.PatientsCollection)}
}

func (r *patientRepoMongo) Create(ctx context.Context, p *Patient) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *patientRepoMongo) GetByID(ctx context.Context, id string) (*Patient, error) {
	var p Patient
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepoMongo) List(ctx context.Context) ([]*Patient, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var patients []*Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepoMongo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoMongo) SetAssignedNurses(ctx context.Context, id string, nurseIDs []string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"assigned_nurses": nurseIDs}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoMongo) SetLastVitals(ctx context.Context, id string, vitals *visit.VitalSigns, updatedAt string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"last_vitals": vitals, "updated_at": updatedAt}})
	return err
}
