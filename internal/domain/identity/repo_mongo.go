package identity

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nursemed/homecare/internal/platform/db"
)

type nurseRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &nurseRepoMongo{collection: database.Collection(db.NursesCollection)}
}

func (r *nurseRepoMongo) Create(ctx context.Context, n *Nurse) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

func (r *nurseRepoMongo) GetByID(ctx context.Context, id string) (*Nurse, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *nurseRepoMongo) GetByEmail(ctx context.Context, email string) (*Nurse, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *nurseRepoMongo) findOne(ctx context.Context, filter bson.M) (*Nurse, error) {
	var n Nurse
	err := r.collection.FindOne(ctx, filter).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *nurseRepoMongo) List(ctx context.Context) ([]*Nurse, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var nurses []*Nurse
	if err := cursor.All(ctx, &nurses); err != nil {
		return nil, err
	}
	return nurses, nil
}

func (r *nurseRepoMongo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *nurseRepoMongo) SetAdmin(ctx context.Context, id string, admin bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_admin": admin}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *nurseRepoMongo) UpdateProfile(ctx context.Context, id string, patch map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *nurseRepoMongo) SetAssignments(ctx context.Context, id string, update AssignmentUpdate) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"assigned_patients":      update.AssignedPatients,
		"assigned_organizations": update.AssignedOrganizations,
		"allowed_forms":          update.AllowedForms,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
