package admin

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nursemed/homecare/internal/platform/db"
)

type orgRepoMongo struct {
	collection *mongo.Collection
}

func NewOrganizationRepoMongo(database *mongo.Database) OrganizationRepository {
	return &orgRepoMongo{collection: database.Collection(db.OrganizationsCollection)}
}

func (r *orgRepoMongo) Create(ctx context.Context, o *Organization) error {
	_, err := r.collection.InsertOne(ctx, o)
	return err
}

func (r *orgRepoMongo) List(ctx context.Context) ([]*Organization, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orgs []*Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *orgRepoMongo) Update(ctx context.Context, id string, req OrganizationRequest) (*Organization, error) {
	patch := bson.M{
		"name":           req.Name,
		"address":        req.Address,
		"contact_person": req.ContactPerson,
		"contact_phone":  req.ContactPhone,
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var o Organization
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orgRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type dayProgramRepoMongo struct {
	collection *mongo.Collection
}

func NewDayProgramRepoMongo(database *mongo.Database) DayProgramRepository {
	return &dayProgramRepoMongo{collection: database.Collection(db.DayProgramsCollection)}
}

func (r *dayProgramRepoMongo) Create(ctx context.Context, p *DayProgram) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *dayProgramRepoMongo) List(ctx context.Context) ([]*DayProgram, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []*DayProgram
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *dayProgramRepoMongo) Update(ctx context.Context, id string, req DayProgramRequest) (*DayProgram, error) {
	patch := bson.M{
		"name":           req.Name,
		"address":        req.Address,
		"office_phone":   req.OfficePhone,
		"contact_person": req.ContactPerson,
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var p DayProgram
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *dayProgramRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
