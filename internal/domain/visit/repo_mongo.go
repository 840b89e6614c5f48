package visit

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nursemed/homecare/internal/platform/db"
)

type visitRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &visitRepoMongo{collection: database.Collection(db.VisitsCollection)}
}

func (r *visitRepoMongo) Create(ctx context.Context, v *Visit) error {
	_, err := r.collection.InsertOne(ctx, v)
	return err
}

func (r *visitRepoMongo) GetByID(ctx context.Context, id string) (*Visit, error) {
	return r.findOne(ctx, bson.M{"id": id}, nil)
}

func (r *visitRepoMongo) findOne(ctx context.Context, filter bson.M, sort interface{}) (*Visit, error) {
	opts := options.FindOne()
	if sort != nil {
		opts.SetSort(sort)
	}
	var v Visit
	err := r.collection.FindOne(ctx, filter, opts).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *visitRepoMongo) ListByPatient(ctx context.Context, patientID string) ([]*Visit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "visit_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var visits []*Visit
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepoMongo) Update(ctx context.Context, v *Visit) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": v.ID}, v)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *visitRepoMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *visitRepoMongo) DeleteByPatient(ctx context.Context, patientID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}

func (r *visitRepoMongo) LastCompleted(ctx context.Context, patientID string) (*Visit, error) {
	return r.findOne(ctx,
		bson.M{"patient_id": patientID, "status": StatusCompleted},
		bson.D{{Key: "visit_date", Value: -1}})
}

func (r *visitRepoMongo) LastCompletedClinical(ctx context.Context, patientID string) (*Visit, error) {
	return r.findOne(ctx,
		bson.M{
			"patient_id": patientID,
			"status":     StatusCompleted,
			"visit_type": bson.M{"$ne": TypeDailyNote},
		},
		bson.D{{Key: "visit_date", Value: -1}})
}

func (r *visitRepoMongo) LastVitalsBearing(ctx context.Context, patientID string) (*Visit, error) {
	return r.findOne(ctx,
		bson.M{
			"patient_id": patientID,
			"visit_type": bson.M{"$in": []string{TypeNurseVisit, TypeVitalsOnly}},
		},
		bson.D{{Key: "visit_date", Value: -1}})
}

func (r *visitRepoMongo) ListForReport(ctx context.Context, filter ReportFilter) ([]*Visit, error) {
	query := bson.M{
		"nurse_id":   filter.NurseID,
		"visit_date": bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate},
	}
	if filter.PatientID != "" {
		query["patient_id"] = filter.PatientID
	}
	if filter.Organization != "" {
		query["organization"] = filter.Organization
	}
	if filter.VisitType != "" {
		query["visit_type"] = filter.VisitType
	}

	opts := options.Find().SetSort(bson.D{{Key: "visit_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var visits []*Visit
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}
