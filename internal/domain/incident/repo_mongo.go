package incident

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nursemed/homecare/internal/platform/db"
	"github.com/nursemed/homecare/pkg/pagination"
)

type incidentRepoMongo struct {
	collection *mongo.Collection
}

func NewRepoMongo(database *mongo.Database) Repository {
	return &incidentRepoMongo{collection: database.Collection(db.IncidentReportsCollection)}
}

func (r *incidentRepoMongo) Create(ctx context.Context, rep Report) error {
	_, err := r.collection.InsertOne(ctx, rep)
	return err
}

func (r *incidentRepoMongo) List(ctx context.Context, nurseID string, page pagination.Params) ([]Report, error) {
	filter := bson.M{}
	if nurseID != "" {
		filter["nurse_id"] = nurseID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"_id": 0})
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
