package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the persisted state layout. Every document carries an
// opaque string "id" field distinct from Mongo's internal _id.
const (
	NursesCollection          = "nurses"
	PatientsCollection        = "patients"
	VisitsCollection          = "visits"
	InterventionsCollection   = "interventions"
	UnableToContactCollection = "unable_to_contact"
	OrganizationsCollection   = "organizations"
	DayProgramsCollection     = "day_programs"
	IncidentReportsCollection = "incident_reports"
)

func Connect(ctx context.Context, mongoURL, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(dbName), nil
}
