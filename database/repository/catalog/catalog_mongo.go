package catalogRepo

import (
	"context"
	"errors"
	"fmt"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/database"
	"jojocolaresbeauty/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a new ServiceRepository instance using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}

// Create inserts a new service and returns its ID.
func (r *mongoServiceRepo) Create(ctx context.Context, svc models.Service) (string, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return "", fmt.Errorf("failed to insert service: %w", err)
	}
	return svc.ID, nil
}

// GetByID returns a service by its ID.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// GetByIDs returns the services matching the given IDs.
func (r *mongoServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// ListAll returns the full catalogue sorted by name.
func (r *mongoServiceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// Update replaces a service document.
func (r *mongoServiceRepo) Update(ctx context.Context, svc models.Service) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}

// DeleteByID removes a service by ID.
func (r *mongoServiceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}
