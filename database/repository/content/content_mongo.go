package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/database"
	"jojocolaresbeauty/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const landingDocID = "landingPage"

type mongoContentRepo struct {
	portfolioColl    *mongo.Collection
	testimonialsColl *mongo.Collection
	settingsColl     *mongo.Collection
}

// NewMongoContentRepo returns a new ContentRepository instance using MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContentRepo{
		portfolioColl:    db.Collection("portfolio"),
		testimonialsColl: db.Collection("testimonials"),
		settingsColl:     db.Collection("settings"),
	}
}

func (r *mongoContentRepo) CreatePortfolioItem(ctx context.Context, item models.PortfolioItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if _, err := r.portfolioColl.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("failed to insert portfolio item: %w", err)
	}
	return item.ID, nil
}

func (r *mongoContentRepo) ListPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.portfolioColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.PortfolioItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio items: %w", err)
	}
	return items, nil
}

func (r *mongoContentRepo) DeletePortfolioItem(ctx context.Context, id string) error {
	res, err := r.portfolioColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("portfolio item not found")
	}
	return nil
}

func (r *mongoContentRepo) CreateTestimonial(ctx context.Context, tm models.Testimonial) (string, error) {
	if tm.ID == "" {
		tm.ID = uuid.New().String()
	}
	if tm.CreatedAt.IsZero() {
		tm.CreatedAt = time.Now()
	}
	if _, err := r.testimonialsColl.InsertOne(ctx, tm); err != nil {
		return "", fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return tm.ID, nil
}

func (r *mongoContentRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.testimonialsColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Testimonial
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return items, nil
}

func (r *mongoContentRepo) DeleteTestimonial(ctx context.Context, id string) error {
	res, err := r.testimonialsColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("testimonial not found")
	}
	return nil
}

type landingDoc struct {
	ID                 string `bson:"_id"`
	models.LandingPage `bson:",inline"`
}

// GetLandingPage returns the customized landing content, defaulting when the
// admin has never saved it.
func (r *mongoContentRepo) GetLandingPage(ctx context.Context) (models.LandingPage, error) {
	var doc landingDoc
	err := r.settingsColl.FindOne(ctx, bson.M{"_id": landingDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultLandingPage(), nil
	}
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("failed to load landing page: %w", err)
	}
	return doc.LandingPage, nil
}

// UpdateLandingPage upserts the landing content document.
func (r *mongoContentRepo) UpdateLandingPage(ctx context.Context, page models.LandingPage) error {
	doc := landingDoc{ID: landingDocID, LandingPage: page}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.settingsColl.ReplaceOne(ctx, bson.M{"_id": landingDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to update landing page: %w", err)
	}
	return nil
}
