package settingsRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/database"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	settingsDocID    = "general"
	settingsCacheKey = "settings:general"
	settingsCacheTTL = 60 * time.Second
)

type mongoSettingsRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoSettingsRepo returns a new SettingsRepository instance using MongoDB
// with a Redis read-through cache.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSettingsRepo{
		coll:  db.Collection("settings"),
		cache: utils.GetCacheClient(),
	}
}

type settingsDoc struct {
	ID              string `bson:"_id"`
	models.Settings `bson:",inline"`
}

// Get returns the settings document, defaulting when it does not exist. Cache
// misses and Redis failures fall through to Mongo silently.
func (r *mongoSettingsRepo) Get(ctx context.Context) (models.Settings, error) {
	if cached, err := r.cache.Get(ctx, settingsCacheKey).Result(); err == nil {
		var settings models.Settings
		if err := json.Unmarshal([]byte(cached), &settings); err == nil {
			return settings, nil
		}
	}

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if data, err := json.Marshal(doc.Settings); err == nil {
		r.cache.Set(ctx, settingsCacheKey, data, settingsCacheTTL)
	}
	return doc.Settings, nil
}

// Update upserts the settings document and drops the cache entry.
func (r *mongoSettingsRepo) Update(ctx context.Context, settings models.Settings) error {
	doc := settingsDoc{ID: settingsDocID, Settings: settings}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	r.cache.Del(ctx, settingsCacheKey)
	return nil
}
