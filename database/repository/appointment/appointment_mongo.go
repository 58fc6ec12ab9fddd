package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/database"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/availability"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

// Create inserts a new appointment and returns its ID.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return "", fmt.Errorf("failed to insert appointment: %w", err)
	}
	return appt.ID, nil
}

// CreateIfFree inserts the appointment transactionally, re-reading occupancy
// for its date first. The insert is aborted with ErrSlotTaken when any hour in
// the appointment's span is already occupied.
func (r *mongoAppointmentRepo) CreateIfFree(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return "", fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		existing, err := r.queryByDate(sc, appt.Date, []string{models.StatusPending, models.StatusConfirmed})
		if err != nil {
			return fmt.Errorf("occupancy re-check failed: %w", err)
		}

		occupied := availability.OccupiedHours(existing)
		for _, h := range availability.AppointmentHours(appt) {
			if occupied[h] {
				return ErrSlotTaken
			}
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return "", ErrSlotTaken
		}
		return "", fmt.Errorf("guarded appointment insert failed: %w", err)
	}

	return appt.ID, nil
}

// QueryByDate returns appointments on the given date filtered by status.
func (r *mongoAppointmentRepo) QueryByDate(ctx context.Context, date string, statuses []string) ([]models.Appointment, error) {
	return r.queryByDate(ctx, date, statuses)
}

func (r *mongoAppointmentRepo) queryByDate(ctx context.Context, date string, statuses []string) ([]models.Appointment, error) {
	filter := bson.M{"date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByID returns an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListAll returns every appointment, newest first.
func (r *mongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus sets the status field only; date, time and duration are immutable.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("appointment not found")
	}
	return nil
}

// DeleteByID removes an appointment by ID.
func (r *mongoAppointmentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("appointment not found")
	}
	return nil
}
