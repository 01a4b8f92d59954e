package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Bloopd3d/webs/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{
		collection: db.Collection("reservations"),
	}
}

// reservationDoc is the stored shape: created_at is persisted as an ISO-8601
// string and parsed back into a time.Time on read.
type reservationDoc struct {
	ID           string `bson:"id"`
	CustomerName string `bson:"customer_name"`
	Phone        string `bson:"phone"`
	Date         string `bson:"date"`
	Time         string `bson:"time"`
	PartySize    int    `bson:"party_size"`
	Status       string `bson:"status"`
	CreatedAt    string `bson:"created_at"`
}

func toDoc(res *domain.Reservation) reservationDoc {
	return reservationDoc{
		ID:           res.ID,
		CustomerName: res.CustomerName,
		Phone:        res.Phone,
		Date:         res.Date,
		Time:         res.Time,
		PartySize:    res.PartySize,
		Status:       res.Status,
		CreatedAt:    res.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (d reservationDoc) toDomain() domain.Reservation {
	createdAt, _ := time.Parse(time.RFC3339Nano, d.CreatedAt)
	return domain.Reservation{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		Phone:        d.Phone,
		Date:         d.Date,
		Time:         d.Time,
		PartySize:    d.PartySize,
		Status:       d.Status,
		CreatedAt:    createdAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, toDoc(res))
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetLimit(maxListResults).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []reservationDoc{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	reservations := make([]domain.Reservation, len(docs))
	for i, doc := range docs {
		reservations[i] = doc.toDomain()
	}

	return reservations, nil
}

// UpdateStatus overwrites only the status field and returns the post-update
// reservation.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 0})

	var doc reservationDoc
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	res := doc.toDomain()
	return &res, nil
}
