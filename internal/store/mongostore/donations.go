// internal/store/mongostore/donations.go
package mongostore

import (
	"context"
	"errors"
	"time"

	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DonationStore struct {
	c *mongo.Collection
}

func NewDonationStore(db *mongo.Database) *DonationStore {
	return &DonationStore{c: db.Collection("donations")}
}

func (s *DonationStore) Create(ctx context.Context, donation models.Donation) (models.Donation, error) {
	donation.ID = primitive.NewObjectID()
	if donation.Date.IsZero() {
		donation.Date = time.Now()
	}
	if donation.Status == "" {
		donation.Status = models.StatusPending
	}
	if donation.Urgency == "" {
		donation.Urgency = models.UrgencyNormal
	}

	if _, err := s.c.InsertOne(ctx, donation); err != nil {
		return models.Donation{}, err
	}
	return donation, nil
}

func (s *DonationStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var d models.Donation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *DonationStore) ListByDonor(ctx context.Context, donorID primitive.ObjectID) ([]models.Donation, error) {
	return s.list(ctx, bson.M{"donor": donorID}, 1)
}

func (s *DonationStore) ListByRecipient(ctx context.Context, recipientID primitive.ObjectID) ([]models.Donation, error) {
	return s.list(ctx, bson.M{"recipient": recipientID}, 1)
}

func (s *DonationStore) List(ctx context.Context, status string) ([]models.Donation, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.list(ctx, filter, -1)
}

func (s *DonationStore) list(ctx context.Context, filter bson.M, order int) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: order}})
	cursor, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := []models.Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateStatus moves a donation to a new status. The update is conditional on
// the current status still permitting the transition, so a concurrent
// transition loses instead of overwriting.
func (s *DonationStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Donation, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(current.Status, status) {
		return nil, store.ErrInvalidTransition
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d models.Donation
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": current.Status},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost a race with another transition.
			return nil, store.ErrInvalidTransition
		}
		return nil, err
	}
	return &d, nil
}
