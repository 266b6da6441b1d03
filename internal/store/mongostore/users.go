// internal/store/mongostore/users.go
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

type UserStore struct {
	c *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{c: db.Collection("users")}
}

func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, store.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) UpdateRecipientProfile(ctx context.Context, id primitive.ObjectID, update store.ProfileUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.PhoneNumber != nil {
		set["phoneNumber"] = *update.PhoneNumber
	}
	if update.Address != nil {
		set["recipient.address"] = *update.Address
	}
	if update.MedicalHistory != nil {
		set["recipient.medicalHistory"] = *update.MedicalHistory
	}
	if update.NeededBloodType != nil {
		set["recipient.neededBloodType"] = *update.NeededBloodType
	}
	if update.NeededOrgan != nil {
		set["recipient.neededOrgan"] = *update.NeededOrgan
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) ListBloodDonors(ctx context.Context) ([]models.BloodDonorSummary, error) {
	filter := bson.M{
		"role":            models.RoleDonor,
		"donor.bloodType": bson.M{"$exists": true, "$ne": ""},
	}
	cursor, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donors := []models.BloodDonorSummary{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, err
		}
		donors = append(donors, models.BloodDonorSummary{
			ID:          u.ID,
			FullName:    u.FullName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			BloodType:   u.Donor.BloodType,
		})
	}
	return donors, cursor.Err()
}

func (s *UserStore) ListOrganDonors(ctx context.Context) ([]models.OrganDonorSummary, error) {
	filter := bson.M{
		"role":         models.RoleDonor,
		"donor.organs": bson.M{"$exists": true, "$ne": ""},
	}
	cursor, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donors := []models.OrganDonorSummary{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, err
		}
		donors = append(donors, models.OrganDonorSummary{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Organs:   u.Donor.Organs,
		})
	}
	return donors, cursor.Err()
}

func (s *UserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	filter := bson.M{"role": role}
	if role == "" {
		filter = bson.M{"role": bson.M{"$ne": models.RoleAdmin}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
