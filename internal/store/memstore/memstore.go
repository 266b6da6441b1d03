// internal/store/memstore/memstore.go
//
// In-memory store implementations, used by tests in place of MongoDB. They
// honor the same contract as mongostore: sentinel errors, sort orders and
// partial-update semantics.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *UserStore) Create(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrDuplicateEmail
		}
	}

	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (s *UserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) UpdateRecipientProfile(_ context.Context, id primitive.ObjectID, update store.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if u.Recipient == nil {
		u.Recipient = &models.RecipientProfile{}
	}
	if update.PhoneNumber != nil {
		u.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		u.Recipient.Address = *update.Address
	}
	if update.MedicalHistory != nil {
		u.Recipient.MedicalHistory = *update.MedicalHistory
	}
	if update.NeededBloodType != nil {
		u.Recipient.NeededBloodType = *update.NeededBloodType
	}
	if update.NeededOrgan != nil {
		u.Recipient.NeededOrgan = *update.NeededOrgan
	}
	u.UpdatedAt = time.Now()

	s.users[id] = u
	return &u, nil
}

func (s *UserStore) ListBloodDonors(_ context.Context) ([]models.BloodDonorSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donors := []models.BloodDonorSummary{}
	for _, u := range s.users {
		if u.Role != models.RoleDonor || u.Donor == nil || u.Donor.BloodType == "" {
			continue
		}
		donors = append(donors, models.BloodDonorSummary{
			ID:          u.ID,
			FullName:    u.FullName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			BloodType:   u.Donor.BloodType,
		})
	}
	return donors, nil
}

func (s *UserStore) ListOrganDonors(_ context.Context) ([]models.OrganDonorSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donors := []models.OrganDonorSummary{}
	for _, u := range s.users {
		if u.Role != models.RoleDonor || u.Donor == nil || u.Donor.Organs == "" {
			continue
		}
		donors = append(donors, models.OrganDonorSummary{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Organs:   u.Donor.Organs,
		})
	}
	return donors, nil
}

func (s *UserStore) ListByRole(_ context.Context, role string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []models.User{}
	for _, u := range s.users {
		if role == "" {
			if u.Role != models.RoleAdmin {
				users = append(users, u)
			}
		} else if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

type DonationStore struct {
	mu        sync.RWMutex
	donations map[primitive.ObjectID]models.Donation
}

func NewDonationStore() *DonationStore {
	return &DonationStore{donations: make(map[primitive.ObjectID]models.Donation)}
}

func (s *DonationStore) Create(_ context.Context, donation models.Donation) (models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.donations[donation.ID] = donation
	return donation, nil
}

func (s *DonationStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.donations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (s *DonationStore) ListByDonor(_ context.Context, donorID primitive.ObjectID) ([]models.Donation, error) {
	return s.filter(func(d models.Donation) bool { return d.Donor == donorID }, false), nil
}

func (s *DonationStore) ListByRecipient(_ context.Context, recipientID primitive.ObjectID) ([]models.Donation, error) {
	return s.filter(func(d models.Donation) bool { return d.Recipient == recipientID }, false), nil
}

func (s *DonationStore) List(_ context.Context, status string) ([]models.Donation, error) {
	return s.filter(func(d models.Donation) bool {
		return status == "" || d.Status == status
	}, true), nil
}

func (s *DonationStore) filter(keep func(models.Donation) bool, newestFirst bool) []models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donations := []models.Donation{}
	for _, d := range s.donations {
		if keep(d) {
			donations = append(donations, d)
		}
	}
	sort.Slice(donations, func(i, j int) bool {
		if newestFirst {
			return donations[i].Date.After(donations[j].Date)
		}
		return donations[i].Date.Before(donations[j].Date)
	})
	return donations
}

func (s *DonationStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.donations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if !models.CanTransition(d.Status, status) {
		return nil, store.ErrInvalidTransition
	}
	d.Status = status
	s.donations[id] = d
	return &d, nil
}
