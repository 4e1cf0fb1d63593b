package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"doctorsportal/models"
)

// In-memory implementations with the same error semantics as the mongo ones.
// The handler and service test suites run against these.

type MemoryAppointmentRepository struct {
	mu   sync.Mutex
	docs map[string]models.Appointment
}

func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{docs: make(map[string]models.Appointment)}
}

func (r *MemoryAppointmentRepository) Insert(_ context.Context, a *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = primitive.NewObjectID()
	r.docs[a.ID.Hex()] = *a
	return a.ID.Hex(), nil
}

func (r *MemoryAppointmentRepository) FindByID(_ context.Context, id string) (*models.Appointment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryAppointmentRepository) FindByEmailAndDate(_ context.Context, email, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range r.docs {
		if a.Email == email && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAppointmentRepository) AttachPayment(_ context.Context, id string, p *models.Payment) (*UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.docs[id]
	if !ok {
		return &UpdateResult{}, nil
	}
	a.Payment = p
	r.docs[id] = a
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type MemoryDoctorRepository struct {
	mu   sync.Mutex
	docs []models.Doctor
}

func NewMemoryDoctorRepository() *MemoryDoctorRepository {
	return &MemoryDoctorRepository{}
}

func (r *MemoryDoctorRepository) Insert(_ context.Context, d *models.Doctor) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = primitive.NewObjectID()
	r.docs = append(r.docs, *d)
	return d.ID.Hex(), nil
}

func (r *MemoryDoctorRepository) FindAll(_ context.Context) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Doctor, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Insert(_ context.Context, u *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = primitive.NewObjectID()
	r.users[u.Email] = *u
	return u.ID.Hex(), nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) Upsert(_ context.Context, u *models.User) (*UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[u.Email]
	if !ok {
		u.ID = primitive.NewObjectID()
		r.users[u.Email] = *u
		return &UpdateResult{UpsertedID: u.ID.Hex()}, nil
	}
	// $set semantics: supplied fields overwrite, omitted ones survive.
	if u.DisplayName != "" {
		existing.DisplayName = u.DisplayName
	}
	if u.PhotoURL != "" {
		existing.PhotoURL = u.PhotoURL
	}
	if u.Role != "" {
		existing.Role = u.Role
	}
	r.users[u.Email] = existing
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *MemoryUserRepository) SetRole(_ context.Context, email, role string) (*UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return &UpdateResult{}, nil
	}
	u.Role = role
	r.users[email] = u
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// Count reports how many user records exist; used to assert the upsert flow
// never duplicates a record.
func (r *MemoryUserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
