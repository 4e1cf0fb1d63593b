// Package repository wraps the document store behind per-collection
// interfaces so handlers can be exercised without a live database.
package repository

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var (
	// ErrInvalidID marks a record id that is not a well-formed ObjectID hex
	// string. Handlers translate it to a client error.
	ErrInvalidID = errors.New("invalid record id")
	// ErrNotFound marks a single-document lookup miss.
	ErrNotFound = errors.New("record not found")
)

// UpdateResult mirrors the store's update acknowledgement; its JSON shape is
// part of the response bodies for the attach-payment and upsert operations.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type AppointmentRepository interface {
	Insert(ctx context.Context, a *models.Appointment) (string, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error)
	AttachPayment(ctx context.Context, id string, p *models.Payment) (*UpdateResult, error)
}

type DoctorRepository interface {
	Insert(ctx context.Context, d *models.Doctor) (string, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, u *models.User) (*UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*UpdateResult, error)
}
