package services

import (
	"context"

	"doctorsportal/models"
	"doctorsportal/repository"
)

type AppointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Book(ctx context.Context, a *models.Appointment) (string, error) {
	return s.repo.Insert(ctx, a)
}

func (s *AppointmentService) Fetch(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, email, date string) ([]models.Appointment, error) {
	return s.repo.FindByEmailAndDate(ctx, email, date)
}

// AttachPayment overwrites the appointment's payment sub-document. Nothing
// guards against re-invocation; a second attach replaces the first.
func (s *AppointmentService) AttachPayment(ctx context.Context, id string, p *models.Payment) (*repository.UpdateResult, error) {
	return s.repo.AttachPayment(ctx, id, p)
}
