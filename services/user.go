package services

import (
	"context"
	"errors"
	"log"

	"doctorsportal/models"
	"doctorsportal/repository"
)

// ErrForbidden marks an admin action attempted without an admin identity.
var ErrForbidden = errors.New("requester is not an admin")

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, u *models.User) (string, error) {
	return s.repo.Insert(ctx, u)
}

func (s *UserService) Upsert(ctx context.Context, u *models.User) (*repository.UpdateResult, error) {
	return s.repo.Upsert(ctx, u)
}

/*
* Lookup by email; a missing user is simply not an admin, never an error
 */
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == models.RoleAdmin, nil
}

/*
* Promote the target to admin, gated on the requester already being one
* A requester with no user record is refused outright; the old flow hung
* without a response on that path
 */
func (s *UserService) Promote(ctx context.Context, requesterEmail, targetEmail string) (*repository.UpdateResult, error) {
	if requesterEmail == "" {
		return nil, ErrForbidden
	}
	requester, err := s.repo.FindByEmail(ctx, requesterEmail)
	if errors.Is(err, repository.ErrNotFound) {
		log.Println("Promotion refused, requester has no user record:", requesterEmail)
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	if requester.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.repo.SetRole(ctx, targetEmail, models.RoleAdmin)
}
