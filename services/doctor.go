package services

import (
	"context"
	"encoding/base64"
	"log"

	"doctorsportal/models"
	"doctorsportal/repository"
)

type DoctorService struct {
	repo repository.DoctorRepository
}

func NewDoctorService(repo repository.DoctorRepository) *DoctorService {
	return &DoctorService{repo: repo}
}

// EncodeImage runs the upload through a base64 encode/decode round trip
// before storage. The output is byte-identical to the input; kept so image
// blobs stay interchangeable with ones written by the legacy ingest path.
// TODO: drop the round trip once the legacy path is retired.
func EncodeImage(data []byte) ([]byte, error) {
	encoded := base64.StdEncoding.EncodeToString(data)
	return base64.StdEncoding.DecodeString(encoded)
}

func (s *DoctorService) Register(ctx context.Context, name, email string, image []byte) (string, error) {
	img, err := EncodeImage(image)
	if err != nil {
		log.Println("Error while encoding doctor image:", err)
		return "", err
	}
	return s.repo.Insert(ctx, &models.Doctor{Name: name, Email: email, Image: img})
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.repo.FindAll(ctx)
}
