package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor carries the uploaded portrait as raw bytes. No content-type or size
// validation is applied to the image.
type Doctor struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Image []byte             `json:"image" bson:"image"`
}
