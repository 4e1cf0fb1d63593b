package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only elevated role. A user's role moves one way, from
// absent to admin; there is no demotion path.
const RoleAdmin = "admin"

// User is keyed by email, not by _id; the upsert flow matches on it.
type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	DisplayName string             `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhotoURL    string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role        string             `json:"role,omitempty" bson:"role,omitempty"`
}
