package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a patient booking. Date holds the locale-formatted string
// the booking client sends; it is matched exactly, never parsed.
type Appointment struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PatientName string             `json:"patientName" bson:"patientName"`
	Email       string             `json:"email" bson:"email"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Treatment   string             `json:"treatment" bson:"treatment"`
	Price       float64            `json:"price" bson:"price"`
	Payment     *Payment           `json:"payment,omitempty" bson:"payment,omitempty"`
}

// Payment is the confirmation attached to an appointment after a successful
// charge. It is overwritten wholesale on every attach.
type Payment struct {
	TransactionID string  `json:"transactionId" bson:"transactionId"`
	Amount        float64 `json:"amount" bson:"amount"`
	Created       int64   `json:"created" bson:"created"`
}
