package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/models"
)

const appointmentCollection = "appointments"

type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentCollection)}
}

func (r *MongoAppointmentRepository) Insert(ctx context.Context, a *models.Appointment) (string, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		log.Println("Error while inserting appointment:", err)
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoAppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var a models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		log.Println("Error while fetching appointment:", err)
		return nil, err
	}
	return &a, nil
}

/*
* Exact-match filter on both fields; absent values are part of the filter too,
* so a request without email/date matches nothing rather than everything
 */
func (r *MongoAppointmentRepository) FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email, "date": date})
	if err != nil {
		log.Println("Error while listing appointments:", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *MongoAppointmentRepository) AttachPayment(ctx context.Context, id string, p *models.Payment) (*UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	update := bson.M{"$set": bson.M{"payment": p}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		log.Println("Error while attaching payment:", err)
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
