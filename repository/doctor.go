package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/models"
)

const doctorCollection = "doctors"

type MongoDoctorRepository struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepository(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{coll: db.Collection(doctorCollection)}
}

func (r *MongoDoctorRepository) Insert(ctx context.Context, d *models.Doctor) (string, error) {
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		log.Println("Error while inserting doctor:", err)
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Error while listing doctors:", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
