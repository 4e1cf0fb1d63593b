package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/models"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

func (r *MongoUserRepository) Insert(ctx context.Context, u *models.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		log.Println("Error while inserting user:", err)
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		log.Println("Error while fetching user:", err)
		return nil, err
	}
	return &u, nil
}

/*
* Update matching record if present, otherwise insert, keyed by email
* Only the supplied fields are set; an absent role never clears an existing one
 */
func (r *MongoUserRepository) Upsert(ctx context.Context, u *models.User) (*UpdateResult, error) {
	filter := bson.M{"email": u.Email}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": u}, options.Update().SetUpsert(true))
	if err != nil {
		log.Println("Error while upserting user:", err)
		return nil, err
	}
	out := &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (r *MongoUserRepository) SetRole(ctx context.Context, email, role string) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": role}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		log.Println("Error while updating user role:", err)
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
