package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kipkirui63/all-in-one/internal/model"
)

type userDoc struct {
	ID           int64     `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

// MongoUserRepository is the document-store UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
	seq  *mongoSequence
	now  clock
}

var _ UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) Create(ctx context.Context, user *model.User) error {
	id, err := r.seq.next(ctx, collUsers)
	if err != nil {
		return err
	}
	doc := userDoc{ID: id, Username: user.Username, PasswordHash: user.PasswordHash, CreatedAt: bsonTime(r.now())}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongoErr(err)
	}
	user.ID = doc.ID
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *MongoUserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mongoErr(err)
	}
	return &model.User{ID: doc.ID, Username: doc.Username, PasswordHash: doc.PasswordHash, CreatedAt: doc.CreatedAt.UTC()}, nil
}
