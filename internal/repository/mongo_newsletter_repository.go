package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kipkirui63/all-in-one/internal/model"
)

type subscriptionDoc struct {
	ID           int64     `bson:"_id"`
	Email        string    `bson:"email"`
	FirstName    *string   `bson:"first_name"`
	LastName     *string   `bson:"last_name"`
	SubscribedAt time.Time `bson:"subscribed_at"`
}

func (d subscriptionDoc) toModel() *model.NewsletterSubscription {
	return &model.NewsletterSubscription{
		ID: d.ID, Email: d.Email, FirstName: d.FirstName, LastName: d.LastName, SubscribedAt: d.SubscribedAt.UTC(),
	}
}

// MongoNewsletterRepository is the document-store NewsletterRepository.
// A unique index on email backs the duplicate check.
type MongoNewsletterRepository struct {
	coll *mongo.Collection
	seq  *mongoSequence
	now  clock
}

var _ NewsletterRepository = (*MongoNewsletterRepository)(nil)

func (r *MongoNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	id, err := r.seq.next(ctx, collNewsletter)
	if err != nil {
		return err
	}
	doc := subscriptionDoc{ID: id, Email: sub.Email, FirstName: sub.FirstName, LastName: sub.LastName, SubscribedAt: bsonTime(r.now())}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongoErr(err)
	}
	sub.ID = doc.ID
	sub.SubscribedAt = doc.SubscribedAt
	return nil
}

func (r *MongoNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var doc subscriptionDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return nil, mongoErr(err)
	}
	return doc.toModel(), nil
}

func (r *MongoNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []subscriptionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*model.NewsletterSubscription, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out, nil
}
