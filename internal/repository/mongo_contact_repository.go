package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kipkirui63/all-in-one/internal/model"
)

type contactDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     *string   `bson:"phone"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

// MongoContactRepository is the document-store ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
	seq  *mongoSequence
	now  clock
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	id, err := r.seq.next(ctx, collContacts)
	if err != nil {
		return err
	}
	doc := contactDoc{ID: id, Name: msg.Name, Email: msg.Email, Phone: msg.Phone, Message: msg.Message, CreatedAt: bsonTime(r.now())}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongoErr(err)
	}
	msg.ID = doc.ID
	msg.CreatedAt = doc.CreatedAt
	return nil
}

func (r *MongoContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*model.ContactMessage, len(docs))
	for i, d := range docs {
		out[i] = &model.ContactMessage{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Message: d.Message, CreatedAt: d.CreatedAt.UTC()}
	}
	return out, nil
}
