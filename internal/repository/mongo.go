package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	collUsers      = "users"
	collNewsletter = "newsletter_subscriptions"
	collContacts   = "contact_messages"
	collMeetings   = "meetings"
	collCounters   = "counters"
)

// bsonTime rounds t down to the millisecond precision of a BSON date, so the
// value written back to callers equals what a later read returns.
func bsonTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// mongoPinger adapts *mongo.Client to DB.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}

// OpenMongoStore connects to uri, ensures the unique indexes and returns the
// document-store variant of Store.
func OpenMongoStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(dbName)
	if err := ensureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	seq := &mongoSequence{coll: db.Collection(collCounters)}
	return &Store{
		Backend:    BackendMongo,
		Users:      &MongoUserRepository{coll: db.Collection(collUsers), seq: seq, now: utcNow},
		Newsletter: &MongoNewsletterRepository{coll: db.Collection(collNewsletter), seq: seq, now: utcNow},
		Contacts:   &MongoContactRepository{coll: db.Collection(collContacts), seq: seq, now: utcNow},
		Meetings:   &MongoMeetingRepository{coll: db.Collection(collMeetings), seq: seq, now: utcNow},
		DB:         mongoPinger{client: client},
		closeFn:    client.Disconnect,
	}, nil
}

func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []struct {
		coll  string
		field string
	}{
		{collNewsletter, "email"},
		{collUsers, "username"},
	}
	for _, u := range unique {
		_, err := db.Collection(u.coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("index %s.%s: %w", u.coll, u.field, err)
		}
	}
	return nil
}

// mongoSequence hands out monotonically increasing ids per collection from
// a counters document; ids are never reused, even after deletes.
type mongoSequence struct {
	coll *mongo.Collection
}

func (s *mongoSequence) next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return doc.Seq, nil
}

// mongoErr translates driver errors into this package's sentinels.
func mongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
