package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kipkirui63/all-in-one/internal/model"
)

type meetingDoc struct {
	ID              int64     `bson:"_id"`
	Name            string    `bson:"name"`
	Email           string    `bson:"email"`
	Phone           *string   `bson:"phone"`
	Company         *string   `bson:"company"`
	MeetingType     string    `bson:"meeting_type"`
	PreferredDate   time.Time `bson:"preferred_date"`
	Duration        int       `bson:"duration"`
	Timezone        string    `bson:"timezone"`
	Description     *string   `bson:"description"`
	Status          string    `bson:"status"`
	GoogleMeetLink  *string   `bson:"google_meet_link"`
	CalendarEventID *string   `bson:"calendar_event_id"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func meetingToDoc(m *model.Meeting) meetingDoc {
	return meetingDoc{
		ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Company: m.Company,
		MeetingType: m.MeetingType, PreferredDate: m.PreferredDate, Duration: m.Duration,
		Timezone: m.Timezone, Description: m.Description, Status: m.Status,
		GoogleMeetLink: m.GoogleMeetLink, CalendarEventID: m.CalendarEventID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func (d meetingDoc) toModel() *model.Meeting {
	return &model.Meeting{
		ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Company: d.Company,
		MeetingType: d.MeetingType, PreferredDate: d.PreferredDate.UTC(), Duration: d.Duration,
		Timezone: d.Timezone, Description: d.Description, Status: d.Status,
		GoogleMeetLink: d.GoogleMeetLink, CalendarEventID: d.CalendarEventID,
		CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoMeetingRepository is the document-store MeetingRepository.
type MongoMeetingRepository struct {
	coll *mongo.Collection
	seq  *mongoSequence
	now  clock
}

var _ MeetingRepository = (*MongoMeetingRepository)(nil)

// newMeetingDoc stamps m with id and now and returns its document.
// Times are cut to BSON precision first so m matches what a later read returns.
func newMeetingDoc(m *model.Meeting, id int64, now time.Time) meetingDoc {
	m.ApplyDefaults()
	m.ID = id
	m.PreferredDate = bsonTime(m.PreferredDate)
	m.CreatedAt = bsonTime(now)
	m.UpdatedAt = m.CreatedAt
	return meetingToDoc(m)
}

func (r *MongoMeetingRepository) Create(ctx context.Context, m *model.Meeting) error {
	id, err := r.seq.next(ctx, collMeetings)
	if err != nil {
		return err
	}
	stored := m.Clone()
	doc := newMeetingDoc(stored, id, r.now())
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongoErr(err)
	}
	*m = *stored
	return nil
}

func (r *MongoMeetingRepository) Get(ctx context.Context, id int64) (*model.Meeting, error) {
	var doc meetingDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		return nil, mongoErr(err)
	}
	return doc.toModel(), nil
}

func (r *MongoMeetingRepository) List(ctx context.Context) ([]*model.Meeting, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []meetingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*model.Meeting, len(docs))
	for i, d := range docs {
		out[i] = d.toModel()
	}
	return out, nil
}

// meetingSetDoc builds the $set document for the non-nil fields of upd.
// Optional fields set to "" are stored as null.
func meetingSetDoc(upd model.MeetingUpdate, now time.Time) bson.D {
	set := bson.D{}
	str := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: *v})
		}
	}
	optional := func(key string, v *string) {
		if v != nil {
			set = append(set, bson.E{Key: key, Value: model.NullIfEmpty(v)})
		}
	}
	str("name", upd.Name)
	str("email", upd.Email)
	optional("phone", upd.Phone)
	optional("company", upd.Company)
	str("meeting_type", upd.MeetingType)
	if upd.PreferredDate != nil {
		set = append(set, bson.E{Key: "preferred_date", Value: *upd.PreferredDate})
	}
	if upd.Duration != nil {
		set = append(set, bson.E{Key: "duration", Value: *upd.Duration})
	}
	str("timezone", upd.Timezone)
	optional("description", upd.Description)
	str("status", upd.Status)
	optional("google_meet_link", upd.GoogleMeetLink)
	optional("calendar_event_id", upd.CalendarEventID)
	return append(set, bson.E{Key: "updated_at", Value: now})
}

// Update は更新前のドキュメントを受け取り、そこから更新後の値を組み立てる
func (r *MongoMeetingRepository) Update(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, time.Time, error) {
	if upd.PreferredDate != nil {
		d := bsonTime(*upd.PreferredDate)
		upd.PreferredDate = &d
	}
	now := bsonTime(r.now())

	var doc meetingDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: meetingSetDoc(upd, now)}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&doc)
	if err != nil {
		return nil, time.Time{}, mongoErr(err)
	}
	prev := doc.toModel()
	updated := prev.Clone()
	upd.Apply(updated, now)
	return updated, prev.PreferredDate, nil
}

func (r *MongoMeetingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
