package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kipkirui63/all-in-one/internal/model"
)

// PgMeetingRepository は MeetingRepository の PostgreSQL 実装
type PgMeetingRepository struct {
	pool *pgxpool.Pool
}

// NewPgMeetingRepository は PgMeetingRepository を生成する
func NewPgMeetingRepository(pool *pgxpool.Pool) *PgMeetingRepository {
	return &PgMeetingRepository{pool: pool}
}

var _ MeetingRepository = (*PgMeetingRepository)(nil)

const meetingSelectCols = `id, name, email, phone, company, meeting_type, preferred_date, duration,
	timezone, description, status, google_meet_link, calendar_event_id, created_at, updated_at`

// meetingDest は meetingSelectCols の順にスキャン先を並べる
func meetingDest(m *model.Meeting) []any {
	return []any{&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.MeetingType, &m.PreferredDate,
		&m.Duration, &m.Timezone, &m.Description, &m.Status, &m.GoogleMeetLink, &m.CalendarEventID,
		&m.CreatedAt, &m.UpdatedAt}
}

func scanMeeting(scan func(...any) error) (*model.Meeting, error) {
	var m model.Meeting
	if err := scan(meetingDest(&m)...); err != nil {
		return nil, pgErr(err)
	}
	m.PreferredDate = m.PreferredDate.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}

// Create は会議を作成する。duration / status の既定値はここで適用する。
// 保存後の行（TIMESTAMPTZ はマイクロ秒精度）を m に書き戻す
func (r *PgMeetingRepository) Create(ctx context.Context, m *model.Meeting) error {
	m.ApplyDefaults()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO meetings (name, email, phone, company, meeting_type, preferred_date, duration,
			timezone, description, status, google_meet_link, calendar_event_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+meetingSelectCols,
		m.Name, m.Email, m.Phone, m.Company, m.MeetingType, m.PreferredDate, m.Duration,
		m.Timezone, m.Description, m.Status, m.GoogleMeetLink, m.CalendarEventID,
	)
	saved, err := scanMeeting(row.Scan)
	if err != nil {
		return err
	}
	*m = *saved
	return nil
}

// Get は ID で会議を取得する
func (r *PgMeetingRepository) Get(ctx context.Context, id int64) (*model.Meeting, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+meetingSelectCols+` FROM meetings WHERE id = $1`, id)
	return scanMeeting(row.Scan)
}

// List は全会議を ID 昇順で返す
func (r *PgMeetingRepository) List(ctx context.Context) ([]*model.Meeting, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+meetingSelectCols+` FROM meetings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update は nil でないフィールドだけを上書きする（COALESCE による部分更新）。
// 任意項目は空文字で NULL に戻す。更新前の preferred_date は FOR UPDATE で
// 行をロックした CTE から読むため、同時更新でも書き込みと整合する
func (r *PgMeetingRepository) Update(ctx context.Context, id int64, upd model.MeetingUpdate) (*model.Meeting, time.Time, error) {
	row := r.pool.QueryRow(ctx,
		`WITH prev AS (
			SELECT id AS prev_id, preferred_date AS prev_date FROM meetings WHERE id = $1 FOR UPDATE
		 )
		 UPDATE meetings SET
			name              = COALESCE($2, name),
			email             = COALESCE($3, email),
			phone             = CASE WHEN $4::text IS NULL THEN phone ELSE NULLIF($4::text, '') END,
			company           = CASE WHEN $5::text IS NULL THEN company ELSE NULLIF($5::text, '') END,
			meeting_type      = COALESCE($6, meeting_type),
			preferred_date    = COALESCE($7, preferred_date),
			duration          = COALESCE($8, duration),
			timezone          = COALESCE($9, timezone),
			description       = CASE WHEN $10::text IS NULL THEN description ELSE NULLIF($10::text, '') END,
			status            = COALESCE($11, status),
			google_meet_link  = CASE WHEN $12::text IS NULL THEN google_meet_link ELSE NULLIF($12::text, '') END,
			calendar_event_id = CASE WHEN $13::text IS NULL THEN calendar_event_id ELSE NULLIF($13::text, '') END,
			updated_at        = NOW()
		 FROM prev
		 WHERE id = prev_id
		 RETURNING `+meetingSelectCols+`, prev_date`,
		id, upd.Name, upd.Email, upd.Phone, upd.Company, upd.MeetingType, upd.PreferredDate,
		upd.Duration, upd.Timezone, upd.Description, upd.Status, upd.GoogleMeetLink, upd.CalendarEventID,
	)
	var m model.Meeting
	var prev time.Time
	if err := row.Scan(append(meetingDest(&m), &prev)...); err != nil {
		return nil, time.Time{}, pgErr(err)
	}
	m.PreferredDate = m.PreferredDate.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, prev.UTC(), nil
}

// Delete は会議を削除し、行が存在したかを返す
func (r *PgMeetingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
