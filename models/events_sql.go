package models

import (
	"database/sql"
	"errors"
)

type sqlEventRepo struct{ db *sql.DB }

func NewSQLEventRepository(db *sql.DB) EventRepository { return &sqlEventRepo{db} }

func (r *sqlEventRepo) Create(e *Event, professional bool) error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}

	// Count then insert. Two concurrent creates by the same owner can
	// both observe count < MaxEventsPerUser and both succeed; the cap is
	// best-effort under concurrency, matching the reference behavior.
	if !professional {
		var count int
		err := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE user_id=$1`, e.UserID).Scan(&count)
		if err != nil {
			return err
		}
		if count >= MaxEventsPerUser {
			return ErrQuotaExceeded
		}
	}

	e.ParticipantCount = 0
	return r.db.QueryRow(
		`INSERT INTO events(user_id, title, date, time, location, description, category, participant_count)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,0) RETURNING id`,
		e.UserID, e.Title, e.Date, nullable(e.Time), e.Location, e.Description, e.Category,
	).Scan(&e.ID)
}

const eventWithCreator = `
	SELECT e.id, e.user_id, e.title, e.date, e.time, e.location,
	       e.description, e.category, e.participant_count,
	       u.username AS creator_username
	FROM events e
	JOIN users u ON e.user_id = u.id`

func (r *sqlEventRepo) GetAll() ([]Event, error) {
	rows, err := r.db.Query(eventWithCreator + ` ORDER BY e.date DESC, e.time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *sqlEventRepo) GetByID(id int64) (Event, error) {
	var e Event
	var t sql.NullString
	err := r.db.QueryRow(
		`SELECT id, user_id, title, date, time, location, description, category, participant_count
		 FROM events WHERE id=$1`, id,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Date, &t, &e.Location, &e.Description, &e.Category, &e.ParticipantCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		return Event{}, err
	}
	e.Time = t.String
	return e, nil
}

func (r *sqlEventRepo) Update(e *Event, requesterID int64) error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}

	ownerID, err := eventOwner(r.db, e.ID)
	if err != nil {
		return err
	}
	if ownerID != requesterID {
		return ErrNotOwner
	}

	// Owner and participant_count are never touched here; the counter is
	// read back so callers echo the stored record, not request input.
	err = r.db.QueryRow(
		`UPDATE events SET title=$1, date=$2, time=$3, location=$4, description=$5, category=$6
		 WHERE id=$7 RETURNING participant_count`,
		e.Title, e.Date, nullable(e.Time), e.Location, e.Description, e.Category, e.ID,
	).Scan(&e.ParticipantCount)
	if err != nil {
		return err
	}
	e.UserID = ownerID
	return nil
}

// Delete removes the event's participations and the event row in a
// single transaction; either both deletes apply or neither does.
func (r *sqlEventRepo) Delete(id, requesterID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ownerID, err := eventOwner(tx, id)
	if err != nil {
		return err
	}
	if ownerID != requesterID {
		return ErrNotOwner
	}

	if _, err := tx.Exec(`DELETE FROM user_events WHERE event_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM events WHERE id=$1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

type rowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func eventOwner(q rowQuerier, eventID int64) (int64, error) {
	var ownerID int64
	err := q.QueryRow(`SELECT user_id FROM events WHERE id=$1`, eventID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrEventNotFound
	}
	return ownerID, err
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	out := []Event{}
	for rows.Next() {
		var e Event
		var t sql.NullString
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Date, &t, &e.Location,
			&e.Description, &e.Category, &e.ParticipantCount, &e.CreatorUsername,
		); err != nil {
			return nil, err
		}
		e.Time = t.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
