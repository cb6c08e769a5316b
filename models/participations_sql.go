package models

import "database/sql"

type sqlParticipationRepo struct{ db *sql.DB }

func NewSQLParticipationRepository(db *sql.DB) ParticipationRepository {
	return &sqlParticipationRepo{db}
}

// Attend records that userID attends eventID. A duplicate attend is a
// no-op success: the composite key absorbs the insert and the counter
// is left alone. The insert and the counter increment commit together,
// so the counter never drifts from the number of participation rows.
func (r *sqlParticipationRepo) Attend(eventID, userID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ownerID, err := eventOwner(tx, eventID)
	if err != nil {
		return err
	}
	if ownerID == userID {
		return ErrOwnEvent
	}

	res, err := tx.Exec(
		`INSERT INTO user_events(user_id, event_id) VALUES ($1,$2)
		 ON CONFLICT (user_id, event_id) DO NOTHING`,
		userID, eventID,
	)
	if err != nil {
		return err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted > 0 {
		if _, err := tx.Exec(
			`UPDATE events SET participant_count = participant_count + 1 WHERE id=$1`,
			eventID,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Unattend deletes the (user, event) pair and decrements the counter,
// floored at zero, in one transaction. An absent pair reports
// ErrNotAttending and leaves the counter untouched.
func (r *sqlParticipationRepo) Unattend(eventID, userID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM user_events WHERE user_id=$1 AND event_id=$2`, userID, eventID)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotAttending
	}

	if _, err := tx.Exec(
		`UPDATE events
		 SET participant_count = CASE WHEN participant_count > 0 THEN participant_count - 1 ELSE 0 END
		 WHERE id=$1`,
		eventID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *sqlParticipationRepo) Attending(userID int64) ([]Event, error) {
	rows, err := r.db.Query(eventWithCreator+`
		 JOIN user_events ue ON e.id = ue.event_id
		 WHERE ue.user_id = $1
		 ORDER BY e.date DESC, e.time DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Participants lists attendee usernames; only the event owner may see
// them.
func (r *sqlParticipationRepo) Participants(eventID, requesterID int64) ([]string, error) {
	ownerID, err := eventOwner(r.db, eventID)
	if err != nil {
		return nil, err
	}
	if ownerID != requesterID {
		return nil, ErrNotOwner
	}

	rows, err := r.db.Query(
		`SELECT u.username
		 FROM users u
		 JOIN user_events ue ON u.id = ue.user_id
		 WHERE ue.event_id = $1
		 ORDER BY u.username`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
