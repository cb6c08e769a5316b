package models

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password,omitempty" binding:"required"`
	IsProfessional bool   `json:"isProfessional"`
}

// Event is the stored record plus CreatorUsername, which list queries
// resolve through a join rather than storing it on the row.
type Event struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"userId"`
	Title            string `json:"title" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Category         string `json:"category" binding:"required"`
	ParticipantCount int    `json:"participantCount"`
	CreatorUsername  string `json:"creatorUsername,omitempty"`
}

// ===== Users =====
type UserRepository interface {
	Create(u *User) error
	ValidateCredentials(username, plain string) (User, error)
	GetByID(id int64) (User, error)
}

// ===== Events =====
type EventRepository interface {
	// Create enforces the free-tier quota: a non-professional owner may
	// hold at most MaxEventsPerUser events. The count and the insert are
	// two statements, so concurrent creates by the same owner can
	// overshoot the cap; that matches the reference behavior.
	Create(e *Event, professional bool) error
	GetAll() ([]Event, error)
	GetByID(id int64) (Event, error)
	Update(e *Event, requesterID int64) error
	// Delete removes the event's participations and the event row in one
	// transaction.
	Delete(id, requesterID int64) error
}

// ===== Participations =====
// A (user, event) pair is either absent or present. Attend and Unattend
// keep events.participant_count equal to the number of pairs present
// for the event; both mutate the pair and the counter in one
// transaction.
type ParticipationRepository interface {
	Attend(eventID, userID int64) error
	Unattend(eventID, userID int64) error
	Attending(userID int64) ([]Event, error)
	Participants(eventID, requesterID int64) ([]string, error)
}

// MaxEventsPerUser is the event-ownership cap for non-professional
// accounts.
const MaxEventsPerUser = 3
