package models

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"planifevent/utils"
)

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

func (r *sqlUserRepo) Create(u *User) error {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(
		`INSERT INTO users(username, password_hash, is_professional) VALUES ($1,$2,$3) RETURNING id`,
		u.Username, hashed, u.IsProfessional,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	u.Password = ""
	return nil
}

func (r *sqlUserRepo) ValidateCredentials(username, plain string) (User, error) {
	var u User
	var hashed string
	err := r.db.QueryRow(
		`SELECT id, username, password_hash, is_professional FROM users WHERE username=$1`,
		username,
	).Scan(&u.ID, &u.Username, &hashed, &u.IsProfessional)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if !utils.CheckPasswordHash(plain, hashed) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (r *sqlUserRepo) GetByID(id int64) (User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, username, is_professional FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Username, &u.IsProfessional)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

// isUniqueViolation matches Postgres error code 23505, with a message
// fallback so the sqlite-backed repository tests hit the same path.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
