package routes_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"planifevent/models"
	"planifevent/routes"
	"planifevent/utils"
)

/* ---------- in-memory repositories ---------- */

type mockUserRepo struct {
	users  map[string]models.User // keyed by username
	nextID int64
}

func (m *mockUserRepo) Create(u *models.User) error {
	if _, ok := m.users[u.Username]; ok {
		return models.ErrUsernameTaken
	}
	m.nextID++
	u.ID = m.nextID
	m.users[u.Username] = *u
	return nil
}

func (m *mockUserRepo) ValidateCredentials(username, plain string) (models.User, error) {
	u, ok := m.users[username]
	if !ok || u.Password != plain {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(id int64) (models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

type mockEventRepo struct {
	items  map[int64]*models.Event
	nextID int64
	pairs  map[string]bool
}

func (m *mockEventRepo) Create(e *models.Event, professional bool) error {
	if err := models.ValidateDate(e.Date); err != nil {
		return err
	}
	if !professional {
		owned := 0
		for _, ev := range m.items {
			if ev.UserID == e.UserID {
				owned++
			}
		}
		if owned >= models.MaxEventsPerUser {
			return models.ErrQuotaExceeded
		}
	}
	m.nextID++
	e.ID = m.nextID
	e.ParticipantCount = 0
	cp := *e
	m.items[e.ID] = &cp
	return nil
}

func (m *mockEventRepo) GetAll() ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEventRepo) GetByID(id int64) (models.Event, error) {
	e, ok := m.items[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}
	return *e, nil
}

func (m *mockEventRepo) Update(e *models.Event, requesterID int64) error {
	if err := models.ValidateDate(e.Date); err != nil {
		return err
	}
	old, ok := m.items[e.ID]
	if !ok {
		return models.ErrEventNotFound
	}
	if old.UserID != requesterID {
		return models.ErrNotOwner
	}
	old.Title, old.Date, old.Time = e.Title, e.Date, e.Time
	old.Location, old.Description, old.Category = e.Location, e.Description, e.Category
	// Callers get the stored record back, counter and owner included.
	e.UserID = old.UserID
	e.ParticipantCount = old.ParticipantCount
	return nil
}

func (m *mockEventRepo) Delete(id, requesterID int64) error {
	e, ok := m.items[id]
	if !ok {
		return models.ErrEventNotFound
	}
	if e.UserID != requesterID {
		return models.ErrNotOwner
	}
	suffix := fmt.Sprintf(":%d", id)
	for k := range m.pairs {
		if k[strings.IndexByte(k, ':'):] == suffix {
			delete(m.pairs, k)
		}
	}
	delete(m.items, id)
	return nil
}

type mockParticipationRepo struct {
	events *mockEventRepo
}

func pairKey(userID, eventID int64) string { return fmt.Sprintf("%d:%d", userID, eventID) }

func (m *mockParticipationRepo) Attend(eventID, userID int64) error {
	e, ok := m.events.items[eventID]
	if !ok {
		return models.ErrEventNotFound
	}
	if e.UserID == userID {
		return models.ErrOwnEvent
	}
	k := pairKey(userID, eventID)
	if m.events.pairs[k] {
		return nil
	}
	m.events.pairs[k] = true
	e.ParticipantCount++
	return nil
}

func (m *mockParticipationRepo) Unattend(eventID, userID int64) error {
	k := pairKey(userID, eventID)
	if !m.events.pairs[k] {
		return models.ErrNotAttending
	}
	delete(m.events.pairs, k)
	if e, ok := m.events.items[eventID]; ok && e.ParticipantCount > 0 {
		e.ParticipantCount--
	}
	return nil
}

func (m *mockParticipationRepo) Attending(userID int64) ([]models.Event, error) {
	out := []models.Event{}
	for id, e := range m.events.items {
		if m.events.pairs[pairKey(userID, id)] {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockParticipationRepo) Participants(eventID, requesterID int64) ([]string, error) {
	e, ok := m.events.items[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	if e.UserID != requesterID {
		return nil, models.ErrNotOwner
	}
	return []string{}, nil
}

/* ---------- server setup ---------- */

type serverDeps struct {
	s  *gin.Engine
	ur *mockUserRepo
	er *mockEventRepo
	pr *mockParticipationRepo
}

func setupServerWithDeps(t *testing.T) serverDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inv := utils.NewCacheInvalidator(rdb)

	ur := &mockUserRepo{users: map[string]models.User{}}
	er := &mockEventRepo{items: map[int64]*models.Event{}, pairs: map[string]bool{}}
	pr := &mockParticipationRepo{events: er}

	s := gin.New()
	routes.RegisterRoutes(s, ur, er, pr, rdb, inv)
	return serverDeps{s: s, ur: ur, er: er, pr: pr}
}

func authToken(t *testing.T, uid int64, username string, professional bool) string {
	t.Helper()
	token, err := utils.GenerateToken(uid, username, professional)
	if err != nil {
		t.Fatalf("gen token: %v", err)
	}
	return token
}

func doReq(s *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	s.ServeHTTP(w, req)
	return w
}

// addUser seeds a user directly in the mock and returns a valid token.
func (d serverDeps) addUser(t *testing.T, username string, professional bool) (models.User, string) {
	t.Helper()
	u := models.User{Username: username, Password: "pw", IsProfessional: professional}
	if err := d.ur.Create(&u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u, authToken(t, u.ID, u.Username, professional)
}

// addEvent seeds an event owned by uid.
func (d serverDeps) addEvent(t *testing.T, uid int64, title string) models.Event {
	t.Helper()
	e := models.Event{
		UserID: uid, Title: title, Date: "2026-09-12",
		Location: "Lyon", Description: "d", Category: "c",
	}
	if err := d.er.Create(&e, true); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}
