package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetJWTExpiry() time.Duration      { return time.Hour }
func (fakeConfig) GetCookieExpiry() time.Duration   { return 24 * time.Hour }
func (fakeConfig) GetDoctorCacheTTL() time.Duration { return time.Minute }

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// userStore is an in-memory IUserRepository with a unique email constraint.
type userStore struct {
	mu      sync.Mutex
	byID    map[string]entity.User
	updates int

	ShouldFailCreate bool
	SkipEmailLookup  bool
}

var _ contract.IUserRepository = (*userStore)(nil)

func newUserStore() *userStore {
	return &userStore{byID: make(map[string]entity.User)}
}

func (s *userStore) CreateUser(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFailCreate {
		return errors.New("insert failed")
	}
	for _, u := range s.byID {
		if u.Email == user.Email {
			return &entity.AppError{Kind: entity.KindConflict, Message: "duplicate key"}
		}
	}
	s.byID[user.ID] = *user
	return nil
}

func (s *userStore) get(pred func(entity.User) bool, withPassword bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if pred(u) {
			if !withPassword {
				u.Password = ""
			}
			return &u, nil
		}
	}
	return nil, entity.NewNotFoundError("user not found")
}

func (s *userStore) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return s.get(func(u entity.User) bool { return u.ID == id }, false)
}

func (s *userStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.SkipEmailLookup {
		return nil, entity.NewNotFoundError("user not found")
	}
	return s.get(func(u entity.User) bool { return u.Email == email }, false)
}

func (s *userStore) GetUserWithPassword(ctx context.Context, email string) (*entity.User, error) {
	return s.get(func(u entity.User) bool { return u.Email == email }, true)
}

func (s *userStore) GetUserWithPasswordByID(ctx context.Context, id string) (*entity.User, error) {
	return s.get(func(u entity.User) bool { return u.ID == id }, true)
}

func (s *userStore) FindUsers(ctx context.Context, filter contract.UserFilter) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.User
	for _, u := range s.byID {
		if filter.Role != "" && u.Role != filter.Role ||
			filter.FirstName != "" && u.FirstName != filter.FirstName ||
			filter.LastName != "" && u.LastName != filter.LastName ||
			filter.Department != "" && u.DoctorDepartment != filter.Department {
			continue
		}
		u := u
		u.Password = ""
		out = append(out, &u)
	}
	return out, nil
}

func (s *userStore) UpdateUser(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[user.ID]; !ok {
		return entity.NewNotFoundError("user not found")
	}
	s.byID[user.ID] = *user
	s.updates++
	return nil
}

func (s *userStore) stored(id string) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id]
}

type tokenStore struct {
	mu      sync.Mutex
	revoked map[string]entity.RevokedToken
}

func newTokenStore() *tokenStore {
	return &tokenStore{revoked: make(map[string]entity.RevokedToken)}
}

func (s *tokenStore) RevokeToken(ctx context.Context, token *entity.RevokedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token.TokenHash] = *token
	return nil
}

func (s *tokenStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenHash]
	return ok, nil
}

type fakeAvatarStore struct {
	keys []string
	err  error
}

func (s *fakeAvatarStore) Upload(ctx context.Context, key string, body io.Reader) (*entity.DocAvatar, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, err := io.ReadAll(body); err != nil {
		return nil, err
	}
	s.keys = append(s.keys, key)
	return &entity.DocAvatar{PublicID: key, URL: "https://cdn.example.com/" + key}, nil
}

type fakeDoctorCache struct {
	doctors     []*entity.User
	cached      bool
	invalidated int
	sets        int
}

func (c *fakeDoctorCache) GetDoctors(ctx context.Context) ([]*entity.User, bool, error) {
	return c.doctors, c.cached, nil
}

func (c *fakeDoctorCache) SetDoctors(ctx context.Context, doctors []*entity.User) error {
	c.doctors, c.cached = doctors, true
	c.sets++
	return nil
}

func (c *fakeDoctorCache) InvalidateDoctors(ctx context.Context) error {
	c.doctors, c.cached = nil, false
	c.invalidated++
	return nil
}

type appointmentStore struct {
	byID map[string]entity.Appointment
}

func newAppointmentStore() *appointmentStore {
	return &appointmentStore{byID: make(map[string]entity.Appointment)}
}

func (s *appointmentStore) CreateAppointment(ctx context.Context, a *entity.Appointment) error {
	s.byID[a.ID] = *a
	return nil
}

func (s *appointmentStore) GetAppointmentByID(ctx context.Context, id string) (*entity.Appointment, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, entity.NewNotFoundError("appointment not found")
	}
	return &a, nil
}

func (s *appointmentStore) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, 0, len(s.byID))
	for _, a := range s.byID {
		a := a
		out = append(out, &a)
	}
	return out, nil
}

func (s *appointmentStore) UpdateAppointment(ctx context.Context, id string, update contract.AppointmentUpdate) (*entity.Appointment, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, entity.NewNotFoundError("appointment not found")
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.HasVisited != nil {
		a.HasVisited = *update.HasVisited
	}
	s.byID[id] = a
	return &a, nil
}

func (s *appointmentStore) DeleteAppointment(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return entity.NewNotFoundError("appointment not found")
	}
	delete(s.byID, id)
	return nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

type messageStore struct {
	messages []*entity.Message
}

func (s *messageStore) CreateMessage(ctx context.Context, m *entity.Message) error {
	s.messages = append(s.messages, m)
	return nil
}

func (s *messageStore) ListMessages(ctx context.Context) ([]*entity.Message, error) {
	return s.messages, nil
}
