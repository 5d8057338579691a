// Package stub implements a self-contained, in-memory rendition of the
// remote session service. It exists so the client can be developed and tested
// end-to-end without the real backend: same routes, same payloads, same
// rejection codes. Nothing here persists past the process.
package stub

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// Account is a registered user plus its password hash. The hash never leaves
// the store.
type Account struct {
	domain.User
	PasswordHash string
}

// Store holds all stub state behind one mutex. Every accessor returns copies
// so handlers can never mutate shared state outside the lock.
type Store struct {
	mu          sync.Mutex
	accounts    map[int64]*Account
	sessions    map[int64]*domain.Session
	teachers    map[int64]domain.Teacher
	nextAccount int64
	nextSession int64
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]*Account),
		sessions: make(map[int64]*domain.Session),
		teachers: make(map[int64]domain.Teacher),
	}
}

// Seed loads the fixture data the development server starts with: two
// teachers, an admin account, a regular account, and one upcoming session.
func (s *Store) Seed() error {
	now := time.Now().UTC()

	s.mu.Lock()
	s.teachers[1] = domain.Teacher{ID: 1, FirstName: "Margot", LastName: "Delahaye", CreatedAt: now, UpdatedAt: now}
	s.teachers[2] = domain.Teacher{ID: 2, FirstName: "Helene", LastName: "Thiercelin", CreatedAt: now, UpdatedAt: now}
	s.mu.Unlock()

	if _, err := s.CreateAccount("admin@studio.test", "Admin", "Admin", "admin123", true); err != nil {
		return err
	}
	if _, err := s.CreateAccount("user@studio.test", "Sam", "Lee", "password123", false); err != nil {
		return err
	}

	s.CreateSession(ports.SessionInput{
		Name:        "Morning Flow",
		Date:        now.Add(72 * time.Hour).Truncate(time.Hour),
		TeacherID:   1,
		Description: "A gentle session to start the day.",
	})
	return nil
}

// Authenticate checks credentials and returns the matching account.
func (s *Store) Authenticate(email, password string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Email == email {
			if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
				return nil, domain.ErrUnauthenticated
			}
			clone := *acc
			return &clone, nil
		}
	}
	return nil, domain.ErrUnauthenticated
}

// CreateAccount registers a new account. The email must be unused.
func (s *Store) CreateAccount(email, firstName, lastName, password string, admin bool) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Email == email {
			return nil, domain.ErrConflict
		}
	}

	s.nextAccount++
	now := time.Now().UTC()
	acc := &Account{
		User: domain.User{
			ID:        s.nextAccount,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Admin:     admin,
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: string(hash),
	}
	s.accounts[acc.ID] = acc
	clone := *acc
	return &clone, nil
}

func (s *Store) GetAccount(id int64) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *acc
	return &clone, nil
}

func (s *Store) DeleteAccount(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

// ListSessions returns all sessions ordered by id.
func (s *Store) ListSessions() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, cloneSession(session))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetSession(id int64) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := cloneSession(session)
	return &clone, nil
}

func (s *Store) CreateSession(in ports.SessionInput) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSession++
	now := time.Now().UTC()
	session := &domain.Session{
		ID:          s.nextSession,
		Name:        in.Name,
		Date:        in.Date,
		TeacherID:   in.TeacherID,
		Description: in.Description,
		Users:       []int64{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.sessions[session.ID] = session
	return cloneSession(session)
}

func (s *Store) UpdateSession(id int64, in ports.SessionInput) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	session.Name = in.Name
	session.Date = in.Date
	session.TeacherID = in.TeacherID
	session.Description = in.Description
	session.UpdatedAt = time.Now().UTC()
	clone := cloneSession(session)
	return &clone, nil
}

func (s *Store) DeleteSession(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Participate adds a user to a session's participant list. A duplicate join
// is rejected with a conflict, matching the remote service's behaviour.
func (s *Store) Participate(sessionID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.accounts[userID]; !ok {
		return domain.ErrNotFound
	}
	if session.HasParticipant(userID) {
		return domain.ErrConflict
	}
	session.Users = append(session.Users, userID)
	session.UpdatedAt = time.Now().UTC()
	return nil
}

// Unparticipate removes a user from a session's participant list. Leaving a
// session the user never joined is a conflict, not a no-op.
func (s *Store) Unparticipate(sessionID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	for i, id := range session.Users {
		if id == userID {
			session.Users = append(session.Users[:i], session.Users[i+1:]...)
			session.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return domain.ErrConflict
}

func (s *Store) ListTeachers() []domain.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetTeacher(id int64) (*domain.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teachers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func cloneSession(s *domain.Session) domain.Session {
	clone := *s
	clone.Users = append([]int64(nil), s.Users...)
	return clone
}
