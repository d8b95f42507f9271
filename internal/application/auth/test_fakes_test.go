package auth

import (
	"context"
	"sync"
	"time"

	"github.com/baechuer/blog-api/internal/domain"
)

// fakeUserRepo is an in-memory UserRepo for service tests.
type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]domain.User
	byEmail map[string]string // email -> id

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]string{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u.ID
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) BlockUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.Blocked = true
	u.UpdatedAt = time.Now()
	f.byID[id] = u
	return nil
}

// fakeHasher marks hashes with a prefix so tests can assert hashing happened.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plain, nil
}

func (f *fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return domain.ErrInvalidCredentials()
	}
	return nil
}

// fakeSigner issues inspectable tokens of the form "tok|userID|role".
type fakeSigner struct {
	signErr error
}

func (f *fakeSigner) SignAccessToken(userID, role string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return "tok|" + userID + "|" + role, nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	return TokenClaims{}, domain.ErrTokenInvalid()
}

// fakePublisher records published events.
type fakePublisher struct {
	mu         sync.Mutex
	registered []UserRegisteredEvent
	blocked    []UserBlockedEvent
	err        error
}

func (f *fakePublisher) PublishUserRegistered(_ context.Context, ev UserRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, ev)
	return nil
}

func (f *fakePublisher) PublishUserBlocked(_ context.Context, ev UserBlockedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.blocked = append(f.blocked, ev)
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakePublisher) {
	users := newFakeUserRepo()
	pub := &fakePublisher{}
	svc := NewService(users, &fakeHasher{}, &fakeSigner{}, pub, Config{AccessTTL: time.Hour})
	return svc, users, pub
}
