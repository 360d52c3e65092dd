package impl

import (
	"context"
	"sync"
	"time"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory collaborators for service tests. They mirror the behavior of the
// real implementations closely enough to exercise the business rules,
// including the unique-email guarantee of the persistence layer.

type fakeUserRepo struct {
	mu               sync.Mutex
	users            map[uuid.UUID]*entity.User
	findAllCalls     int
	failOnFindByMail error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failOnFindByMail != nil {
		return nil, r.failOnFindByMail
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAllProviders(_ context.Context, exceptID uuid.UUID) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findAllCalls++

	providers := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		if user.ID == exceptID {
			continue
		}
		cloned := *user
		providers = append(providers, &cloned)
	}

	return providers, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email address is already registered")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, existing := range r.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email address is already registered")
		}
	}

	user.UpdatedAt = time.Now()
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) mustCreate(t interface{ Fatalf(string, ...any) }, name, email, passwordHash string) *entity.User {
	user := &entity.User{Name: name, Email: email, PasswordHash: passwordHash}
	if err := r.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}

	return user
}

type fakeUserTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*entity.UserToken
}

func newFakeUserTokenRepo() *fakeUserTokenRepo {
	return &fakeUserTokenRepo{tokens: make(map[uuid.UUID]*entity.UserToken)}
}

func (r *fakeUserTokenRepo) Generate(_ context.Context, userID uuid.UUID) (*entity.UserToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := &entity.UserToken{
		ID:        uuid.New(),
		Token:     uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.tokens[token.ID] = token
	cloned := *token

	return &cloned, nil
}

func (r *fakeUserTokenRepo) FindByToken(_ context.Context, token uuid.UUID) (*entity.UserToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, userToken := range r.tokens {
		if userToken.Token == token {
			cloned := *userToken

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserTokenNotFound
}

func (r *fakeUserTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[id]; !ok {
		return repository.ErrUserTokenNotFound
	}
	delete(r.tokens, id)

	return nil
}

// backdate shifts a token's creation time so expiry paths can be exercised.
func (r *fakeUserTokenRepo) backdate(id uuid.UUID, age time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.tokens[id]; ok {
		token.CreatedAt = time.Now().Add(-age)
	}
}

type fakeRepoFactory struct {
	userRepo      *fakeUserRepo
	userTokenRepo *fakeUserTokenRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) UserTokenRepo() repository.UserTokenRepository {
	return f.userTokenRepo
}

// fakeTxManager runs the callback directly against the shared fakes. The
// rollback semantics of the real manager are irrelevant to the rules under test.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func newFakeTxManager(userRepo *fakeUserRepo, tokenRepo *fakeUserTokenRepo) *fakeTxManager {
	return &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo, userTokenRepo: tokenRepo}}
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateToken(token string) (uuid.UUID, error) {
	return uuid.Parse(token[len("token-"):])
}

func (fakeTokenService) GetTokenDuration() time.Duration {
	return 24 * time.Hour
}

type fakeStorage struct {
	mu        sync.Mutex
	saved     []string
	deleted   []string
	deleteErr error
	saveErr   error
}

func (s *fakeStorage) SaveFile(_ context.Context, tempPath string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := "stored-" + tempPath
	s.saved = append(s.saved, name)

	return name, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, name string) error {
	s.mu.Lock()
	s.deleted = append(s.deleted, name)
	s.mu.Unlock()

	return s.deleteErr
}

type fakeMailProvider struct {
	mu      sync.Mutex
	sent    []*service.Mail
	sendErr error
}

func (m *fakeMailProvider) SendMail(_ context.Context, mail *service.Mail) error {
	if m.sendErr != nil {
		return m.sendErr
	}

	m.mu.Lock()
	m.sent = append(m.sent, mail)
	m.mu.Unlock()

	return nil
}

type fakeCache struct {
	mu            sync.Mutex
	items         map[string]any
	saves         int
	invalidations int
	recoverErr    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]any)}
}

func (c *fakeCache) Save(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.saves++

	return nil
}

func (c *fakeCache) Recover(_ context.Context, key string, target any) (bool, error) {
	if c.recoverErr != nil {
		return false, c.recoverErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items[key]
	if !ok {
		return false, nil
	}

	providers, ok := value.([]*entity.User)
	if !ok {
		return false, errors.New("unexpected cache value type")
	}
	targetPtr, ok := target.(*[]*entity.User)
	if !ok {
		return false, errors.New("unexpected cache target type")
	}
	*targetPtr = providers

	return true, nil
}

func (c *fakeCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.invalidations++

	return nil
}
