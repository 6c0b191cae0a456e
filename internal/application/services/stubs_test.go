package services_test

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/medicare-app/backend/internal/domain/entities"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

type stubClassifier struct {
	prediction entities.Prediction
	err        error
	lastVector []float64
	schema     []string
}

func (c *stubClassifier) Predict(vector []float64) (entities.Prediction, error) {
	c.lastVector = vector
	if c.err != nil {
		return entities.Prediction{}, c.err
	}
	return c.prediction, nil
}

func (c *stubClassifier) Schema() []string  { return c.schema }
func (c *stubClassifier) Classes() []string { return []string{c.prediction.Label} }

type stubSummaries struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummaries) Summarize(ctx context.Context, label string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

type stubHistoryRepo struct {
	records []*entities.HistoryRecord
	nextID  int64
	err     error
}

func (r *stubHistoryRepo) Create(ctx context.Context, record *entities.HistoryRecord) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, record)
	return r.nextID, nil
}

func (r *stubHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.HistoryRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entities.HistoryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[key], nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok, nil
}

func (c *memoryCache) Increment(ctx context.Context, key string, expirationSeconds int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, _ := strconv.ParseInt(string(c.items[key]), 10, 64)
	count++
	c.items[key] = []byte(strconv.FormatInt(count, 10))
	return count, nil
}

type stubUserRepo struct {
	byUsername map[string]*entities.User
	createErr  error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: map[string]*entities.User{}}
}

func (r *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return apperrors.NewConflictError("username " + user.Username + " already exists")
	}
	r.byUsername[user.Username] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	for _, user := range r.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if user, ok := r.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	return nil
}

type stubMail struct {
	sent []string
	err  error
}

func (m *stubMail) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, body)
	return nil
}

type stubSearch struct {
	results []entities.Symptom
	err     error
	indexed []entities.Symptom
}

func (s *stubSearch) IndexCatalog(ctx context.Context, symptoms []entities.Symptom) error {
	s.indexed = symptoms
	return nil
}

func (s *stubSearch) Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

var errStubFailure = errors.New("stub failure")
