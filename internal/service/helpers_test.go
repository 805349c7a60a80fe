package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"feedback-portal/internal/database"
	"feedback-portal/internal/model"
	"feedback-portal/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	getUserByUsername = store.GetUserByUsername
	insertUserIfAbsent = store.InsertUserIfAbsent
	createFeedback = store.CreateFeedback
	listFeedback = store.ListFeedback
}

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// fastHashing 讓測試使用最低 cost，避免 bcrypt 拖慢測試
func fastHashing() {
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
}

// memStore 以記憶體模擬 users 與 feedback 兩張表，並替換 store 函式
type memStore struct {
	mu       sync.Mutex
	users    map[string]model.User
	feedback []model.Feedback
	nextID   int64
	clock    func() time.Time
}

func newMemStore() *memStore {
	return &memStore{users: map[string]model.User{}, clock: time.Now}
}

func (m *memStore) install() {
	getUserByUsername = func(_ context.Context, _ database.DB, username string) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		u, ok := m.users[username]
		if !ok {
			return nil, fmt.Errorf("GetUserByUsername: %w", pgx.ErrNoRows)
		}
		return &u, nil
	}
	insertUserIfAbsent = func(_ context.Context, _ database.DB, u *model.User) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.users[u.Username]; ok {
			return false, nil
		}
		u.ID = len(m.users) + 1
		m.users[u.Username] = *u
		return true, nil
	}
	createFeedback = func(_ context.Context, _ database.DB, f *model.Feedback) (*model.Feedback, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.nextID++
		f.ID = m.nextID
		f.SubmittedAt = m.clock()
		m.feedback = append(m.feedback, *f)
		return f, nil
	}
	listFeedback = func(_ context.Context, _ database.DB) ([]model.Feedback, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := append([]model.Feedback{}, m.feedback...)
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
				return out[i].SubmittedAt.After(out[j].SubmittedAt)
			}
			return out[i].ID > out[j].ID
		})
		return out, nil
	}
}
