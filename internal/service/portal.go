// File: internal/service/portal.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"feedback-portal/internal/database"
	"feedback-portal/internal/model"
	"feedback-portal/internal/store"

	"github.com/jackc/pgx/v5"
)

const (
	MinRating = 1
	MaxRating = 5
)

// SeedUser 是啟動時建立的預設帳號
type SeedUser struct {
	Username string
	Password string
	Role     model.Role
}

// DefaultUsers 預設的學生與管理員帳號
var DefaultUsers = []SeedUser{
	{Username: "student1", Password: "password123", Role: model.RoleStudent},
	{Username: "admin", Password: "admin123", Role: model.RoleAdmin},
}

// 以下變數為測試替換點
var (
	getUserByUsername  = store.GetUserByUsername
	insertUserIfAbsent = store.InsertUserIfAbsent
	createFeedback     = store.CreateFeedback
	listFeedback       = store.ListFeedback
)

// Portal 組合帳號與回饋兩個 store，是 handler 唯一使用的資料層入口
type Portal struct {
	db    database.DB
	seeds []SeedUser
	// dummyHash 於 Initialize 建立；查無使用者時仍比對一次，讓兩種失敗耗時相近
	dummyHash string
}

// NewPortal 以啟動時建立的連線池建構 Portal，並使用 DefaultUsers 作為種子資料
func NewPortal(db database.DB) *Portal {
	return &Portal{db: db, seeds: DefaultUsers}
}

// Initialize 以 insert-if-absent 建立預設帳號，已存在的帳號與其密碼不受影響
// 資料表由 database.RunMigrations 建立，須先於此呼叫
func (p *Portal) Initialize(ctx context.Context) error {
	for _, s := range p.seeds {
		if !s.Role.Valid() {
			return fmt.Errorf("Initialize: invalid role %q for %s", s.Role, s.Username)
		}
		hash, err := HashPassword(s.Password)
		if err != nil {
			return fmt.Errorf("Initialize: hash password: %w", err)
		}
		if _, err := insertUserIfAbsent(ctx, p.db, &model.User{
			Username:     s.Username,
			PasswordHash: hash,
			Role:         s.Role,
		}); err != nil {
			return fmt.Errorf("Initialize: %w", err)
		}
	}

	dummy, err := HashPassword("not-a-real-password")
	if err != nil {
		return fmt.Errorf("Initialize: hash dummy password: %w", err)
	}
	p.dummyHash = dummy
	return nil
}

// Authenticate 驗證帳號密碼
// 帳號不存在或密碼錯誤一律回傳 (nil, nil)；只有儲存層故障才回傳 error
func (p *Portal) Authenticate(ctx context.Context, username, password string) (*model.Principal, error) {
	user, err := getUserByUsername(ctx, p.db, username)
	if errors.Is(err, pgx.ErrNoRows) {
		_ = ComparePassword(p.dummyHash, password)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil
	}
	return &model.Principal{Username: user.Username, Role: user.Role}, nil
}

// SubmitFeedback 驗證並寫入一筆回饋，內容去除前後空白後儲存
func (p *Portal) SubmitFeedback(ctx context.Context, author, text string, rating int) (*model.Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Reason: "feedback text cannot be empty"}
	}
	// PostgreSQL TEXT 不接受 NUL 與非法 UTF-8
	if !utf8.ValidString(text) || strings.ContainsRune(text, 0) {
		return nil, &ValidationError{Reason: "feedback text contains invalid characters"}
	}
	if rating < MinRating || rating > MaxRating {
		return nil, &ValidationError{Reason: "rating must be between 1 and 5"}
	}

	f, err := createFeedback(ctx, p.db, &model.Feedback{
		AuthorUsername: author,
		Text:           text,
		Rating:         rating,
	})
	if err != nil {
		return nil, fmt.Errorf("SubmitFeedback: %w", err)
	}
	return f, nil
}

// ListFeedback 回傳所有回饋，最新的在前；沒有資料時回傳空 slice
func (p *Portal) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	list, err := listFeedback(ctx, p.db)
	if err != nil {
		return nil, fmt.Errorf("ListFeedback: %w", err)
	}
	return list, nil
}

// ParseRating 將表單上的評分字串轉為整數，非數字視為 ValidationError
func ParseRating(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Reason: "rating must be a whole number between 1 and 5"}
	}
	return n, nil
}
