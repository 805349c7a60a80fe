package store

import (
	"context"
	"fmt"

	"feedback-portal/internal/database"
	"feedback-portal/internal/model"
)

// GetUserByUsername 以完全相符（區分大小寫）的 username 查詢使用者
// 查無資料時回傳包裝後的 pgx.ErrNoRows
func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, role
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&role,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	u.Role = model.Role(role)
	return u, nil
}

// InsertUserIfAbsent 新增使用者；username 已存在時不做任何變更
// 回傳值表示是否真的寫入了一筆新資料
func InsertUserIfAbsent(ctx context.Context, db database.DB, u *model.User) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING`,
		u.Username,
		u.PasswordHash,
		string(u.Role),
	)
	if err != nil {
		return false, fmt.Errorf("InsertUserIfAbsent: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
