// File: internal/model/user.go
package model

// Role 使用者的存取類別
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid 回報 r 是否為兩種合法角色之一
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID           int    `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         Role   `db:"role" json:"role"`
}

// Principal 是驗證成功後的身分，也是 session 與 token 的內容
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
