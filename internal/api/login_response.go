package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	Username    string    `json:"username" example:"student1"`
	Role        string    `json:"role" example:"student"`
	AccessToken string    `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time `json:"expires_at" example:"2025-05-09T15:04:05Z07:00"`
	// 依角色導向的頁面：admin → /admin，student → /feedback
	Redirect string `json:"redirect" example:"/feedback"`
}
