package api

// 空密碼不在此攔截，交由驗證流程回傳與密碼錯誤相同的結果
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required" example:"student1"`
	Password string `form:"password" json:"password" example:"password123"`
}
