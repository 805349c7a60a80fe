package api

// swagger:model api.MeResponse
type MeResponse struct {
	Username string `json:"username" example:"student1"`
	Role     string `json:"role" example:"student"`
}
