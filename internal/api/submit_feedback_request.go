package api

// Rating 可為 JSON 數字或字串，非整數由 service.ParseRating 回報為驗證錯誤
// swagger:model api.SubmitFeedbackRequest
type SubmitFeedbackRequest struct {
	FeedbackText string      `form:"feedback_text" json:"feedback_text" example:"The labs were very helpful."`
	Rating       RatingInput `form:"rating" json:"rating" validate:"required" swaggertype:"integer" example:"5"`
}
