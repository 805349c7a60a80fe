package api

import "time"

// swagger:model api.FeedbackResponse
type FeedbackResponse struct {
	ID          int64     `json:"id" example:"1"`
	Author      string    `json:"author" example:"student1"`
	Text        string    `json:"text" example:"The labs were very helpful."`
	Rating      int       `json:"rating" example:"5"`
	SubmittedAt time.Time `json:"submitted_at" example:"2025-05-01T15:04:05Z07:00"`
}

// swagger:model api.SubmitFeedbackResponse
type SubmitFeedbackResponse struct {
	Message  string           `json:"message" example:"feedback submitted successfully"`
	Feedback FeedbackResponse `json:"feedback"`
}

// swagger:model api.FeedbackListResponse
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total" example:"1"`
}
