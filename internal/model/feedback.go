// File: internal/model/feedback.go
package model

import "time"

type Feedback struct {
	ID             int64     `db:"id" json:"id"`
	AuthorUsername string    `db:"student_username" json:"author"`
	Text           string    `db:"feedback_text" json:"text"`
	Rating         int       `db:"rating" json:"rating"`
	SubmittedAt    time.Time `db:"submission_date" json:"submitted_at"`
}
