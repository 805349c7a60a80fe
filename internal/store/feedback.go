package store

import (
	"context"
	"fmt"

	"feedback-portal/internal/database"
	"feedback-portal/internal/model"
)

// CreateFeedback 寫入一筆回饋，id 與 submission_date 由資料庫產生
func CreateFeedback(ctx context.Context, db database.DB, f *model.Feedback) (*model.Feedback, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO feedback (student_username, feedback_text, rating)
		 VALUES ($1, $2, $3)
		 RETURNING id, submission_date`,
		f.AuthorUsername,
		f.Text,
		f.Rating,
	)
	if err := row.Scan(&f.ID, &f.SubmittedAt); err != nil {
		return nil, fmt.Errorf("CreateFeedback: %w", err)
	}
	return f, nil
}

// ListFeedback 回傳所有回饋，最新的在前；同時間者以 id 較大者在前
func ListFeedback(ctx context.Context, db database.DB) ([]model.Feedback, error) {
	rows, err := db.Query(ctx,
		`SELECT id, student_username, feedback_text, rating, submission_date
		 FROM feedback
		 ORDER BY submission_date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFeedback: %w", err)
	}
	defer rows.Close()

	list := []model.Feedback{}
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(
			&f.ID,
			&f.AuthorUsername,
			&f.Text,
			&f.Rating,
			&f.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("ListFeedback: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFeedback: %w", err)
	}
	return list, nil
}
