package store

import (
	"time"

	"feedback-portal/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 模擬 GetUserByUsername 的單筆掃描
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Username
	*dest[2].(*string) = u.PasswordHash
	*dest[3].(*string) = string(u.Role)
	return nil
}

// fakeInsertRow 模擬 CreateFeedback 的 RETURNING id, submission_date
type fakeInsertRow struct {
	scanErr error
	id      int64
	at      time.Time
}

func (r *fakeInsertRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*time.Time) = r.at
	return nil
}

// fakeFeedbackRows 實作 pgx.Rows，用於模擬多筆掃描
type fakeFeedbackRows struct {
	data    []model.Feedback
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeFeedbackRows) Close()                                       { r.closed = true }
func (r *fakeFeedbackRows) Err() error                                   { return r.err }
func (r *fakeFeedbackRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeFeedbackRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeFeedbackRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeFeedbackRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	f := r.data[r.idx]
	r.idx++
	*dest[0].(*int64) = f.ID
	*dest[1].(*string) = f.AuthorUsername
	*dest[2].(*string) = f.Text
	*dest[3].(*int) = f.Rating
	*dest[4].(*time.Time) = f.SubmittedAt
	return nil
}
func (r *fakeFeedbackRows) Values() ([]any, error) { return nil, nil }
func (r *fakeFeedbackRows) RawValues() [][]byte    { return nil }
func (r *fakeFeedbackRows) Conn() *pgx.Conn        { return nil }
