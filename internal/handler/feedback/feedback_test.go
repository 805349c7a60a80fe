package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feedback-portal/internal/api"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/model"
	"feedback-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

type fakePortal struct {
	called    bool
	author    string
	text      string
	rating    int
	submitErr error
	list      []model.Feedback
	listErr   error
}

func (f *fakePortal) SubmitFeedback(_ context.Context, author, text string, rating int) (*model.Feedback, error) {
	f.called = true
	f.author, f.text, f.rating = author, text, rating
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &model.Feedback{ID: 1, AuthorUsername: author, Text: strings.TrimSpace(text), Rating: rating}, nil
}

func (f *fakePortal) ListFeedback(context.Context) ([]model.Feedback, error) {
	return f.list, f.listErr
}

func newSubmitCtx(body string, p *model.Principal) (echo.Context, *httptest.ResponseRecorder) {
	return newSubmitCtxWithType(echo.MIMEApplicationForm, body, p)
}

func newSubmitCtxWithType(contentType, body string, p *model.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if p != nil {
		ctx.Set(middleware.ContextPrincipalKey, p)
	}
	return ctx, rec
}

var student = &model.Principal{Username: "student1", Role: model.RoleStudent}

func TestSubmitFeedbackHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtx("feedback_text=++valid+text++&rating=4", student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "student1", fp.author)
		require.Equal(t, 4, fp.rating)

		var resp api.SubmitFeedbackResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "feedback submitted successfully", resp.Message)
		require.Equal(t, "valid text", resp.Feedback.Text)
	})

	t.Run("json numeric rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtxWithType(echo.MIMEApplicationJSON, `{"feedback_text":"great","rating":4}`, student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, fp.called)
		require.Equal(t, "great", fp.text)
		require.Equal(t, 4, fp.rating)
	})

	t.Run("json string rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtxWithType(echo.MIMEApplicationJSON, `{"feedback_text":"great","rating":"2"}`, student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 2, fp.rating)
	})

	t.Run("json fractional rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtxWithType(echo.MIMEApplicationJSON, `{"feedback_text":"great","rating":3.5}`, student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "whole number")
		require.False(t, fp.called)
	})

	t.Run("json missing rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtxWithType(echo.MIMEApplicationJSON, `{"feedback_text":"great"}`, student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, fp.called)
	})

	t.Run("missing rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtx("feedback_text=hi", student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, fp.called)
	})

	t.Run("non numeric rating", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtx("feedback_text=hi&rating=great", student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "whole number")
		require.False(t, fp.called)
	})

	t.Run("validation error passes reason through", func(t *testing.T) {
		fp := &fakePortal{submitErr: &service.ValidationError{Reason: "rating must be between 1 and 5"}}
		ctx, rec := newSubmitCtx("feedback_text=hi&rating=9", student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"message":"rating must be between 1 and 5"}`, rec.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		fp := &fakePortal{submitErr: errors.New("SubmitFeedback: disk I/O")}
		ctx, rec := newSubmitCtx("feedback_text=hi&rating=3", student)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "disk")
	})

	t.Run("no principal", func(t *testing.T) {
		fp := &fakePortal{}
		ctx, rec := newSubmitCtx("feedback_text=hi&rating=3", nil)
		require.NoError(t, SubmitFeedbackHandler(fp, zap.NewNop())(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, fp.called)
	})
}

func TestListFeedbackHandler(t *testing.T) {
	e := echo.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/feedback", nil), rec)
		require.NoError(t, ListFeedbackHandler(&fakePortal{list: []model.Feedback{}}, zap.NewNop())(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"feedback":[],"total":0}`, rec.Body.String())
	})

	t.Run("ordered", func(t *testing.T) {
		list := []model.Feedback{
			{ID: 2, AuthorUsername: "bob", Text: "later", Rating: 5, SubmittedAt: now},
			{ID: 1, AuthorUsername: "student1", Text: "earlier", Rating: 2, SubmittedAt: now.Add(-time.Hour)},
		}
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/feedback", nil), rec)
		require.NoError(t, ListFeedbackHandler(&fakePortal{list: list}, zap.NewNop())(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.FeedbackListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Total)
		require.Equal(t, int64(2), resp.Feedback[0].ID)
		require.Equal(t, "bob", resp.Feedback[0].Author)
		require.Equal(t, int64(1), resp.Feedback[1].ID)
	})

	t.Run("storage error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/feedback", nil), rec)
		require.NoError(t, ListFeedbackHandler(&fakePortal{listErr: errors.New("corrupt")}, zap.NewNop())(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "error loading feedback")
	})
}
