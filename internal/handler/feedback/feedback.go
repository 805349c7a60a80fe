package feedback

import (
	"context"
	"errors"
	"net/http"

	"feedback-portal/internal/api"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/model"
	"feedback-portal/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Submitter interface {
	SubmitFeedback(ctx context.Context, author, text string, rating int) (*model.Feedback, error)
}

type Lister interface {
	ListFeedback(ctx context.Context) ([]model.Feedback, error)
}

func toResponse(f model.Feedback) api.FeedbackResponse {
	return api.FeedbackResponse{
		ID:          f.ID,
		Author:      f.AuthorUsername,
		Text:        f.Text,
		Rating:      f.Rating,
		SubmittedAt: f.SubmittedAt,
	}
}

// SubmitFeedbackHandler 學生提交回饋
// @Summary     Submit feedback
// @Description 內容去除前後空白後不可為空，評分須為 1 到 5 的整數
// @Tags        feedback
// @Accept      application/x-www-form-urlencoded,json
// @Produce     json
// @Param       feedback_text formData string true "回饋內容"
// @Param       rating        formData int    true "評分 (1-5)"
// @Success     201 {object} api.SubmitFeedbackResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /feedback [post]
func SubmitFeedbackHandler(s Submitter, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SubmitFeedbackRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "rating is required"})
		}

		p := middleware.PrincipalFrom(c)
		if p == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "login required"})
		}

		rating, err := service.ParseRating(string(req.Rating))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		f, err := s.SubmitFeedback(c.Request().Context(), p.Username, req.FeedbackText, rating)
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: ve.Reason})
		case err != nil:
			logger.Error("submit feedback failed", zap.String("author", p.Username), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error submitting feedback"})
		}

		return c.JSON(http.StatusCreated, api.SubmitFeedbackResponse{
			Message:  "feedback submitted successfully",
			Feedback: toResponse(*f),
		})
	}
}

// ListFeedbackHandler 管理員檢視所有回饋
// @Summary     List all feedback
// @Description 依提交時間由新到舊排列
// @Tags        feedback
// @Produce     json
// @Success     200 {object} api.FeedbackListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /feedback [get]
func ListFeedbackHandler(l Lister, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := l.ListFeedback(c.Request().Context())
		if err != nil {
			logger.Error("list feedback failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error loading feedback"})
		}

		resp := api.FeedbackListResponse{
			Feedback: make([]api.FeedbackResponse, 0, len(list)),
			Total:    len(list),
		}
		for _, f := range list {
			resp.Feedback = append(resp.Feedback, toResponse(f))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
