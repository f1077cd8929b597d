package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"transit/internal/delivery/http/response"
	"transit/internal/domain/entity"
	"transit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback and reply handlers.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	replyUC    usecase.ReplyUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(feedbackUC usecase.FeedbackUsecase, replyUC usecase.ReplyUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: feedbackUC,
		replyUC:    replyUC,
		logger:     logger,
	}
}

// CreateFeedbackRequest is the payload for filing feedback.
type CreateFeedbackRequest struct {
	Username    string `json:"username" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Bug Suggestion Question Other"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Rating      int    `json:"rating" validate:"gte=0,lte=5"`
}

// PostReplyRequest is the payload for replying to a feedback thread.
type PostReplyRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content"`
}

// CreateFeedback files a new feedback entry for the caller.
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var input CreateFeedbackRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.CreateFeedback(c.Request().Context(), usecase.CreateFeedbackInput{
		UserID:      userID,
		Username:    input.Username,
		Type:        entity.FeedbackType(input.Type),
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback created successfully")
}

// ListFeedback returns the caller's own feedback entries.
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.ListFeedbackByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Feedback retrieved successfully")
}

// ListAllFeedback returns every feedback entry with pagination, newest first.
func (h *FeedbackHandler) ListAllFeedback(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	feedback, err := h.feedbackUC.ListAllFeedback(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Feedback retrieved successfully")
}

// GetFeedback returns one feedback entry.
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	id, err := h.getFeedbackID(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackUC.GetFeedback(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Feedback retrieved successfully")
}

// DeleteFeedback removes a feedback entry and its replies.
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	id, err := h.getFeedbackID(c)
	if err != nil {
		return err
	}

	if err := h.feedbackUC.DeleteFeedback(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feedback deleted successfully")
}

// ListReplies returns the reply thread for a feedback entry.
func (h *FeedbackHandler) ListReplies(c echo.Context) error {
	id, err := h.getFeedbackID(c)
	if err != nil {
		return err
	}

	replies, err := h.replyUC.ListReplies(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, replies, "Replies retrieved successfully")
}

// PostReply appends a reply to a feedback thread.
func (h *FeedbackHandler) PostReply(c echo.Context) error {
	id, err := h.getFeedbackID(c)
	if err != nil {
		return err
	}

	var input PostReplyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	thread, err := h.replyUC.PostReply(c.Request().Context(), id, input.Author, input.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, thread, "Reply posted successfully")
}

// DeleteReply removes a reply from a feedback thread.
func (h *FeedbackHandler) DeleteReply(c echo.Context) error {
	id, err := h.getFeedbackID(c)
	if err != nil {
		return err
	}

	thread, err := h.replyUC.DeleteReply(c.Request().Context(), id, c.Param("replyId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "Reply deleted successfully")
}

func (h *FeedbackHandler) getFeedbackID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_FEEDBACK_ID", "Feedback ID must be a UUID")
	}

	return id, nil
}

// getUserID extracts the user ID from the context
func (h *FeedbackHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
