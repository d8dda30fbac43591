package handler

import (
	"log/slog"
	"net/http"

	"mediahub/internal/delivery/http/response"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *CommentHandler) List(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	result, err := h.commentUC.ListByVideo(c.Request().Context(), videoID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.Add(c.Request().Context(), actorID, videoID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.Update(c.Request().Context(), actorID, commentID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.commentUC.Delete(c.Request().Context(), actorID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
