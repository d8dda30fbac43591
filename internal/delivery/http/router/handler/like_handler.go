package handler

import (
	"log/slog"
	"net/http"

	"mediahub/internal/delivery/http/response"
	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	RelationUC usecase.RelationUsecase
	ChannelUC  usecase.ChannelUsecase
	Logger     *slog.Logger
}

type LikeHandler struct {
	relationUC usecase.RelationUsecase
	channelUC  usecase.ChannelUsecase
	logger     *slog.Logger
}

func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		relationUC: params.RelationUC,
		channelUC:  params.ChannelUC,
		logger:     params.Logger,
	}
}

func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggle(c, "videoId", entity.RelationVideoLike)
}

func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggle(c, "commentId", entity.RelationCommentLike)
}

func (h *LikeHandler) toggle(c echo.Context, param string, kind entity.RelationKind) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	targetID, err := pathUUID(c, param)
	if err != nil {
		return err
	}

	output, err := h.relationUC.Toggle(c.Request().Context(), &usecase.ToggleInput{
		ActorID:  actorID,
		TargetID: targetID,
		Kind:     kind,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Like removed"
	if output.Created {
		message = "Liked successfully"
	}

	return response.Success(c, http.StatusOK, output, message)
}

func (h *LikeHandler) LikedVideos(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	videos, err := h.channelUC.LikedVideos(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
