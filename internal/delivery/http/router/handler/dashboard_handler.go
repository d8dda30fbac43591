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

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	ChannelUC usecase.ChannelUsecase
	Logger    *slog.Logger
}

// DashboardHandler serves the caller's own channel numbers.
type DashboardHandler struct {
	channelUC usecase.ChannelUsecase
	logger    *slog.Logger
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		channelUC: params.ChannelUC,
		logger:    params.Logger,
	}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	stats, err := h.channelUC.Stats(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

func (h *DashboardHandler) Videos(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	videos, err := h.channelUC.Videos(c.Request().Context(), ownerID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
