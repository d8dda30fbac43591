package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/delivery/http/response"
	"mediahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Logger   *slog.Logger
}

type HealthHandler struct {
	healthUC usecase.HealthUsecase
	logger   *slog.Logger
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		healthUC: params.HealthUC,
		logger:   params.Logger,
	}
}

type healthStatus struct {
	Status string `json:"status"`
}

// Check reports OK when the store answers a ping.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.healthUC.Check(c.Request().Context()); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "Service Unavailable")
	}

	return response.Success(c, http.StatusOK, healthStatus{Status: "OK"}, "Health check passed")
}
