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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	RelationUC usecase.RelationUsecase
	ChannelUC  usecase.ChannelUsecase
	Logger     *slog.Logger
}

type SubscriptionHandler struct {
	relationUC usecase.RelationUsecase
	channelUC  usecase.ChannelUsecase
	logger     *slog.Logger
}

func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		relationUC: params.RelationUC,
		channelUC:  params.ChannelUC,
		logger:     params.Logger,
	}
}

// QRSubscribeRequest carries the decoded content of a channel QR code.
type QRSubscribeRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// Toggle subscribes the caller to :channelId, or unsubscribes if already subscribed.
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	output, err := h.relationUC.Toggle(c.Request().Context(), &usecase.ToggleInput{
		ActorID:  actorID,
		TargetID: channelID,
		Kind:     entity.RelationSubscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Unsubscribed from channel"
	if output.Created {
		message = "Subscribed to channel successfully"
	}

	return response.Success(c, http.StatusOK, output, message)
}

func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.channelUC.Subscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	subscriberID, err := pathUUID(c, "subscriberId")
	if err != nil {
		return err
	}

	channels, err := h.channelUC.SubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}

// ChannelQR renders a PNG that subscribes whoever scans it to the caller's channel.
func (h *SubscriptionHandler) ChannelQR(c echo.Context) error {
	channelID, err := callerID(c)
	if err != nil {
		return err
	}

	png, err := h.relationUC.GenerateChannelQR(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=channel-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// SubscribeByQR makes sure the caller is subscribed to the channel in the QR payload.
func (h *SubscriptionHandler) SubscribeByQR(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	var req QRSubscribeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.relationUC.SubscribeByQR(c.Request().Context(), actorID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Already subscribed to channel"
	if output.Created {
		message = "Subscribed via QR code successfully"
	}

	return response.Success(c, http.StatusOK, output, message)
}
