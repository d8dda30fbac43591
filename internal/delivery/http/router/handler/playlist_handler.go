package handler

import (
	"context"
	"log/slog"
	"net/http"

	"mediahub/internal/delivery/http/response"
	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaylistHandlerParams holds dependencies for PlaylistHandler, injected by Fx.
type PlaylistHandlerParams struct {
	fx.In

	PlaylistUC usecase.PlaylistUsecase
	Logger     *slog.Logger
}

type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
	logger     *slog.Logger
}

func NewPlaylistHandler(params PlaylistHandlerParams) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUC: params.PlaylistUC,
		logger:     params.Logger,
	}
}

type PlaylistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.Create(c.Request().Context(), ownerID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// ListMine returns the caller's playlists.
func (h *PlaylistHandler) ListMine(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	playlists, err := h.playlistUC.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.Get(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) Update(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.Update(c.Request().Context(), actorID, playlistID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlistUC.Delete(c.Request().Context(), actorID, playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	playlist, err := h.changeVideos(c, h.playlistUC.AddVideo)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, playlist, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	playlist, err := h.changeVideos(c, h.playlistUC.RemoveVideo)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, playlist, "Video removed from playlist")
}

type playlistVideoChange func(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)

// changeVideos reads :videoId and :playlistId and applies change on behalf of the caller.
func (h *PlaylistHandler) changeVideos(c echo.Context, change playlistVideoChange) (*entity.Playlist, error) {
	actorID, err := callerID(c)
	if err != nil {
		return nil, err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return nil, err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return nil, err
	}

	playlist, err := change(c.Request().Context(), actorID, playlistID, videoID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return playlist, nil
}
