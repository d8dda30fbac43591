package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mediahub/internal/delivery/http/response"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Logger  *slog.Logger
}

type VideoHandler struct {
	videoUC usecase.VideoUsecase
	logger  *slog.Logger
}

func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		logger:  params.Logger,
	}
}

// List returns published videos. Query: page, limit, query, sortBy, sortType, userId.
func (h *VideoHandler) List(c echo.Context) error {
	filter, err := videoFilterFrom(c)
	if err != nil {
		return err
	}

	result, err := h.videoUC.ListPublished(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Videos fetched successfully")
}

func videoFilterFrom(c echo.Context) (entity.VideoFilter, error) {
	filter := entity.VideoFilter{
		Query:  strings.TrimSpace(c.QueryParam("query")),
		SortBy: entity.VideoSortCreatedAt,
		Page:   pageQuery(c),
	}

	switch sortBy := entity.VideoSortField(c.QueryParam("sortBy")); sortBy {
	case "":
	case entity.VideoSortCreatedAt, entity.VideoSortViews, entity.VideoSortTitle:
		filter.SortBy = sortBy
	default:
		return filter, domainerrors.ErrValidationFailed.WithMessage("Invalid sortBy")
	}

	switch strings.ToLower(c.QueryParam("sortType")) {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		return filter, domainerrors.ErrValidationFailed.WithMessage("Invalid sortType")
	}

	if raw := c.QueryParam("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithMessage("Invalid userId")
		}
		filter.OwnerID = &ownerID
	}

	return filter, nil
}

// Publish accepts a multipart form with title, description, video and thumbnail.
func (h *VideoHandler) Publish(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	videoFile, closeVideo, err := formUpload(c, "video")
	if err != nil {
		return err
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := formUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closeThumbnail()

	video, err := h.videoUC.Publish(c.Request().Context(), &usecase.PublishVideoInput{
		OwnerID:     ownerID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video published successfully")
}

// Get returns a video and counts the view.
func (h *VideoHandler) Get(c echo.Context) error {
	viewerID, err := callerID(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.Watch(c.Request().Context(), viewerID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video fetched successfully")
}

// UpdateVideoRequest is the JSON form of a video update. Absent fields stay unchanged.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Update changes the fields present in the form or JSON body. A thumbnail file replaces the current one.
func (h *VideoHandler) Update(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	input := &usecase.UpdateVideoInput{ActorID: actorID, VideoID: videoID}
	if err := bindVideoDetails(c, input); err != nil {
		return err
	}

	thumbnail, closeThumbnail, err := formUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closeThumbnail()
	input.Thumbnail = thumbnail

	video, err := h.videoUC.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.videoUC.Delete(c.Request().Context(), actorID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), actorID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}

	return response.Success(c, http.StatusOK, video, fmt.Sprintf("Video %s successfully", state))
}

func bindVideoDetails(c echo.Context, input *usecase.UpdateVideoInput) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var req UpdateVideoRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WithMessage("Invalid video input")
		}
		input.Title, input.Description = req.Title, req.Description

		return nil
	}

	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid video input")
	}
	if form.Has("title") {
		title := form.Get("title")
		input.Title = &title
	}
	if form.Has("description") {
		description := form.Get("description")
		input.Description = &description
	}

	return nil
}
