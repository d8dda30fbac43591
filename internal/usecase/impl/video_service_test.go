package impl

import (
	"context"
	"testing"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type videoFixtures struct {
	service usecase.VideoUsecase
	store   *memStore
	storage *recordingStorage
}

func createTestVideoService(t *testing.T) videoFixtures {
	t.Helper()

	store := newMemStore()
	storage := &recordingStorage{ObjectStorage: newTestStorage(t)}

	srv := NewVideoService(VideoServiceParams{
		TxManager: store,
		VideoRepo: store.videoRepo(),
		Storage:   storage,
		Logger:    newDiscardLogger(),
	})

	return videoFixtures{service: srv, store: store, storage: storage}
}

func TestVideoService_Publish(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID := uuid.New()
	ctx := context.Background()

	video, err := fx.service.Publish(ctx, &usecase.PublishVideoInput{
		OwnerID:     ownerID,
		Title:       " My trip ",
		Description: "Holiday footage",
		VideoFile:   newUpload("trip.mp4"),
		Thumbnail:   newUpload("trip.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "My trip", video.Title)
	assert.True(t, video.IsPublished)
	assert.Contains(t, video.VideoFile, "/videos/")
	assert.Contains(t, video.Thumbnail, "/thumbnails/")

	_, err = fx.service.Publish(ctx, &usecase.PublishVideoInput{OwnerID: ownerID, Title: "t", Description: "d", VideoFile: newUpload("a.mp4")})
	require.ErrorIs(t, err, domainerrors.ErrVideoFilesRequired)

	_, err = fx.service.Publish(ctx, &usecase.PublishVideoInput{OwnerID: ownerID, Title: "", Description: "d"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVideoService_Watch(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID, viewerID := uuid.New(), uuid.New()
	published := seedVideo(t, fx.store, ownerID, true)
	draft := seedVideo(t, fx.store, ownerID, false)
	ctx := context.Background()

	got, err := fx.service.Watch(ctx, viewerID, published.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	history, err := fx.store.videoRepo().WatchHistory(ctx, viewerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, published.ID, history[0].ID)

	_, err = fx.service.Watch(ctx, viewerID, draft.ID)
	require.ErrorIs(t, err, domainerrors.ErrVideoNotVisible)

	got, err = fx.service.Watch(ctx, ownerID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	_, err = fx.service.Watch(ctx, viewerID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Update_Guarded(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID := uuid.New()
	video := seedVideo(t, fx.store, ownerID, true)
	ctx := context.Background()
	title := "Renamed"

	_, err := fx.service.Update(ctx, &usecase.UpdateVideoInput{ActorID: uuid.New(), VideoID: video.ID, Title: &title})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Update(ctx, &usecase.UpdateVideoInput{ActorID: uuid.New(), VideoID: uuid.New(), Title: &title})
	require.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	updated, err := fx.service.Update(ctx, &usecase.UpdateVideoInput{
		ActorID: ownerID, VideoID: video.ID, Title: &title, Thumbnail: newUpload("new.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "description", updated.Description)
	assert.NotEqual(t, video.Thumbnail, updated.Thumbnail)
	assert.Equal(t, []string{video.Thumbnail}, fx.storage.deleted)
}

func TestVideoService_TogglePublish(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID := uuid.New()
	video := seedVideo(t, fx.store, ownerID, true)
	ctx := context.Background()

	toggled, err := fx.service.TogglePublish(ctx, ownerID, video.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)

	_, err = fx.service.TogglePublish(ctx, uuid.New(), video.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	stored, err := fx.store.videoRepo().FindByID(ctx, video.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPublished)
}

func TestVideoService_Delete_Cascades(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID, fanID := uuid.New(), uuid.New()
	video := seedVideo(t, fx.store, ownerID, true)
	other := seedVideo(t, fx.store, ownerID, true)
	ctx := context.Background()

	comment := &entity.Comment{VideoID: video.ID, OwnerUserID: fanID, Text: "nice"}
	require.NoError(t, fx.store.commentRepo().Create(ctx, comment))
	relations := fx.store.relationRepo()
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: fanID, TargetID: video.ID, Kind: entity.RelationVideoLike}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: fanID, TargetID: other.ID, Kind: entity.RelationVideoLike}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: ownerID, TargetID: comment.ID, Kind: entity.RelationCommentLike}))
	playlist := &entity.Playlist{OwnerUserID: fanID, Name: "favs"}
	require.NoError(t, fx.store.playlistRepo().Create(ctx, playlist))
	require.NoError(t, fx.store.playlistRepo().AddVideo(ctx, playlist.ID, video.ID))
	require.NoError(t, fx.store.videoRepo().RecordView(ctx, fanID, video.ID))

	require.ErrorIs(t, fx.service.Delete(ctx, fanID, video.ID), domainerrors.ErrForbidden)
	require.NoError(t, fx.service.Delete(ctx, ownerID, video.ID))

	_, err := fx.store.videoRepo().FindByID(ctx, video.ID)
	require.Error(t, err)
	_, err = fx.store.commentRepo().FindByID(ctx, comment.ID)
	require.Error(t, err)
	assert.Equal(t, 1, fx.store.relationCount(entity.RelationVideoLike))
	assert.Equal(t, 0, fx.store.relationCount(entity.RelationCommentLike))

	stored, err := fx.store.playlistRepo().FindByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.VideoIDs)

	history, err := fx.store.videoRepo().WatchHistory(ctx, fanID)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.ElementsMatch(t, []string{video.VideoFile, video.Thumbnail}, fx.storage.deleted)
}

func TestVideoService_ListPublished(t *testing.T) {
	fx := createTestVideoService(t)
	ownerID := uuid.New()
	for range 3 {
		seedVideo(t, fx.store, ownerID, true)
	}
	seedVideo(t, fx.store, ownerID, false)

	page, err := fx.service.ListPublished(context.Background(), entity.VideoFilter{Page: entity.Page{Number: 1, Size: 2}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
}
