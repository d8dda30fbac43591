package impl

import (
	"context"
	"testing"

	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_Lifecycle(t *testing.T) {
	store := newMemStore()
	srv := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: store.playlistRepo(),
		VideoRepo:    store.videoRepo(),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()
	ownerID, strangerID := uuid.New(), uuid.New()
	first := seedVideo(t, store, uuid.New(), true)
	second := seedVideo(t, store, uuid.New(), true)

	_, err := srv.Create(ctx, ownerID, &usecase.PlaylistInput{Name: " "})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	playlist, err := srv.Create(ctx, ownerID, &usecase.PlaylistInput{Name: "Road trip", Description: "songs"})
	require.NoError(t, err)
	assert.Empty(t, playlist.VideoIDs)

	_, err = srv.AddVideo(ctx, strangerID, playlist.ID, first.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.AddVideo(ctx, ownerID, playlist.ID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	_, err = srv.AddVideo(ctx, ownerID, playlist.ID, first.ID)
	require.NoError(t, err)
	withBoth, err := srv.AddVideo(ctx, ownerID, playlist.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, withBoth.VideoIDs)

	_, err = srv.AddVideo(ctx, ownerID, playlist.ID, first.ID)
	require.ErrorIs(t, err, domainerrors.ErrVideoAlreadyInPlaylist)
	assert.Equal(t, "Video already in playlist", err.Error())

	removed, err := srv.RemoveVideo(ctx, ownerID, playlist.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID}, removed.VideoIDs)

	_, err = srv.RemoveVideo(ctx, strangerID, playlist.ID, second.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	renamed, err := srv.Update(ctx, ownerID, playlist.ID, &usecase.PlaylistInput{Name: "Commute"})
	require.NoError(t, err)
	assert.Equal(t, "Commute", renamed.Name)

	_, err = srv.Update(ctx, strangerID, playlist.ID, &usecase.PlaylistInput{Name: "Mine now"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	mine, err := srv.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	got, err := srv.Get(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Commute", got.Name)

	require.ErrorIs(t, srv.Delete(ctx, strangerID, playlist.ID), domainerrors.ErrForbidden)
	require.NoError(t, srv.Delete(ctx, ownerID, playlist.ID))

	_, err = srv.Get(ctx, playlist.ID)
	require.ErrorIs(t, err, domainerrors.ErrPlaylistNotFound)
}
