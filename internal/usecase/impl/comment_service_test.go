package impl

import (
	"context"
	"testing"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Lifecycle(t *testing.T) {
	store := newMemStore()
	srv := NewCommentService(CommentServiceParams{
		TxManager:   store,
		VideoRepo:   store.videoRepo(),
		CommentRepo: store.commentRepo(),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()
	authorID, strangerID := uuid.New(), uuid.New()
	video := seedVideo(t, store, uuid.New(), true)

	_, err := srv.Add(ctx, authorID, video.ID, "   ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Add(ctx, authorID, uuid.New(), "hello")
	require.ErrorIs(t, err, domainerrors.ErrVideoNotFound)

	comment, err := srv.Add(ctx, authorID, video.ID, " hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", comment.Text)

	_, err = srv.Update(ctx, strangerID, comment.ID, "defaced")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.Update(ctx, strangerID, uuid.New(), "defaced")
	require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)

	updated, err := srv.Update(ctx, authorID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	page, err := srv.ListByVideo(ctx, video.ID, entity.Page{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "edited", page.Items[0].Text)
	assert.Equal(t, entity.DefaultPageSize, page.Limit)

	require.NoError(t, store.relationRepo().Create(ctx, &entity.Relation{ActorID: strangerID, TargetID: comment.ID, Kind: entity.RelationCommentLike}))

	require.ErrorIs(t, srv.Delete(ctx, strangerID, comment.ID), domainerrors.ErrForbidden)
	require.NoError(t, srv.Delete(ctx, authorID, comment.ID))
	assert.Equal(t, 0, store.relationCount(entity.RelationCommentLike))

	require.ErrorIs(t, srv.Delete(ctx, authorID, comment.ID), domainerrors.ErrCommentNotFound)
}
