package impl

import (
	"context"
	"errors"
	"testing"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChannelService(store *memStore) usecase.ChannelUsecase {
	return NewChannelService(ChannelServiceParams{
		IdentityRepo: store.identityRepo(),
		VideoRepo:    store.videoRepo(),
		RelationRepo: store.relationRepo(),
		Logger:       newDiscardLogger(),
	})
}

func TestChannelService_ProfileAndSubscriptions(t *testing.T) {
	store := newMemStore()
	srv := createTestChannelService(store)
	ctx := context.Background()

	alice := seedIdentity(t, store, "alice", testPassword)
	bob := seedIdentity(t, store, "bob", testPassword)
	carol := seedIdentity(t, store, "carol", testPassword)

	relations := store.relationRepo()
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: bob.ID, TargetID: alice.ID, Kind: entity.RelationSubscription}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: carol.ID, TargetID: alice.ID, Kind: entity.RelationSubscription}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: alice.ID, TargetID: bob.ID, Kind: entity.RelationSubscription}))

	profile, err := srv.Profile(ctx, bob.ID, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, int64(2), profile.SubscribersCount)
	assert.Equal(t, int64(1), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)

	profile, err = srv.Profile(ctx, alice.ID, "carol")
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = srv.Profile(ctx, alice.ID, "nobody")
	require.ErrorIs(t, err, domainerrors.ErrChannelNotFound)

	subscribers, err := srv.Subscribers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)
	// Newest subscription first.
	assert.Equal(t, carol.ID, subscribers[0].ID)
	assert.Equal(t, bob.ID, subscribers[1].ID)

	_, err = srv.Subscribers(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrChannelNotFound)

	channels, err := srv.SubscribedChannels(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "bob", channels[0].Username)

	none, err := srv.SubscribedChannels(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

// Subscribing twice through the toggle returns the subscriber count to where it started.
func TestChannelService_SubscribeTwiceRestoresCount(t *testing.T) {
	fx := createTestRelationService(t)
	channels := createTestChannelService(fx.store)
	ctx := context.Background()

	owner := seedIdentity(t, fx.store, "owner", testPassword)
	fan := seedIdentity(t, fx.store, "fan", testPassword)

	before, err := channels.Profile(ctx, fan.ID, "owner")
	require.NoError(t, err)

	toggle := &usecase.ToggleInput{ActorID: fan.ID, TargetID: owner.ID, Kind: entity.RelationSubscription}
	_, err = fx.service.Toggle(ctx, toggle)
	require.NoError(t, err)

	during, err := channels.Profile(ctx, fan.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, before.SubscribersCount+1, during.SubscribersCount)
	assert.True(t, during.IsSubscribed)

	_, err = fx.service.Toggle(ctx, toggle)
	require.NoError(t, err)

	after, err := channels.Profile(ctx, fan.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, before.SubscribersCount, after.SubscribersCount)
	assert.False(t, after.IsSubscribed)
}

func TestChannelService_DashboardAndLibrary(t *testing.T) {
	store := newMemStore()
	srv := createTestChannelService(store)
	ctx := context.Background()

	owner := seedIdentity(t, store, "owner", testPassword)
	fan := seedIdentity(t, store, "fan", testPassword)
	published := seedVideo(t, store, owner.ID, true)
	draft := seedVideo(t, store, owner.ID, false)

	require.NoError(t, store.videoRepo().IncrementViews(ctx, published.ID))
	require.NoError(t, store.videoRepo().IncrementViews(ctx, published.ID))
	relations := store.relationRepo()
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: fan.ID, TargetID: published.ID, Kind: entity.RelationVideoLike}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: fan.ID, TargetID: draft.ID, Kind: entity.RelationVideoLike}))
	require.NoError(t, relations.Create(ctx, &entity.Relation{ActorID: fan.ID, TargetID: owner.ID, Kind: entity.RelationSubscription}))
	require.NoError(t, store.videoRepo().RecordView(ctx, fan.ID, published.ID))

	stats, err := srv.Stats(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelStats{TotalVideos: 2, TotalViews: 2, TotalSubscribers: 1, TotalLikes: 2}, *stats)

	videos, err := srv.Videos(ctx, owner.ID, entity.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), videos.TotalItems)

	// The draft was liked earlier but is no longer visible to the fan.
	liked, err := srv.LikedVideos(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, published.ID, liked[0].ID)

	history, err := srv.WatchHistory(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

type stubHealthChecker struct{ err error }

func (s stubHealthChecker) Check(context.Context) error { return s.err }

func TestHealthService(t *testing.T) {
	require.NoError(t, NewHealthService(stubHealthChecker{}).Check(context.Background()))

	down := errors.New("connection refused")
	err := NewHealthService(stubHealthChecker{err: down}).Check(context.Background())
	require.ErrorIs(t, err, down)
}
