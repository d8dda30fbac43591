package http

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/service"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func ret[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)

	return v
}

type mockSessionUsecase struct{ mock.Mock }

func (m *mockSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.SessionOutput](args, 0), args.Error(1)
}

func (m *mockSessionUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, refreshToken)

	return ret[*usecase.SessionOutput](args, 0), args.Error(1)
}

func (m *mockSessionUsecase) Logout(ctx context.Context, identityID uuid.UUID) error {
	return m.Called(ctx, identityID).Error(0)
}

func (m *mockSessionUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	args := m.Called(ctx, accessToken)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

type mockIdentityUsecase struct{ mock.Mock }

func (m *mockIdentityUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.RegisterOutput](args, 0), args.Error(1)
}

func (m *mockIdentityUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *mockIdentityUsecase) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Identity, error) {
	args := m.Called(ctx, input)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *mockIdentityUsecase) UpdateAvatar(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error) {
	args := m.Called(ctx, identityID, file)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *mockIdentityUsecase) UpdateCoverImage(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error) {
	args := m.Called(ctx, identityID, file)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

func (m *mockIdentityUsecase) CurrentIdentity(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	args := m.Called(ctx, identityID)

	return ret[*entity.Identity](args, 0), args.Error(1)
}

type mockVideoUsecase struct{ mock.Mock }

func (m *mockVideoUsecase) ListPublished(ctx context.Context, filter entity.VideoFilter) (*entity.PageResult[*entity.Video], error) {
	args := m.Called(ctx, filter)

	return ret[*entity.PageResult[*entity.Video]](args, 0), args.Error(1)
}

func (m *mockVideoUsecase) Publish(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, input)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *mockVideoUsecase) Watch(ctx context.Context, viewerID, videoID uuid.UUID) (*entity.Video, error) {
	args := m.Called(ctx, viewerID, videoID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *mockVideoUsecase) Update(ctx context.Context, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, input)

	return ret[*entity.Video](args, 0), args.Error(1)
}

func (m *mockVideoUsecase) Delete(ctx context.Context, actorID, videoID uuid.UUID) error {
	return m.Called(ctx, actorID, videoID).Error(0)
}

func (m *mockVideoUsecase) TogglePublish(ctx context.Context, actorID, videoID uuid.UUID) (*entity.Video, error) {
	args := m.Called(ctx, actorID, videoID)

	return ret[*entity.Video](args, 0), args.Error(1)
}

type mockCommentUsecase struct{ mock.Mock }

func (m *mockCommentUsecase) ListByVideo(ctx context.Context, videoID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Comment], error) {
	args := m.Called(ctx, videoID, page)

	return ret[*entity.PageResult[*entity.Comment]](args, 0), args.Error(1)
}

func (m *mockCommentUsecase) Add(ctx context.Context, actorID, videoID uuid.UUID, text string) (*entity.Comment, error) {
	args := m.Called(ctx, actorID, videoID, text)

	return ret[*entity.Comment](args, 0), args.Error(1)
}

func (m *mockCommentUsecase) Update(ctx context.Context, actorID, commentID uuid.UUID, text string) (*entity.Comment, error) {
	args := m.Called(ctx, actorID, commentID, text)

	return ret[*entity.Comment](args, 0), args.Error(1)
}

func (m *mockCommentUsecase) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	return m.Called(ctx, actorID, commentID).Error(0)
}

type mockPlaylistUsecase struct{ mock.Mock }

func (m *mockPlaylistUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	args := m.Called(ctx, ownerID, input)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *mockPlaylistUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	args := m.Called(ctx, ownerID)

	return ret[[]*entity.Playlist](args, 0), args.Error(1)
}

func (m *mockPlaylistUsecase) Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, playlistID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *mockPlaylistUsecase) Update(ctx context.Context, actorID, playlistID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, input)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *mockPlaylistUsecase) Delete(ctx context.Context, actorID, playlistID uuid.UUID) error {
	return m.Called(ctx, actorID, playlistID).Error(0)
}

func (m *mockPlaylistUsecase) AddVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

func (m *mockPlaylistUsecase) RemoveVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, actorID, playlistID, videoID)

	return ret[*entity.Playlist](args, 0), args.Error(1)
}

type mockRelationUsecase struct{ mock.Mock }

func (m *mockRelationUsecase) Toggle(ctx context.Context, input *usecase.ToggleInput) (*usecase.ToggleOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.ToggleOutput](args, 0), args.Error(1)
}

func (m *mockRelationUsecase) GenerateChannelQR(ctx context.Context, channelID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, channelID)

	return ret[[]byte](args, 0), args.Error(1)
}

func (m *mockRelationUsecase) SubscribeByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*usecase.ToggleOutput, error) {
	args := m.Called(ctx, actorID, qrData)

	return ret[*usecase.ToggleOutput](args, 0), args.Error(1)
}

type mockChannelUsecase struct{ mock.Mock }

func (m *mockChannelUsecase) Profile(ctx context.Context, viewerID uuid.UUID, username string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)

	return ret[*entity.ChannelProfile](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) Subscribers(ctx context.Context, channelID uuid.UUID) ([]entity.IdentitySummary, error) {
	args := m.Called(ctx, channelID)

	return ret[[]entity.IdentitySummary](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]entity.IdentitySummary, error) {
	args := m.Called(ctx, subscriberID)

	return ret[[]entity.IdentitySummary](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) LikedVideos(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error) {
	args := m.Called(ctx, identityID)

	return ret[[]*entity.Video](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) WatchHistory(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error) {
	args := m.Called(ctx, identityID)

	return ret[[]*entity.Video](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	args := m.Called(ctx, ownerID)

	return ret[*entity.ChannelStats](args, 0), args.Error(1)
}

func (m *mockChannelUsecase) Videos(ctx context.Context, ownerID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Video], error) {
	args := m.Called(ctx, ownerID, page)

	return ret[*entity.PageResult[*entity.Video]](args, 0), args.Error(1)
}

type mockHealthUsecase struct{ mock.Mock }

func (m *mockHealthUsecase) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
