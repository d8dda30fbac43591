package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"mediahub/config"
	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/service"
	"mediahub/internal/infra/auth"
	"mediahub/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokens
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

func newTestStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return storage.NewWithBucket(bucket, "https://cdn.test")
}

func newUpload(name string) *service.FileUpload {
	body := []byte("content of " + name)

	return &service.FileUpload{
		Filename:    name,
		ContentType: "application/octet-stream",
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
	}
}

// memStore is an in-memory stand-in for the PostgreSQL schema, unique indexes included.
type memStore struct {
	mu         sync.Mutex
	identities map[uuid.UUID]*entity.Identity
	videos     map[uuid.UUID]*entity.Video
	comments   map[uuid.UUID]*entity.Comment
	playlists  map[uuid.UUID]*entity.Playlist
	relations  map[relationKey]*entity.Relation
	views      map[[2]uuid.UUID]time.Time
	clock      time.Time
}

type relationKey struct {
	actor  uuid.UUID
	target uuid.UUID
	kind   entity.RelationKind
}

func newMemStore() *memStore {
	return &memStore{
		identities: map[uuid.UUID]*entity.Identity{},
		videos:     map[uuid.UUID]*entity.Video{},
		comments:   map[uuid.UUID]*entity.Comment{},
		playlists:  map[uuid.UUID]*entity.Playlist{},
		relations:  map[relationKey]*entity.Relation{},
		views:      map[[2]uuid.UUID]time.Time{},
		clock:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp so ordering by time is deterministic.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)

	return s.clock
}

func (s *memStore) identityRepo() *fakeIdentityRepo { return &fakeIdentityRepo{s} }
func (s *memStore) videoRepo() *fakeVideoRepo       { return &fakeVideoRepo{s} }
func (s *memStore) commentRepo() *fakeCommentRepo   { return &fakeCommentRepo{s} }
func (s *memStore) playlistRepo() *fakePlaylistRepo { return &fakePlaylistRepo{s} }
func (s *memStore) relationRepo() *fakeRelationRepo { return &fakeRelationRepo{store: s} }

// Execute runs fn without isolation; the fakes are already serialized by the store mutex.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) IdentityRepo() repository.IdentityRepository { return s.identityRepo() }
func (s *memStore) VideoRepo() repository.VideoRepository       { return s.videoRepo() }
func (s *memStore) CommentRepo() repository.CommentRepository   { return s.commentRepo() }
func (s *memStore) PlaylistRepo() repository.PlaylistRepository { return s.playlistRepo() }
func (s *memStore) RelationRepo() repository.RelationRepository { return s.relationRepo() }

func (s *memStore) relationCount(kind entity.RelationKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for key := range s.relations {
		if key.kind == kind {
			count++
		}
	}

	return count
}

// --- identities ---

type fakeIdentityRepo struct{ s *memStore }

func (r *fakeIdentityRepo) Create(_ context.Context, identity *entity.Identity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.identities {
		if existing.Username == identity.Username || existing.Email == identity.Email {
			return repository.ErrDuplicateIdentity
		}
	}

	identity.ID = uuid.New()
	identity.CreatedAt = r.s.tick()
	identity.UpdatedAt = identity.CreatedAt
	copied := *identity
	r.s.identities[identity.ID] = &copied

	return nil
}

func (r *fakeIdentityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}
	copied := *identity
	if identity.RefreshToken != nil {
		token := *identity.RefreshToken
		copied.RefreshToken = &token
	}

	return &copied, nil
}

func (r *fakeIdentityRepo) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return identity.Public(), nil
}

func (r *fakeIdentityRepo) FindByHandleOrContact(_ context.Context, username, email string) (*entity.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, identity := range r.s.identities {
		if (username != "" && identity.Username == username) || (email != "" && identity.Email == email) {
			copied := *identity

			return &copied, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (r *fakeIdentityRepo) FindByUsername(ctx context.Context, username string) (*entity.Identity, error) {
	if username == "" {
		return nil, repository.ErrIdentityNotFound
	}
	identity, err := r.FindByHandleOrContact(ctx, username, "")
	if err != nil {
		return nil, err
	}

	return identity.Public(), nil
}

func (r *fakeIdentityRepo) FindSummariesByIDs(_ context.Context, ids []uuid.UUID) ([]entity.IdentitySummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	summaries := make([]entity.IdentitySummary, 0, len(ids))
	for _, id := range ids {
		if identity, ok := r.s.identities[id]; ok {
			summaries = append(summaries, identity.Summary())
		}
	}

	return summaries, nil
}

func (r *fakeIdentityRepo) update(id uuid.UUID, apply func(*entity.Identity)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	apply(identity)
	identity.UpdatedAt = r.s.tick()

	return nil
}

func (r *fakeIdentityRepo) UpdateAccount(_ context.Context, id uuid.UUID, fullName, email string) error {
	r.s.mu.Lock()
	for otherID, other := range r.s.identities {
		if otherID != id && other.Email == email {
			r.s.mu.Unlock()

			return repository.ErrDuplicateIdentity
		}
	}
	r.s.mu.Unlock()

	return r.update(id, func(identity *entity.Identity) {
		identity.FullName = fullName
		identity.Email = email
	})
}

func (r *fakeIdentityRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	return r.update(id, func(identity *entity.Identity) { identity.PasswordHash = hash })
}

func (r *fakeIdentityRepo) UpdateAvatar(_ context.Context, id uuid.UUID, url string) error {
	return r.update(id, func(identity *entity.Identity) { identity.Avatar = url })
}

func (r *fakeIdentityRepo) UpdateCoverImage(_ context.Context, id uuid.UUID, url string) error {
	return r.update(id, func(identity *entity.Identity) { identity.CoverImage = url })
}

func (r *fakeIdentityRepo) SetRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	return r.update(id, func(identity *entity.Identity) { identity.RefreshToken = &token })
}

func (r *fakeIdentityRepo) SwapRefreshToken(_ context.Context, id uuid.UUID, expected, next string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[id]
	if !ok || !identity.HasRefreshToken(expected) {
		return repository.ErrRefreshTokenMismatch
	}
	identity.RefreshToken = &next

	return nil
}

func (r *fakeIdentityRepo) ClearRefreshToken(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(identity *entity.Identity) { identity.RefreshToken = nil })
}

// --- videos ---

type fakeVideoRepo struct{ s *memStore }

func (r *fakeVideoRepo) Create(_ context.Context, video *entity.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	video.ID = uuid.New()
	video.CreatedAt = r.s.tick()
	video.UpdatedAt = video.CreatedAt
	copied := *video
	r.s.videos[video.ID] = &copied

	return nil
}

func (r *fakeVideoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	video, ok := r.s.videos[id]
	if !ok {
		return nil, repository.ErrVideoNotFound
	}
	copied := *video

	return &copied, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, video *entity.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.videos[video.ID]
	if !ok {
		return repository.ErrVideoNotFound
	}
	stored.Title = video.Title
	stored.Description = video.Description
	stored.Thumbnail = video.Thumbnail
	stored.IsPublished = video.IsPublished
	stored.UpdatedAt = r.s.tick()

	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.videos[id]; !ok {
		return repository.ErrVideoNotFound
	}
	delete(r.s.videos, id)

	return nil
}

func (r *fakeVideoRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	video, ok := r.s.videos[id]
	if !ok {
		return repository.ErrVideoNotFound
	}
	video.Views++

	return nil
}

func (r *fakeVideoRepo) list(match func(*entity.Video) bool, page entity.Page) ([]*entity.Video, int64) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []*entity.Video
	for _, video := range r.s.videos {
		if match(video) {
			copied := *video
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))

	return matched[start:end], total
}

func (r *fakeVideoRepo) ListPublished(_ context.Context, filter entity.VideoFilter) ([]*entity.Video, int64, error) {
	videos, total := r.list(func(video *entity.Video) bool {
		return video.IsPublished && (filter.OwnerID == nil || video.OwnerUserID == *filter.OwnerID)
	}, filter.Page)

	return videos, total, nil
}

func (r *fakeVideoRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Video, int64, error) {
	videos, total := r.list(func(video *entity.Video) bool { return video.OwnerUserID == ownerID }, page)

	return videos, total, nil
}

func (r *fakeVideoRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var videos []*entity.Video
	for _, id := range ids {
		if video, ok := r.s.videos[id]; ok {
			copied := *video
			videos = append(videos, &copied)
		}
	}

	return videos, nil
}

func (r *fakeVideoRepo) StatsByOwner(_ context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := &entity.ChannelStats{}
	for _, video := range r.s.videos {
		if video.OwnerUserID != ownerID {
			continue
		}
		stats.TotalVideos++
		stats.TotalViews += video.Views
		for key := range r.s.relations {
			if key.kind == entity.RelationVideoLike && key.target == video.ID {
				stats.TotalLikes++
			}
		}
	}

	return stats, nil
}

func (r *fakeVideoRepo) RecordView(_ context.Context, viewerID, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.views[[2]uuid.UUID{viewerID, videoID}] = r.s.tick()

	return nil
}

func (r *fakeVideoRepo) WatchHistory(_ context.Context, viewerID uuid.UUID) ([]*entity.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	type watched struct {
		video *entity.Video
		at    time.Time
	}
	var entries []watched
	for key, at := range r.s.views {
		if key[0] != viewerID {
			continue
		}
		if video, ok := r.s.videos[key[1]]; ok {
			copied := *video
			entries = append(entries, watched{video: &copied, at: at})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })

	videos := make([]*entity.Video, 0, len(entries))
	for _, entry := range entries {
		videos = append(videos, entry.video)
	}

	return videos, nil
}

func (r *fakeVideoRepo) DeleteViews(_ context.Context, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for key := range r.s.views {
		if key[1] == videoID {
			delete(r.s.views, key)
		}
	}

	return nil
}

// --- comments ---

type fakeCommentRepo struct{ s *memStore }

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment.ID = uuid.New()
	comment.CreatedAt = r.s.tick()
	comment.UpdatedAt = comment.CreatedAt
	copied := *comment
	r.s.comments[comment.ID] = &copied

	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	copied := *comment

	return &copied, nil
}

func (r *fakeCommentRepo) UpdateText(_ context.Context, id uuid.UUID, text string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return repository.ErrCommentNotFound
	}
	comment.Text = text

	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(r.s.comments, id)

	return nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID uuid.UUID, page entity.Page) ([]*entity.Comment, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []*entity.Comment
	for _, comment := range r.s.comments {
		if comment.VideoID == videoID {
			copied := *comment
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))

	return matched[start:end], int64(len(matched)), nil
}

func (r *fakeCommentRepo) IDsByVideo(_ context.Context, videoID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var ids []uuid.UUID
	for id, comment := range r.s.comments {
		if comment.VideoID == videoID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (r *fakeCommentRepo) DeleteByVideo(_ context.Context, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, comment := range r.s.comments {
		if comment.VideoID == videoID {
			delete(r.s.comments, id)
		}
	}

	return nil
}

// --- playlists ---

type fakePlaylistRepo struct{ s *memStore }

func (r *fakePlaylistRepo) Create(_ context.Context, playlist *entity.Playlist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	playlist.ID = uuid.New()
	playlist.CreatedAt = r.s.tick()
	playlist.UpdatedAt = playlist.CreatedAt
	copied := *playlist
	copied.VideoIDs = slices.Clone(playlist.VideoIDs)
	r.s.playlists[playlist.ID] = &copied

	return nil
}

func (r *fakePlaylistRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Playlist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	playlist, ok := r.s.playlists[id]
	if !ok {
		return nil, repository.ErrPlaylistNotFound
	}
	copied := *playlist
	copied.VideoIDs = slices.Clone(playlist.VideoIDs)

	return &copied, nil
}

func (r *fakePlaylistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var playlists []*entity.Playlist
	for _, playlist := range r.s.playlists {
		if playlist.OwnerUserID == ownerID {
			copied := *playlist
			playlists = append(playlists, &copied)
		}
	}

	return playlists, nil
}

func (r *fakePlaylistRepo) Update(_ context.Context, playlist *entity.Playlist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.playlists[playlist.ID]
	if !ok {
		return repository.ErrPlaylistNotFound
	}
	stored.Name = playlist.Name
	stored.Description = playlist.Description

	return nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.playlists[id]; !ok {
		return repository.ErrPlaylistNotFound
	}
	delete(r.s.playlists, id)

	return nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	playlist, ok := r.s.playlists[playlistID]
	if !ok {
		return repository.ErrPlaylistNotFound
	}
	if _, ok := r.s.videos[videoID]; !ok {
		return repository.ErrVideoNotFound
	}
	if playlist.Contains(videoID) {
		return repository.ErrDuplicatePlaylistVideo
	}
	playlist.VideoIDs = append(playlist.VideoIDs, videoID)

	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if playlist, ok := r.s.playlists[playlistID]; ok {
		playlist.VideoIDs = slices.DeleteFunc(playlist.VideoIDs, func(id uuid.UUID) bool { return id == videoID })
	}

	return nil
}

func (r *fakePlaylistRepo) RemoveVideoEverywhere(_ context.Context, videoID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, playlist := range r.s.playlists {
		playlist.VideoIDs = slices.DeleteFunc(playlist.VideoIDs, func(id uuid.UUID) bool { return id == videoID })
	}

	return nil
}

// --- relations ---

// fakeRelationRepo enforces the (actor, target, kind) unique index. beforeCreate, when set,
// runs right before each insert so tests can inject a concurrent writer.
type fakeRelationRepo struct {
	store        *memStore
	beforeCreate func(key relationKey)
}

func (r *fakeRelationRepo) Create(_ context.Context, relation *entity.Relation) error {
	key := relationKey{relation.ActorID, relation.TargetID, relation.Kind}
	if r.beforeCreate != nil {
		r.beforeCreate(key)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.relations[key]; exists {
		return repository.ErrDuplicateRelation
	}
	relation.ID = uuid.New()
	relation.CreatedAt = r.store.tick()
	copied := *relation
	r.store.relations[key] = &copied

	return nil
}

func (r *fakeRelationRepo) Delete(_ context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := relationKey{actorID, targetID, kind}
	if _, exists := r.store.relations[key]; !exists {
		return false, nil
	}
	delete(r.store.relations, key)

	return true, nil
}

func (r *fakeRelationRepo) Exists(_ context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, exists := r.store.relations[relationKey{actorID, targetID, kind}]

	return exists, nil
}

func (r *fakeRelationRepo) filter(match func(relationKey) bool) []*entity.Relation {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var relations []*entity.Relation
	for key, relation := range r.store.relations {
		if match(key) {
			copied := *relation
			relations = append(relations, &copied)
		}
	}
	sort.Slice(relations, func(i, j int) bool { return relations[i].CreatedAt.After(relations[j].CreatedAt) })

	return relations
}

func (r *fakeRelationRepo) CountByTarget(_ context.Context, targetID uuid.UUID, kind entity.RelationKind) (int64, error) {
	return int64(len(r.filter(func(key relationKey) bool { return key.target == targetID && key.kind == kind }))), nil
}

func (r *fakeRelationRepo) CountByActor(_ context.Context, actorID uuid.UUID, kind entity.RelationKind) (int64, error) {
	return int64(len(r.filter(func(key relationKey) bool { return key.actor == actorID && key.kind == kind }))), nil
}

func (r *fakeRelationRepo) ListByTarget(_ context.Context, targetID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error) {
	return r.filter(func(key relationKey) bool { return key.target == targetID && key.kind == kind }), nil
}

func (r *fakeRelationRepo) ListByActor(_ context.Context, actorID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error) {
	return r.filter(func(key relationKey) bool { return key.actor == actorID && key.kind == kind }), nil
}

func (r *fakeRelationRepo) DeleteByTargets(_ context.Context, targetIDs []uuid.UUID, kind entity.RelationKind) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for key := range r.store.relations {
		if key.kind == kind && slices.Contains(targetIDs, key.target) {
			delete(r.store.relations, key)
		}
	}

	return nil
}

// --- services ---

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*service.RelationEvent
	err    error
}

func (p *fakePublisher) PublishRelationEvent(_ context.Context, event *service.RelationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) published() []*service.RelationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.events)
}

// fakeMetrics counts recorded events by label pair.
type fakeMetrics struct {
	mu      sync.Mutex
	auth    map[[2]string]int
	toggles map[[2]string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{auth: map[[2]string]int{}, toggles: map[[2]string]int{}}
}

func (m *fakeMetrics) RecordAuthEvent(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.auth[[2]string{operation, outcome}]++
}

func (m *fakeMetrics) RecordToggle(kind, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.toggles[[2]string{kind, result}]++
}

func (m *fakeMetrics) authCount(operation, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.auth[[2]string{operation, outcome}]
}

func (m *fakeMetrics) toggleCount(kind, result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.toggles[[2]string{kind, result}]
}

// seedIdentity stores an identity with the given password directly.
func seedIdentity(t *testing.T, store *memStore, username, password string) *entity.Identity {
	t.Helper()

	hash, err := newTestHasher().Hash(password)
	require.NoError(t, err)

	identity := &entity.Identity{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Full " + username,
		Avatar:       "https://cdn.test/avatars/" + username + ".png",
		PasswordHash: hash,
	}
	require.NoError(t, store.identityRepo().Create(context.Background(), identity))

	return identity
}

func seedVideo(t *testing.T, store *memStore, ownerID uuid.UUID, published bool) *entity.Video {
	t.Helper()

	video := &entity.Video{
		OwnerUserID: ownerID,
		Title:       "video",
		Description: "description",
		VideoFile:   "https://cdn.test/videos/v.mp4",
		Thumbnail:   "https://cdn.test/thumbnails/t.png",
		IsPublished: published,
	}
	require.NoError(t, store.videoRepo().Create(context.Background(), video))

	return video
}
