package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxToggleAttempts bounds how often a toggle re-reads a row that keeps appearing and vanishing.
const maxToggleAttempts = 3

// relationService implements the RelationUsecase interface.
type relationService struct {
	identityRepo repository.IdentityRepository
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	relationRepo repository.RelationRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// RelationServiceParams holds dependencies for RelationService, injected by Fx.
type RelationServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	VideoRepo    repository.VideoRepository
	CommentRepo  repository.CommentRepository
	RelationRepo repository.RelationRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewRelationService is the constructor for relationService.
func NewRelationService(params RelationServiceParams) usecase.RelationUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &relationService{
		identityRepo: params.IdentityRepo,
		videoRepo:    params.VideoRepo,
		commentRepo:  params.CommentRepo,
		relationRepo: params.RelationRepo,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

func (srv *relationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle removes the relation when present and creates it when absent.
func (srv *relationService) Toggle(ctx context.Context, input *usecase.ToggleInput) (*usecase.ToggleOutput, error) {
	if err := srv.checkTarget(ctx, input.ActorID, input.TargetID, input.Kind); err != nil {
		return nil, err
	}

	result, err := srv.settle(ctx, input.ActorID, input.TargetID, input.Kind)
	if err != nil {
		srv.log(ctx).Error("Failed to toggle relation",
			slog.String("kind", input.Kind.String()),
			slog.String("actorID", input.ActorID.String()),
			slog.String("targetID", input.TargetID.String()),
			slog.Any("error", err))

		return nil, err
	}

	srv.afterSettle(ctx, input.ActorID, input.TargetID, input.Kind, result)

	return &usecase.ToggleOutput{Result: result, Created: result == entity.ToggleCreated}, nil
}

// settle runs delete-first, then insert. A unique violation on insert means a concurrent
// request created the row first, which this request resolves by removing it.
func (srv *relationService) settle(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (entity.ToggleResult, error) {
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		removed, err := srv.relationRepo.Delete(ctx, actorID, targetID, kind)
		if err != nil {
			return "", errors.Wrap(err, "failed to delete relation")
		}
		if removed {
			return entity.ToggleRemoved, nil
		}

		err = srv.relationRepo.Create(ctx, &entity.Relation{ActorID: actorID, TargetID: targetID, Kind: kind})
		if err == nil {
			return entity.ToggleCreated, nil
		}
		if !errors.Is(err, repository.ErrDuplicateRelation) {
			return "", errors.Wrap(err, "failed to create relation")
		}

		removed, err = srv.relationRepo.Delete(ctx, actorID, targetID, kind)
		if err != nil {
			return "", errors.Wrap(err, "failed to delete concurrently created relation")
		}
		if removed {
			return entity.ToggleRemoved, nil
		}

		srv.log(ctx).Debug("Relation row changed underneath toggle, retrying",
			slog.String("kind", kind.String()), slog.Int("attempt", attempt))
	}

	return "", errors.Wrapf(domainerrors.ErrToggleConflict, "gave up after %d attempts", maxToggleAttempts)
}

// checkTarget enforces the kind's self-reference rule and that the target exists.
func (srv *relationService) checkTarget(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) error {
	if !kind.IsValid() {
		return domainerrors.ErrInvalidRelationKind
	}
	if !kind.AllowsSelfReference() && actorID == targetID {
		return domainerrors.ErrSelfSubscription
	}

	var err error
	switch kind {
	case entity.RelationSubscription:
		_, err = findIdentity(srv.identityRepo)(ctx, targetID)
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return domainerrors.ErrChannelNotFound
		}
	case entity.RelationVideoLike:
		_, err = findVideo(srv.videoRepo)(ctx, targetID)
	case entity.RelationCommentLike:
		_, err = findComment(srv.commentRepo)(ctx, targetID)
	}

	return err
}

func (srv *relationService) afterSettle(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind, result entity.ToggleResult) {
	srv.metrics.RecordToggle(kind.String(), string(result))

	event := &service.RelationEvent{
		RequestID:  deliverycontext.RequestIDFromContext(ctx),
		ActorID:    actorID.String(),
		TargetID:   targetID.String(),
		Kind:       kind.String(),
		Result:     string(result),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishRelationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish relation event",
			slog.String("kind", event.Kind), slog.String("result", event.Result), slog.Any("error", err))
	}
}

func (srv *relationService) GenerateChannelQR(ctx context.Context, channelID uuid.UUID) ([]byte, error) {
	if _, err := findIdentity(srv.identityRepo)(ctx, channelID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateChannelQR(channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate channel QR code")
	}

	return png, nil
}

// SubscribeByQR ensures the subscription exists. Scanning the same code twice never unsubscribes.
func (srv *relationService) SubscribeByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*usecase.ToggleOutput, error) {
	channelID, err := srv.qrService.ParseChannelQR(qrData)
	if err != nil {
		return nil, err
	}

	kind := entity.RelationSubscription
	if err := srv.checkTarget(ctx, actorID, channelID, kind); err != nil {
		return nil, err
	}

	exists, err := srv.relationRepo.Exists(ctx, actorID, channelID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check subscription")
	}
	if exists {
		return &usecase.ToggleOutput{Created: false}, nil
	}

	err = srv.relationRepo.Create(ctx, &entity.Relation{ActorID: actorID, TargetID: channelID, Kind: kind})
	if errors.Is(err, repository.ErrDuplicateRelation) {
		return &usecase.ToggleOutput{Created: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	srv.afterSettle(ctx, actorID, channelID, kind, entity.ToggleCreated)

	return &usecase.ToggleOutput{Result: entity.ToggleCreated, Created: true}, nil
}
