package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errCommentTextRequired = domainerrors.ErrValidationFailed.WithMessage("Comment content is required")

type commentService struct {
	txManager   repository.TransactionManager
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Comment], error) {
	if _, err := findVideo(srv.videoRepo)(ctx, videoID); err != nil {
		return nil, err
	}

	page = entity.NewPage(page.Number, page.Size)
	comments, total, err := srv.commentRepo.ListByVideo(ctx, videoID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return entity.NewPageResult(comments, total, page), nil
}

func (srv *commentService) Add(ctx context.Context, actorID, videoID uuid.UUID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errCommentTextRequired
	}

	if _, err := findVideo(srv.videoRepo)(ctx, videoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{VideoID: videoID, OwnerUserID: actorID, Text: text}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *commentService) Update(ctx context.Context, actorID, commentID uuid.UUID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errCommentTextRequired
	}

	comment, err := usecase.RequireOwnership(ctx, findComment(srv.commentRepo), commentID, actorID)
	if err != nil {
		return nil, err
	}

	if err := srv.commentRepo.UpdateText(ctx, comment.ID, text); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}
	comment.Text = text

	return comment, nil
}

// Delete removes the comment and the likes it collected.
func (srv *commentService) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	comment, err := usecase.RequireOwnership(ctx, findComment(srv.commentRepo), commentID, actorID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RelationRepo().DeleteByTargets(ctx, []uuid.UUID{comment.ID}, entity.RelationCommentLike); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}

		return errors.Wrap(repoFactory.CommentRepo().Delete(ctx, comment.ID), "failed to delete comment")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Comment deleted", slog.String("commentID", comment.ID.String()))

	return nil
}
