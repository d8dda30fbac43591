package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	avatarPrefix     = "avatars"
	coverImagePrefix = "covers"
)

// identityCandidate holds the fields checked before an identity is written.
type identityCandidate struct {
	Username string `validate:"min=3,max=100"`
	FullName string `validate:"min=3,max=100"`
	Email    string `validate:"min=6,max=254,email"`
}

// identityService implements the IdentityUsecase interface.
type identityService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storage      service.ObjectStorage
	metrics      service.MetricsRecorder
	validate     *validator.Validate
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.ObjectStorage
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &identityService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storage:      params.Storage,
		metrics:      metrics,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an identity, stores its images and logs it in.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	output, err := srv.register(ctx, input)
	if err != nil {
		srv.metrics.RecordAuthEvent(authOpRegister, outcomeFailure)

		return nil, err
	}

	srv.metrics.RecordAuthEvent(authOpRegister, outcomeSuccess)

	return output, nil
}

func (srv *identityService) register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	candidate := identityCandidate{
		Username: entity.NormalizeUsername(input.Username),
		FullName: strings.TrimSpace(input.FullName),
		Email:    entity.NormalizeEmail(input.Email),
	}
	if candidate.Username == "" || candidate.FullName == "" || candidate.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validateCandidate(candidate); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if input.Avatar == nil {
		return nil, domainerrors.ErrAvatarRequired
	}

	// Early rejection saves an upload; the unique indexes still decide races.
	_, err := srv.identityRepo.FindByHandleOrContact(ctx, candidate.Username, candidate.Email)
	if err == nil {
		return nil, domainerrors.ErrIdentityAlreadyExists
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to check existing identity")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	avatarURL, err := srv.storage.Upload(ctx, avatarPrefix, input.Avatar)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	var coverURL string
	if input.CoverImage != nil {
		coverURL, err = srv.storage.Upload(ctx, coverImagePrefix, input.CoverImage)
		if err != nil {
			deleteObjects(ctx, srv.storage, srv.log(ctx), avatarURL)

			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
	}

	identity := &entity.Identity{
		Username:     candidate.Username,
		Email:        candidate.Email,
		FullName:     candidate.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: hash,
	}

	if err := srv.identityRepo.Create(ctx, identity); err != nil {
		deleteObjects(ctx, srv.storage, srv.log(ctx), avatarURL, coverURL)
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, domainerrors.ErrIdentityAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create identity")
	}

	accessToken, refreshToken, err := issueTokenPair(srv.tokenService, identity)
	if err != nil {
		return nil, err
	}
	if err := srv.identityRepo.SetRefreshToken(ctx, identity.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	srv.log(ctx).Info("Identity registered", slog.String("identityID", identity.ID.String()), slog.String("username", identity.Username))

	return &usecase.RegisterOutput{
		Identity:     identity.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *identityService) validateCandidate(candidate identityCandidate) error {
	err := srv.validate.Struct(candidate)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	switch fieldErrs[0].Field() {
	case "Username":
		return domainerrors.ErrInvalidUsername
	case "FullName":
		return domainerrors.ErrInvalidFullName
	default:
		return domainerrors.ErrInvalidEmail
	}
}

func (srv *identityService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrValidationFailed
	}

	identity, err := srv.identityRepo.FindByID(ctx, input.IdentityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find identity")
	}

	if !srv.hasher.Check(input.OldPassword, identity.PasswordHash) {
		return domainerrors.ErrInvalidOldPassword
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := srv.identityRepo.UpdatePasswordHash(ctx, identity.ID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("identityID", identity.ID.String()))

	return nil
}

// UpdateAccount changes display name and email. Only the identity itself may do this.
func (srv *identityService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Identity, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := entity.NormalizeEmail(input.Email)
	if fullName == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	identity, err := usecase.RequireOwnership(ctx, findIdentity(srv.identityRepo), input.TargetID, input.ActorID)
	if err != nil {
		return nil, err
	}

	if err := srv.validateCandidate(identityCandidate{Username: identity.Username, FullName: fullName, Email: email}); err != nil {
		return nil, err
	}

	err = srv.identityRepo.UpdateAccount(ctx, identity.ID, fullName, email)
	if errors.Is(err, repository.ErrDuplicateIdentity) {
		return nil, domainerrors.ErrIdentityAlreadyExists
	}
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	identity.FullName = fullName
	identity.Email = email

	return identity, nil
}

func (srv *identityService) UpdateAvatar(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error) {
	if file == nil {
		return nil, domainerrors.ErrAvatarRequired
	}

	return srv.replaceImage(ctx, identityID, avatarPrefix, file,
		func(identity *entity.Identity) *string { return &identity.Avatar },
		srv.identityRepo.UpdateAvatar,
	)
}

func (srv *identityService) UpdateCoverImage(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error) {
	if file == nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Cover image file is missing")
	}

	return srv.replaceImage(ctx, identityID, coverImagePrefix, file,
		func(identity *entity.Identity) *string { return &identity.CoverImage },
		srv.identityRepo.UpdateCoverImage,
	)
}

// replaceImage uploads the new file, points the identity at it and drops the previous object.
func (srv *identityService) replaceImage(
	ctx context.Context,
	identityID uuid.UUID,
	prefix string,
	file *service.FileUpload,
	field func(*entity.Identity) *string,
	save func(ctx context.Context, id uuid.UUID, url string) error,
) (*entity.Identity, error) {
	identity, err := findIdentity(srv.identityRepo)(ctx, identityID)
	if err != nil {
		return nil, err
	}

	url, err := srv.storage.Upload(ctx, prefix, file)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	if err := save(ctx, identityID, url); err != nil {
		deleteObjects(ctx, srv.storage, srv.log(ctx), url)

		return nil, errors.Wrapf(err, "failed to update %s", prefix)
	}

	current := field(identity)
	previous := *current
	*current = url
	deleteObjects(ctx, srv.storage, srv.log(ctx), previous)

	return identity, nil
}

func (srv *identityService) CurrentIdentity(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	return findIdentity(srv.identityRepo)(ctx, identityID)
}
