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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Auth event labels reported to the metrics recorder.
const (
	authOpRegister = "register"
	authOpLogin    = "login"
	authOpRefresh  = "refresh"
	authOpLogout   = "logout"

	outcomeSuccess   = "success"
	outcomeFailure   = "failure"
	outcomeThrottled = "throttled"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	throttle     service.LoginThrottle
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Throttle     service.LoginThrottle
	Metrics      service.MetricsRecorder `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &sessionService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		throttle:     params.Throttle,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and starts a new session, replacing any previous one.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	email := entity.NormalizeEmail(input.Email)
	if username == "" && email == "" {
		return nil, domainerrors.ErrMissingIdentifier
	}

	throttleKey := username
	if throttleKey == "" {
		throttleKey = email
	}

	allowed, err := srv.throttle.Allow(ctx, throttleKey)
	if err != nil {
		srv.metrics.RecordAuthEvent(authOpLogin, outcomeFailure)

		return nil, errors.Wrap(err, "failed to check login throttle")
	}
	if !allowed {
		srv.metrics.RecordAuthEvent(authOpLogin, outcomeThrottled)
		srv.log(ctx).Warn("Login throttled", slog.String("identifier", throttleKey))

		return nil, domainerrors.ErrTooManyLoginAttempts
	}

	identity, err := srv.identityRepo.FindByHandleOrContact(ctx, username, email)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		srv.recordLoginFailure(ctx, throttleKey)

		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity for login")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.recordLoginFailure(ctx, throttleKey)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := srv.throttle.Reset(ctx, throttleKey); err != nil {
		srv.log(ctx).Warn("Failed to reset login throttle", slog.String("identifier", throttleKey), slog.Any("error", err))
	}

	accessToken, refreshToken, err := issueTokenPair(srv.tokenService, identity)
	if err != nil {
		return nil, err
	}

	if err := srv.identityRepo.SetRefreshToken(ctx, identity.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	srv.metrics.RecordAuthEvent(authOpLogin, outcomeSuccess)
	srv.log(ctx).Info("Identity logged in", slog.String("identityID", identity.ID.String()))

	return &usecase.SessionOutput{
		Identity:     identity.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *sessionService) recordLoginFailure(ctx context.Context, key string) {
	srv.metrics.RecordAuthEvent(authOpLogin, outcomeFailure)
	if err := srv.throttle.RecordFailure(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to record login failure", slog.String("identifier", key), slog.Any("error", err))
	}
}

// Refresh rotates the refresh token. Only the currently stored token may be exchanged, and only once.
func (srv *sessionService) Refresh(ctx context.Context, presented string) (*usecase.SessionOutput, error) {
	presented = strings.TrimSpace(presented)
	if presented == "" {
		srv.metrics.RecordAuthEvent(authOpRefresh, outcomeFailure)

		return nil, domainerrors.ErrRefreshTokenMissing
	}

	output, err := srv.rotate(ctx, presented)
	if err != nil {
		srv.metrics.RecordAuthEvent(authOpRefresh, outcomeFailure)

		return nil, err
	}

	srv.metrics.RecordAuthEvent(authOpRefresh, outcomeSuccess)

	return output, nil
}

func (srv *sessionService) rotate(ctx context.Context, presented string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.VerifyRefresh(presented)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	identity, err := srv.identityRepo.FindByID(ctx, claims.IdentityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load identity for refresh")
	}

	if !identity.HasRefreshToken(presented) {
		srv.log(ctx).Warn("Superseded refresh token presented", slog.String("identityID", identity.ID.String()))

		return nil, domainerrors.ErrRefreshTokenReused
	}

	accessToken, refreshToken, err := issueTokenPair(srv.tokenService, identity)
	if err != nil {
		return nil, err
	}

	err = srv.identityRepo.SwapRefreshToken(ctx, identity.ID, presented, refreshToken)
	if errors.Is(err, repository.ErrRefreshTokenMismatch) {
		srv.log(ctx).Warn("Lost refresh token rotation race", slog.String("identityID", identity.ID.String()))

		return nil, domainerrors.ErrRefreshTokenReused
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return &usecase.SessionOutput{
		Identity:     identity.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout invalidates the stored refresh token. Access tokens stay valid until they expire.
func (srv *sessionService) Logout(ctx context.Context, identityID uuid.UUID) error {
	err := srv.identityRepo.ClearRefreshToken(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		srv.metrics.RecordAuthEvent(authOpLogout, outcomeFailure)

		return domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		srv.metrics.RecordAuthEvent(authOpLogout, outcomeFailure)

		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.metrics.RecordAuthEvent(authOpLogout, outcomeSuccess)
	srv.log(ctx).Info("Identity logged out", slog.String("identityID", identityID.String()))

	return nil
}

func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.VerifyAccess(accessToken)
	if err != nil {
		return nil, domainerrors.ErrAccessTokenInvalid
	}

	identity, err := srv.identityRepo.FindPublicByID(ctx, claims.IdentityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrAccessTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load authenticated identity")
	}

	return identity, nil
}

// issueTokenPair signs a new access and refresh token for identity.
func issueTokenPair(tokens service.TokenService, identity *entity.Identity) (accessToken, refreshToken string, err error) {
	accessToken, err = tokens.IssueAccess(service.AccessClaims{
		IdentityID: identity.ID,
		Username:   identity.Username,
		Email:      identity.Email,
		FullName:   identity.FullName,
	})
	if err != nil {
		return "", "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	refreshToken, err = tokens.IssueRefresh(identity.ID)
	if err != nil {
		return "", "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return accessToken, refreshToken, nil
}
