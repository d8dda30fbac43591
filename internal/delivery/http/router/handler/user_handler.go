package handler

import (
	"log/slog"
	"net/http"

	"mediahub/config"
	"mediahub/internal/delivery/http/middleware"
	"mediahub/internal/delivery/http/response"
	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	SessionUC  usecase.SessionUsecase
	ChannelUC  usecase.ChannelUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// UserHandler serves account, session and channel profile endpoints.
type UserHandler struct {
	identityUC usecase.IdentityUsecase
	sessionUC  usecase.SessionUsecase
	channelUC  usecase.ChannelUsecase
	cookies    sessionCookies
	logger     *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		identityUC: params.IdentityUC,
		sessionUC:  params.SessionUC,
		channelUC:  params.ChannelUC,
		cookies:    newSessionCookies(params.Config),
		logger:     params.Logger,
	}
}

// RegisterRequest is the multipart form of POST /users/register. Files travel as avatar and coverImage.
type RegisterRequest struct {
	FullName string `form:"fullname"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest accepts either username or email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// SessionResponse is returned by login and refresh. Tokens are also set as cookies.
type SessionResponse struct {
	User         *entity.Identity `json:"user,omitempty"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// Register creates the identity, stores its images and logs it in.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()

	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		return err
	}
	defer closeCover()

	output, err := h.identityUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusCreated, output.Identity, "User Registered Successfully")
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, SessionResponse{
		User:         output.Identity,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "User logged in successfully")
}

// RefreshToken rotates the session. The token is never read from the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	output, err := h.sessionUC.Refresh(c.Request().Context(), middleware.RefreshTokenFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, SessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Access Token Refreshed")
}

func (h *UserHandler) Logout(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), identityID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.Success(c, http.StatusOK, emptyData, "User Logged Out")
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	identity, err := h.identityUC.CurrentIdentity(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Current User Fetched Successfully")
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.identityUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		IdentityID:  identityID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, emptyData, "Password Changed Successfully")
}

// UpdateAccount updates the caller's own account.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.updateAccount(c, identityID, identityID)
}

// UpdateAccountByID updates the account named in the path. Only its owner may do so.
func (h *UserHandler) UpdateAccountByID(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	targetID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	return h.updateAccount(c, actorID, targetID)
}

func (h *UserHandler) updateAccount(c echo.Context, actorID, targetID uuid.UUID) error {
	var req UpdateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.identityUC.UpdateAccount(c.Request().Context(), &usecase.UpdateAccountInput{
		ActorID:  actorID,
		TargetID: targetID,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Account Details Updated Successfully")
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()

	identity, err := h.identityUC.UpdateAvatar(c.Request().Context(), identityID, avatar)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Avatar image updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		return err
	}
	defer closeCover()

	identity, err := h.identityUC.UpdateCoverImage(c.Request().Context(), identityID, cover)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Cover image updated successfully")
}

// ChannelProfile returns the public channel of :username as seen by the caller.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	viewerID, err := callerID(c)
	if err != nil {
		return err
	}

	profile, err := h.channelUC.Profile(c.Request().Context(), viewerID, c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c echo.Context) error {
	identityID, err := callerID(c)
	if err != nil {
		return err
	}

	history, err := h.channelUC.WatchHistory(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Watch history fetched successfully")
}
