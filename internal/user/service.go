package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
	"vidtube/internal/media"
)

type RegisterInput struct {
	Username   string
	Fullname   string
	Email      string
	Password   string
	Avatar     *common.LocalFile
	CoverImage *common.LocalFile
}

// Tokens is a freshly issued access/refresh pair.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error)
	Login(ctx context.Context, username, email, password string) (*dbmongo.User, *Tokens, error)
	Logout(ctx context.Context, userID primitive.ObjectID, accessToken string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullname, email string) (*dbmongo.User, error)
	UpdateImage(ctx context.Context, userID primitive.ObjectID, field ImageField, file *common.LocalFile) (*dbmongo.User, error)
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]dbmongo.VideoRow, error)
}

type userService struct {
	userRepo UserRepository
	storage  common.ObjectStorage
	tokens   *common.TokenManager
	denylist common.Denylist
}

func NewUserService(userRepo UserRepository, storage common.ObjectStorage, tokens *common.TokenManager, denylist common.Denylist) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		tokens:   tokens,
		denylist: denylist,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*dbmongo.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullname := strings.TrimSpace(in.Fullname)

	if username == "" || email == "" || fullname == "" || in.Password == "" {
		return nil, common.ErrValidation("All fields are required")
	}
	if err := common.ValidateUsername(username); err != nil {
		return nil, common.ErrValidation(err.Error())
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, common.ErrValidation(err.Error())
	}
	if err := common.ValidatePassword(in.Password); err != nil {
		return nil, common.ErrValidation(err.Error())
	}
	if in.Avatar == nil {
		return nil, common.ErrValidation("Avatar file is required")
	}

	exists, err := s.userRepo.Exists(ctx, username, email)
	if err != nil {
		return nil, common.ErrInternal("Failed to register user", err)
	}
	if exists {
		return nil, common.ErrConflict("User with email or username already exists")
	}

	hash, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, common.ErrInternal("Failed to register user", err)
	}

	avatarURL, err := media.Forward(ctx, s.storage, in.Avatar)
	if err != nil {
		return nil, common.ErrInternal("Failed to upload avatar", err)
	}
	coverURL, err := media.Forward(ctx, s.storage, in.CoverImage)
	if err != nil {
		s.deleteMedia(ctx, avatarURL)
		return nil, common.ErrInternal("Failed to upload cover image", err)
	}

	user := &dbmongo.User{
		Username:   username,
		Email:      email,
		Fullname:   fullname,
		Password:   hash,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.deleteMedia(ctx, avatarURL, coverURL)
		if errors.Is(err, dbmongo.ErrDuplicate) {
			return nil, common.ErrConflict("User with email or username already exists")
		}
		return nil, common.ErrInternal("Failed to register user", err)
	}

	logging.FromContext(ctx).Info("user registered", "user_id", user.ID.Hex(), "username", user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, email, password string) (*dbmongo.User, *Tokens, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" && email == "" {
		return nil, nil, common.ErrValidation("Username or email is required")
	}
	if password == "" {
		return nil, nil, common.ErrValidation("Password is required")
	}

	user, err := s.userRepo.FindByLogin(ctx, username, email)
	if err != nil {
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, nil, common.ErrNotFound("User does not exist")
		}
		return nil, nil, common.ErrInternal("Failed to log in", err)
	}

	if err := common.CheckPassword(password, user.Password); err != nil {
		return nil, nil, common.ErrUnauthorized("Invalid user credentials")
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// issueTokens signs a new pair and persists the refresh token so that only
// the latest one can be exchanged.
func (s *userService) issueTokens(ctx context.Context, user *dbmongo.User) (*Tokens, error) {
	access, err := s.tokens.IssueAccess(common.TokenIdentity{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Fullname: user.Fullname,
	})
	if err != nil {
		return nil, common.ErrInternal("Failed to generate tokens", err)
	}
	refresh, err := s.tokens.IssueRefresh(user.ID.Hex())
	if err != nil {
		return nil, common.ErrInternal("Failed to generate tokens", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, common.ErrInternal("Failed to generate tokens", err)
	}
	user.RefreshToken = refresh
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) Logout(ctx context.Context, userID primitive.ObjectID, accessToken string) error {
	if err := s.userRepo.SetRefreshToken(ctx, userID, ""); err != nil && !errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrInternal("Failed to log out", err)
	}

	if accessToken == "" {
		return nil
	}
	ttl := s.tokens.AccessTTL()
	if claims, err := s.tokens.VerifyAccess(accessToken); err == nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, accessToken, ttl); err != nil {
		logging.FromContext(ctx).Warn("failed to revoke access token", "user_id", userID.Hex(), "error", err)
	}
	return nil
}

func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*Tokens, error) {
	if refreshToken == "" {
		return nil, common.ErrUnauthorized("Unauthorized request")
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized("Invalid refresh token")
	}
	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, common.ErrUnauthorized("Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, common.ErrUnauthorized("Invalid refresh token")
		}
		return nil, common.ErrInternal("Failed to refresh tokens", err)
	}
	if user.RefreshToken != refreshToken {
		return nil, common.ErrUnauthorized("Refresh token is expired or used")
	}

	return s.issueTokens(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return common.ErrValidation("Old and new password are required")
	}
	if err := common.ValidatePassword(newPassword); err != nil {
		return common.ErrValidation(err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return s.lookupError(err)
	}
	if err := common.CheckPassword(oldPassword, user.Password); err != nil {
		return common.ErrValidation("Invalid old password")
	}

	hash, err := common.HashPassword(newPassword)
	if err != nil {
		return common.ErrInternal("Failed to change password", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return common.ErrInternal("Failed to change password", err)
	}
	return nil
}

func (s *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return user, nil
}

func (s *userService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullname, email string) (*dbmongo.User, error) {
	fullname = strings.TrimSpace(fullname)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullname == "" || email == "" {
		return nil, common.ErrValidation("All fields are required")
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, common.ErrValidation(err.Error())
	}

	user, err := s.userRepo.UpdateAccount(ctx, userID, fullname, email)
	if err != nil {
		if errors.Is(err, dbmongo.ErrDuplicate) {
			return nil, common.ErrConflict("Email is already in use")
		}
		return nil, s.lookupError(err)
	}
	return user, nil
}

// UpdateImage stores the new avatar or cover image, points the user at it and
// removes the image it replaced.
func (s *userService) UpdateImage(ctx context.Context, userID primitive.ObjectID, field ImageField, file *common.LocalFile) (*dbmongo.User, error) {
	if field != AvatarField && field != CoverImageField {
		return nil, common.ErrValidation("Invalid image field")
	}
	if file == nil {
		return nil, common.ErrValidation(string(field) + " file is missing")
	}

	url, err := media.Forward(ctx, s.storage, file)
	if err != nil {
		return nil, common.ErrInternal("Failed to upload "+string(field), err)
	}

	previous, err := s.userRepo.ReplaceImage(ctx, userID, field, url)
	if err != nil {
		s.deleteMedia(ctx, url)
		return nil, s.lookupError(err)
	}
	s.deleteMedia(ctx, previous)

	return s.CurrentUser(ctx, userID)
}

func (s *userService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, common.ErrValidation("Username is missing")
	}

	profile, err := s.userRepo.ChannelProfile(ctx, username, viewer)
	if err != nil {
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, common.ErrNotFound("Channel does not exist")
		}
		return nil, common.ErrInternal("Failed to fetch channel", err)
	}
	return profile, nil
}

func (s *userService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]dbmongo.VideoRow, error) {
	history, err := s.userRepo.WatchHistory(ctx, userID)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return history, nil
}

func (s *userService) lookupError(err error) error {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrNotFound("User not found")
	}
	return common.ErrInternal("Failed to load user", err)
}

// deleteMedia is best effort; a failed delete leaves an orphan but never
// fails the request.
func (s *userService) deleteMedia(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.storage.Delete(ctx, url); err != nil {
			logging.FromContext(ctx).Warn("failed to delete media", "url", url, "error", err)
		}
	}
}
