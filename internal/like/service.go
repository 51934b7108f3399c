package like

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
	"vidtube/internal/pagination"
)

// ToggleResult is returned by every toggle.
type ToggleResult struct {
	Liked bool `json:"liked"`
}

type LikeService interface {
	Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (*ToggleResult, error)
	ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error)
	LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error)
}

type likeService struct {
	likeRepo LikeRepository
}

func NewLikeService(likeRepo LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (*ToggleResult, error) {
	if err := s.requireTarget(ctx, target, targetID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Toggle(ctx, target, targetID, userID)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle like", err)
	}

	logging.FromContext(ctx).Debug("like toggled", "target", string(target), "target_id", targetID.Hex(), "liked", liked)
	return &ToggleResult{Liked: liked}, nil
}

func (s *likeService) ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error) {
	if err := s.requireTarget(ctx, target, targetID); err != nil {
		return nil, err
	}

	page, err := s.likeRepo.ListForTarget(ctx, target, targetID, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch likes", err)
	}
	return page, nil
}

func (s *likeService) LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error) {
	page, err := s.likeRepo.LikedVideos(ctx, userID, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch liked videos", err)
	}
	return page, nil
}

func (s *likeService) requireTarget(ctx context.Context, target Target, targetID primitive.ObjectID) error {
	if !target.IsValid() {
		return common.ErrValidation("Invalid like target")
	}
	ok, err := s.likeRepo.TargetExists(ctx, target, targetID)
	if err != nil {
		return common.ErrInternal("Failed to load "+string(target), err)
	}
	if !ok {
		return common.ErrNotFound(notFoundMessage(target))
	}
	return nil
}

func notFoundMessage(target Target) string {
	switch target {
	case TargetVideo:
		return "Video not found"
	case TargetComment:
		return "Comment not found"
	default:
		return "Tweet not found"
	}
}
