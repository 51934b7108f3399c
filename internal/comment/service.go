package comment

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

const maxContentLength = 1000

type CommentService interface {
	Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*dbmongo.Comment, error)
	List(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error)
	Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Comment, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
	CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error
}

type commentService struct {
	commentRepo CommentRepository
}

func NewCommentService(commentRepo CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func validContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", common.ErrValidation("Content is required")
	}
	if len([]rune(content)) > maxContentLength {
		return "", common.ErrValidation("Content is too long")
	}
	return content, nil
}

func (s *commentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}
	if err := s.requireVideo(ctx, videoID); err != nil {
		return nil, err
	}

	comment := &dbmongo.Comment{Content: content, Video: videoID, Owner: owner}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, common.ErrInternal("Failed to add comment", err)
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error) {
	if err := s.requireVideo(ctx, videoID); err != nil {
		return nil, err
	}

	page, err := s.commentRepo.ListForVideo(ctx, videoID, viewer, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch comments", err)
	}
	return page, nil
}

func (s *commentService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	if err := s.requireOwner(ctx, id, owner); err != nil {
		return nil, err
	}
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, lookupError(err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.requireOwner(ctx, id, owner); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return lookupError(err)
	}
	return nil
}

// CheckOwner reports 404 for a missing comment and 403 for anyone but its owner.
func (s *commentService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return s.requireOwner(ctx, id, owner)
}

func (s *commentService) requireVideo(ctx context.Context, videoID primitive.ObjectID) error {
	ok, err := s.commentRepo.VideoExists(ctx, videoID)
	if err != nil {
		return common.ErrInternal("Failed to load video", err)
	}
	if !ok {
		return common.ErrNotFound("Video not found")
	}
	return nil
}

func (s *commentService) requireOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err)
	}
	if comment.Owner != owner {
		return common.ErrForbidden("You are not the owner of this comment")
	}
	return nil
}

func lookupError(err error) error {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrNotFound("Comment not found")
	}
	return common.ErrInternal("Failed to access comment", err)
}
