package tweet

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

const maxContentLength = 280

type TweetService interface {
	Create(ctx context.Context, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	ListForUser(ctx context.Context, userID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error)
	Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
	CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error
}

type tweetService struct {
	tweetRepo TweetRepository
}

func NewTweetService(tweetRepo TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

func validContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", common.ErrValidation("Content is required")
	}
	if len([]rune(content)) > maxContentLength {
		return "", common.ErrValidation("Tweet must be at most 280 characters")
	}
	return content, nil
}

func (s *tweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}

	tweet := &dbmongo.Tweet{Content: content, Owner: owner}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, common.ErrInternal("Failed to create tweet", err)
	}
	return tweet, nil
}

func (s *tweetService) ListForUser(ctx context.Context, userID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error) {
	ok, err := s.tweetRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.ErrInternal("Failed to load user", err)
	}
	if !ok {
		return nil, common.ErrNotFound("User not found")
	}

	page, err := s.tweetRepo.ListForUser(ctx, userID, viewer, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch tweets", err)
	}
	return page, nil
}

func (s *tweetService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	if err := s.requireOwner(ctx, id, owner); err != nil {
		return nil, err
	}
	content, err := validContent(content)
	if err != nil {
		return nil, err
	}

	tweet, err := s.tweetRepo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, lookupError(err)
	}
	return tweet, nil
}

func (s *tweetService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if err := s.requireOwner(ctx, id, owner); err != nil {
		return err
	}
	if err := s.tweetRepo.Delete(ctx, id); err != nil {
		return lookupError(err)
	}
	return nil
}

func (s *tweetService) CheckOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	return s.requireOwner(ctx, id, owner)
}

func (s *tweetService) requireOwner(ctx context.Context, id, owner primitive.ObjectID) error {
	tweet, err := s.tweetRepo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err)
	}
	if tweet.Owner != owner {
		return common.ErrForbidden("You are not the owner of this tweet")
	}
	return nil
}

func lookupError(err error) error {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.ErrNotFound("Tweet not found")
	}
	return common.ErrInternal("Failed to access tweet", err)
}
