package subscription

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
)

type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}

type SubscriptionService interface {
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*ToggleResult, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error)
}

type subscriptionService struct {
	subscriptionRepo SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

func (s *subscriptionService) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*ToggleResult, error) {
	if subscriber == channel {
		return nil, common.ErrForbidden("You cannot subscribe to your own channel")
	}
	if err := s.requireUser(ctx, channel, "Channel not found"); err != nil {
		return nil, err
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, subscriber, channel)
	if err != nil {
		return nil, common.ErrInternal("Failed to toggle subscription", err)
	}
	return &ToggleResult{Subscribed: subscribed}, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error) {
	if err := s.requireUser(ctx, channel, "Channel not found"); err != nil {
		return nil, err
	}

	page, err := s.subscriptionRepo.Subscribers(ctx, channel, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch subscribers", err)
	}
	return page, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error) {
	if err := s.requireUser(ctx, subscriber, "Subscriber not found"); err != nil {
		return nil, err
	}

	page, err := s.subscriptionRepo.SubscribedChannels(ctx, subscriber, params)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch subscribed channels", err)
	}
	return page, nil
}

func (s *subscriptionService) requireUser(ctx context.Context, id primitive.ObjectID, notFound string) error {
	ok, err := s.subscriptionRepo.UserExists(ctx, id)
	if err != nil {
		return common.ErrInternal("Failed to load user", err)
	}
	if !ok {
		return common.ErrNotFound(notFound)
	}
	return nil
}
