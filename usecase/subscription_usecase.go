package usecase

import (
	"context"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (*dto.ResSubscribed, error)
	Subscribers(ctx context.Context, channelID string) ([]model.ChannelSubscriber, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error)
}

type subscriptionUsecase struct {
	subscriptionRepository repository.ISubscription
	userRepository         repository.IUser
}

func NewSubscriptionUsecase(subscriptionRepository repository.ISubscription, userRepository repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{subscriptionRepository: subscriptionRepository, userRepository: userRepository}
}

// Toggle flips the subscription state for the pair; the returned flag is the
// state after the call.
func (u *subscriptionUsecase) Toggle(ctx context.Context, subscriberID, channelID string) (*dto.ResSubscribed, error) {
	channel, err := utils.ParseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	subscriber, err := utils.ParseObjectID(subscriberID, "user id")
	if err != nil {
		return nil, err
	}
	if channel == subscriber {
		return nil, apperror.Validation("You cannot subscribe to your own channel")
	}

	channelUser, err := u.userRepository.GetByID(ctx, channel)
	if err != nil {
		return nil, err
	}
	if channelUser == nil {
		return nil, apperror.NotFound("Channel does not exist")
	}

	existing, err := u.subscriptionRepository.Find(ctx, subscriber, channel)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.subscriptionRepository.Delete(ctx, subscriber, channel); err != nil {
			return nil, err
		}
		return &dto.ResSubscribed{Subscribed: false}, nil
	}

	if err := u.subscriptionRepository.Create(ctx, subscriber, channel); err != nil {
		return nil, err
	}
	return &dto.ResSubscribed{Subscribed: true}, nil
}

func (u *subscriptionUsecase) Subscribers(ctx context.Context, channelID string) ([]model.ChannelSubscriber, error) {
	channel, err := utils.ParseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	return u.subscriptionRepository.Subscribers(ctx, channel)
}

func (u *subscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberID string) ([]model.SubscribedChannel, error) {
	subscriber, err := utils.ParseObjectID(subscriberID, "user id")
	if err != nil {
		return nil, err
	}
	return u.subscriptionRepository.SubscribedChannels(ctx, subscriber)
}
