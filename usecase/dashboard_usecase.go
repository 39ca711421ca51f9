package usecase

import (
	"context"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type IDashboardUsecase interface {
	Stats(ctx context.Context, channelID string) (*model.ChannelStats, error)
	Videos(ctx context.Context, channelID string) ([]model.ChannelVideo, error)
}

type dashboardUsecase struct {
	dashboardRepository repository.IDashboard
	statsCache          repository.IStatsCache
}

func NewDashboardUsecase(dashboardRepository repository.IDashboard, statsCache repository.IStatsCache) IDashboardUsecase {
	return &dashboardUsecase{dashboardRepository: dashboardRepository, statsCache: statsCache}
}

// Stats serves the channel totals through a short-TTL cache; the aggregation
// only runs on a miss.
func (u *dashboardUsecase) Stats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	channel, err := utils.ParseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}

	if cached, err := u.statsCache.GetChannelStats(ctx, channel.Hex()); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := u.dashboardRepository.ChannelStats(ctx, channel)
	if err != nil {
		return nil, err
	}
	u.statsCache.SetChannelStats(ctx, channel.Hex(), stats)
	return stats, nil
}

func (u *dashboardUsecase) Videos(ctx context.Context, channelID string) ([]model.ChannelVideo, error) {
	channel, err := utils.ParseObjectID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	return u.dashboardRepository.ChannelVideos(ctx, channel)
}
