package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/model"
	"vidtube/usecase"
)

func TestStatsCacheHitSkipsAggregation(t *testing.T) {
	dashRepo := new(MockDashboardRepository)
	statsCache := new(MockStatsCache)
	uc := usecase.NewDashboardUsecase(dashRepo, statsCache)

	cached := &model.ChannelStats{TotalSubs: 7, TotalVideos: 3, TotalViews: 900, TotalLikes: 42}
	statsCache.On("GetChannelStats", mock.Anything, testUserHex).Return(cached, nil).Once()

	stats, err := uc.Stats(context.Background(), testUserHex)
	require.NoError(t, err)
	assert.Equal(t, cached, stats)
	dashRepo.AssertNotCalled(t, "ChannelStats")
}

func TestStatsCacheMissRunsAggregationAndPopulates(t *testing.T) {
	dashRepo := new(MockDashboardRepository)
	statsCache := new(MockStatsCache)
	uc := usecase.NewDashboardUsecase(dashRepo, statsCache)

	channel, _ := bson.ObjectIDFromHex(testUserHex)
	fresh := &model.ChannelStats{TotalSubs: 1}

	statsCache.On("GetChannelStats", mock.Anything, testUserHex).Return(nil, nil).Once()
	dashRepo.On("ChannelStats", mock.Anything, channel).Return(fresh, nil).Once()
	statsCache.On("SetChannelStats", mock.Anything, testUserHex, fresh).Once()

	stats, err := uc.Stats(context.Background(), testUserHex)
	require.NoError(t, err)
	assert.Equal(t, fresh, stats)

	dashRepo.AssertExpectations(t)
	statsCache.AssertExpectations(t)
}

func TestStatsZeroActivityChannelIsValid(t *testing.T) {
	dashRepo := new(MockDashboardRepository)
	statsCache := new(MockStatsCache)
	uc := usecase.NewDashboardUsecase(dashRepo, statsCache)

	channel, _ := bson.ObjectIDFromHex(testUserHex)
	zeros := &model.ChannelStats{}

	statsCache.On("GetChannelStats", mock.Anything, testUserHex).Return(nil, nil).Once()
	dashRepo.On("ChannelStats", mock.Anything, channel).Return(zeros, nil).Once()
	statsCache.On("SetChannelStats", mock.Anything, testUserHex, zeros).Once()

	stats, err := uc.Stats(context.Background(), testUserHex)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalSubs)
	assert.Equal(t, int64(0), stats.TotalViews)
}

func TestChannelVideos(t *testing.T) {
	dashRepo := new(MockDashboardRepository)
	uc := usecase.NewDashboardUsecase(dashRepo, new(MockStatsCache))

	channel, _ := bson.ObjectIDFromHex(testUserHex)
	dashRepo.On("ChannelVideos", mock.Anything, channel).
		Return([]model.ChannelVideo{{Title: "clip"}}, nil).Once()

	videos, err := uc.Videos(context.Background(), testUserHex)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}
