package rewards_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CheckerNetwork/spark-observer/internal/mocks"
	"github.com/CheckerNetwork/spark-observer/internal/providers/rewards"
)

func TestScheduledRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Get(ctx, "https://spark-rewards.fly.dev/scheduled-rewards/0xaaa", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			// Values exceed uint64, the service encodes them as a decimal string
			*result.(*string) = "123456789012345678901234567890"
			return nil
		})

	client := rewards.NewClient("https://spark-rewards.fly.dev/", httpClient)
	value, err := client.ScheduledRewards(ctx, "0xaaa")
	require.NoError(t, err)

	expected, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, expected, value)
}

func TestScheduledRewards_InvalidValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			*result.(*string) = "not-a-number"
			return nil
		})

	client := rewards.NewClient("https://spark-rewards.fly.dev", httpClient)
	_, err := client.ScheduledRewards(ctx, "0xaaa")
	assert.ErrorContains(t, err, "invalid scheduled rewards value")
}

func TestScheduledRewards_RequestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	requestErr := errors.New("unexpected status code 500")
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(requestErr)

	client := rewards.NewClient("https://spark-rewards.fly.dev", httpClient)
	_, err := client.ScheduledRewards(ctx, "0xaaa")
	assert.ErrorIs(t, err, requestErr)
}
