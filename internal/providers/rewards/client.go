package rewards

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/CheckerNetwork/spark-observer/internal/adapter"
)

// Client fetches scheduled rewards from the off-chain rewards ledger
//
//go:generate mockgen -source=client.go -destination=../../mocks/rewards.go -package=mocks -mock_names=Client=MockRewardsClient
type Client interface {
	// ScheduledRewards returns the ledger-sourced scheduled rewards for an address
	ScheduledRewards(ctx context.Context, address string) (*big.Int, error)
}

type client struct {
	baseURL string
	http    adapter.HTTPClient
}

// NewClient creates a rewards ledger client
func NewClient(baseURL string, httpClient adapter.HTTPClient) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ScheduledRewards returns the ledger-sourced scheduled rewards for an
// address. The service responds with a JSON-encoded decimal string.
func (c *client) ScheduledRewards(ctx context.Context, address string) (*big.Int, error) {
	var encoded string
	url := fmt.Sprintf("%s/scheduled-rewards/%s", c.baseURL, address)
	if err := c.http.Get(ctx, url, &encoded); err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled rewards for %s: %w", address, err)
	}

	rewards, ok := new(big.Int).SetString(encoded, 10)
	if !ok {
		return nil, fmt.Errorf("invalid scheduled rewards value %q for %s", encoded, address)
	}

	return rewards, nil
}
