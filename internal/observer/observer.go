package observer

import (
	"time"

	"github.com/CheckerNetwork/spark-observer/internal/adapter"
	"github.com/CheckerNetwork/spark-observer/internal/participant"
	"github.com/CheckerNetwork/spark-observer/internal/providers/ethereum"
	"github.com/CheckerNetwork/spark-observer/internal/providers/rewards"
	"github.com/CheckerNetwork/spark-observer/internal/store"
)

// Config holds the configuration for the observer passes
type Config struct {
	// SafetyWindow is the number of trailing blocks the RPC provider is
	// guaranteed to serve; scans older than that are clamped
	SafetyWindow uint64
	// ParticipationLookback selects the fan-out set for the scheduled-rewards
	// refresh (participants active within this window)
	ParticipationLookback time.Duration
	// RewardsPoolSize bounds the scheduled-rewards fan-out concurrency
	RewardsPoolSize int
}

// Observer runs the two ingestion passes: the cursor-bounded transfer scan
// and the scheduled-rewards refresh. Passes may overlap with themselves and
// with each other; all cross-invocation safety lives in the storage layer's
// conflict resolution.
type Observer struct {
	stats         store.StatsStore
	participation store.ParticipationStore
	resolver      *participant.Resolver
	chain         ethereum.ChainClient
	rewards       rewards.Client
	clock         adapter.Clock
	config        Config
}

// New creates a new observer
func New(
	stats store.StatsStore,
	participation store.ParticipationStore,
	resolver *participant.Resolver,
	chain ethereum.ChainClient,
	rewardsClient rewards.Client,
	clock adapter.Clock,
	cfg Config,
) *Observer {
	return &Observer{
		stats:         stats,
		participation: participation,
		resolver:      resolver,
		chain:         chain,
		rewards:       rewardsClient,
		clock:         clock,
		config:        cfg,
	}
}
