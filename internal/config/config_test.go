package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SPARK_OBSERVER_ETHEREUM_RPC_URL", "https://api.node.glif.io/rpc/v0")
	t.Setenv("SPARK_OBSERVER_ETHEREUM_CONTRACT_ADDRESS", "0x8460766Edc62B525fc1FA4D628FC79229dC73031")
	t.Setenv("SPARK_OBSERVER_DATABASE_DBNAME", "spark_stats")
}

func TestLoadObserverConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadObserverConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, uint64(1900), cfg.Ethereum.SafetyWindow)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5432, cfg.Participation.Port)
	assert.Equal(t, 30*time.Second, cfg.Rewards.HTTPTimeout)
	assert.Equal(t, 10, cfg.Rewards.PoolSize)
	assert.Equal(t, "@every 10m", cfg.Scheduler.TransfersSchedule)
	assert.Equal(t, "@every 6h", cfg.Scheduler.ScheduledRewardsSchedule)
	assert.Equal(t, 3, cfg.ParticipationLookbackDays)
}

func TestLoadObserverConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPARK_OBSERVER_ETHEREUM_SAFETY_WINDOW", "1000")
	t.Setenv("SPARK_OBSERVER_DATABASE_HOST", "db.internal")
	t.Setenv("SPARK_OBSERVER_DATABASE_PORT", "5433")
	t.Setenv("SPARK_OBSERVER_REWARDS_API_URL", "https://spark-rewards.fly.dev")
	t.Setenv("SPARK_OBSERVER_SCHEDULER_TRANSFERS_SCHEDULE", "@every 1m")
	t.Setenv("SPARK_OBSERVER_PARTICIPATION_LOOKBACK_DAYS", "7")

	cfg, err := LoadObserverConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), cfg.Ethereum.SafetyWindow)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "https://spark-rewards.fly.dev", cfg.Rewards.APIURL)
	assert.Equal(t, "@every 1m", cfg.Scheduler.TransfersSchedule)
	assert.Equal(t, 7, cfg.ParticipationLookbackDays)
}

func TestLoadObserverConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{"missing rpc url", "SPARK_OBSERVER_ETHEREUM_RPC_URL", "ethereum.rpc_url is required"},
		{"missing contract address", "SPARK_OBSERVER_ETHEREUM_CONTRACT_ADDRESS", "ethereum.contract_address is required"},
		{"missing dbname", "SPARK_OBSERVER_DATABASE_DBNAME", "database.dbname is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := LoadObserverConfig("", t.TempDir())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "spark_stats",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=spark_stats sslmode=disable",
		cfg.DSN())
}
