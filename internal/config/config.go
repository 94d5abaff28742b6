package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// EthereumConfig holds the chain source configuration
type EthereumConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ContractAddress string `mapstructure:"contract_address"`
	// SafetyWindow is the number of trailing blocks the RPC provider retains
	SafetyWindow uint64 `mapstructure:"safety_window"`
}

// RewardsConfig holds the off-chain rewards ledger configuration
type RewardsConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	PoolSize    int           `mapstructure:"pool_size"`
}

// SchedulerConfig holds the cron schedules for the two ingestion passes
type SchedulerConfig struct {
	TransfersSchedule        string `mapstructure:"transfers_schedule"`
	ScheduledRewardsSchedule string `mapstructure:"scheduled_rewards_schedule"`
}

// ObserverConfig holds configuration for the observer service
type ObserverConfig struct {
	BaseConfig `mapstructure:",squash"`
	// Database is the stats schema (participants + rollups)
	Database DatabaseConfig `mapstructure:"database"`
	// Participation is the recent-activity ledger schema (read-only)
	Participation DatabaseConfig  `mapstructure:"participation"`
	Ethereum      EthereumConfig  `mapstructure:"ethereum"`
	Rewards       RewardsConfig   `mapstructure:"rewards"`
	Scheduler     SchedulerConfig `mapstructure:"scheduler"`
	// ParticipationLookbackDays selects the scheduled-rewards fan-out set
	ParticipationLookbackDays int `mapstructure:"participation_lookback_days"`
}

// LoadObserverConfig loads configuration for the observer service
func LoadObserverConfig(configFile string, envPath string) (*ObserverConfig, error) {
	v := configureViper("observer", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("participation.port", 5432)
	v.SetDefault("participation.sslmode", "disable")
	// GLIF only serves the most recent 2000 blocks; stay inside that
	v.SetDefault("ethereum.safety_window", 1900)
	v.SetDefault("rewards.http_timeout", "30s")
	v.SetDefault("rewards.pool_size", 10)
	v.SetDefault("scheduler.transfers_schedule", "@every 10m")
	v.SetDefault("scheduler.scheduled_rewards_schedule", "@every 6h")
	v.SetDefault("participation_lookback_days", 3)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config ObserverConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Ethereum.RPCURL == "" {
		return nil, errors.New("ethereum.rpc_url is required")
	}
	if config.Ethereum.ContractAddress == "" {
		return nil, errors.New("ethereum.contract_address is required")
	}
	if config.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("SPARK_OBSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no
// config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Stats database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Participation ledger database
		"participation.host",
		"participation.port",
		"participation.user",
		"participation.password",
		"participation.dbname",
		"participation.sslmode",
		"participation.max_open_conns",
		"participation.max_idle_conns",
		"participation.conn_max_lifetime",
		"participation.conn_max_idle_time",
		// Chain source
		"ethereum.rpc_url",
		"ethereum.contract_address",
		"ethereum.safety_window",
		// Off-chain rewards ledger
		"rewards.api_url",
		"rewards.http_timeout",
		"rewards.pool_size",
		// Scheduler
		"scheduler.transfers_schedule",
		"scheduler.scheduled_rewards_schedule",
		"participation_lookback_days",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
