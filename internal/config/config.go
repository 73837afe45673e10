package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Analysis      Analysis      `mapstructure:",squash"`
	AnalysisSweep AnalysisSweep `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr        string `mapstructure:"redis_addr"`
	Password    string `mapstructure:"redis_password"`
	DB          int    `mapstructure:"redis_db"`
	CacheTTLMin int    `mapstructure:"redis_cache_ttl_minutes"`
	Enabled     bool   `mapstructure:"redis_cache_enabled"`
}

// Analysis reúne as constantes heurísticas do motor de análise. Os valores de
// negócio (multiplicadores de classificação, descontos de projeção, frações de
// recuperação) são configuração nomeada para poderem ser ajustados e testados
// sem mexer no algoritmo.
type Analysis struct {
	LookbackDays        int     `mapstructure:"analysis_lookback_days"`
	FetchTimeoutSeconds int     `mapstructure:"analysis_fetch_timeout_seconds"`
	FetchRetryBackoffMs int     `mapstructure:"analysis_fetch_retry_backoff_ms"`
	MinDataPoints       int     `mapstructure:"analysis_min_data_points"`
	RecoveryFraction    float64 `mapstructure:"analysis_recovery_fraction"`

	// Projeção financeira
	RealizationDiscount   float64 `mapstructure:"analysis_realization_discount"`
	WorstCaseMultiplier   float64 `mapstructure:"analysis_worst_case_multiplier"`
	OpportunityCostFactor float64 `mapstructure:"analysis_opportunity_cost_factor"`
	ConfidenceLowerBand   float64 `mapstructure:"analysis_confidence_lower_band"`
	ConfidenceUpperBand   float64 `mapstructure:"analysis_confidence_upper_band"`
	FallbackImprovement   float64 `mapstructure:"analysis_fallback_improvement"`

	// Limiares de classificação por dimensão
	Demographic DimensionThresholds `mapstructure:"-"`
	Placement   DimensionThresholds `mapstructure:"-"`
	Geographic  DimensionThresholds `mapstructure:"-"`
	Temporal    DimensionThresholds `mapstructure:"-"`
}

// DimensionThresholds são os limiares de classificação de uma dimensão. Os
// dois conjuntos (top e under) são independentes entre si e entre dimensões.
type DimensionThresholds struct {
	TopMultiplier   float64
	MinConversions  int64
	UnderMultiplier float64
	MinSpend        float64
}

type AnalysisSweep struct {
	CronSchedule      string `mapstructure:"analysis_sweep_cron"`
	MaxConcurrentJobs int    `mapstructure:"analysis_sweep_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"analysis_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adoptimizer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL_MINUTES", 30) // Análises profundas valem por 30 minutos
	viper.SetDefault("REDIS_CACHE_ENABLED", false)

	viper.SetDefault("ANALYSIS_LOOKBACK_DAYS", 30)
	viper.SetDefault("ANALYSIS_FETCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("ANALYSIS_FETCH_RETRY_BACKOFF_MS", 200)
	viper.SetDefault("ANALYSIS_MIN_DATA_POINTS", 1)
	viper.SetDefault("ANALYSIS_RECOVERY_FRACTION", 0.7)

	viper.SetDefault("ANALYSIS_REALIZATION_DISCOUNT", 0.3)
	viper.SetDefault("ANALYSIS_WORST_CASE_MULTIPLIER", 0.8)
	viper.SetDefault("ANALYSIS_OPPORTUNITY_COST_FACTOR", 2.0)
	viper.SetDefault("ANALYSIS_CONFIDENCE_LOWER_BAND", 0.85)
	viper.SetDefault("ANALYSIS_CONFIDENCE_UPPER_BAND", 1.15)
	viper.SetDefault("ANALYSIS_FALLBACK_IMPROVEMENT", 0.5)

	viper.SetDefault("ANALYSIS_SWEEP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ANALYSIS_SWEEP_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ANALYSIS_SWEEP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Limiares calibrados por dimensão. Top e under são independentes.
	config.Analysis.Demographic = DimensionThresholds{TopMultiplier: 2.0, MinConversions: 3, UnderMultiplier: 0.5, MinSpend: 50}
	config.Analysis.Placement = DimensionThresholds{TopMultiplier: 1.5, MinConversions: 2, UnderMultiplier: 0.6, MinSpend: 30}
	config.Analysis.Geographic = DimensionThresholds{TopMultiplier: 1.8, MinConversions: 3, UnderMultiplier: 0.5, MinSpend: 40}
	config.Analysis.Temporal = DimensionThresholds{TopMultiplier: 2.0, MinConversions: 2, UnderMultiplier: 0.4, MinSpend: 20}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, seguindo apenas com variáveis de ambiente")
}
