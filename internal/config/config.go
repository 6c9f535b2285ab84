package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Mailgun   MailgunConfig   `yaml:"mailgun"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"slipway"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig controls the availability snapshot cache. An empty addr disables
// caching and every availability query recomputes from Postgres.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"60s" validate:"gt=0"`
}

// BookingConfig holds the club's admission rules. Times of day are offsets
// from local midnight in Timezone.
type BookingConfig struct {
	Timezone           string        `yaml:"timezone"             env:"BOOKING_TIMEZONE"             env-default:"America/Chicago" validate:"required"`
	DayStart           time.Duration `yaml:"day_start"            env:"BOOKING_DAY_START"            env-default:"6h"              validate:"gte=0"`
	DayEnd             time.Duration `yaml:"day_end"              env:"BOOKING_DAY_END"              env-default:"20h"             validate:"gt=0"`
	MinDuration        time.Duration `yaml:"min_duration"         env:"BOOKING_MIN_DURATION"         env-default:"2h"              validate:"gt=0"`
	MaxDuration        time.Duration `yaml:"max_duration"         env:"BOOKING_MAX_DURATION"         env-default:"6h"              validate:"gt=0"`
	Granularity        time.Duration `yaml:"granularity"          env:"BOOKING_GRANULARITY"          env-default:"30m"             validate:"gt=0"`
	HorizonDays        int           `yaml:"horizon_days"         env:"BOOKING_HORIZON_DAYS"         env-default:"60"              validate:"gt=0"`
	MaxPending         int           `yaml:"max_pending"          env:"BOOKING_MAX_PENDING"          env-default:"7"               validate:"gt=0"`
	MaxConsecutiveDays int           `yaml:"max_consecutive_days" env:"BOOKING_MAX_CONSECUTIVE_DAYS" env-default:"3"               validate:"gt=0"`
	LockTimeout        time.Duration `yaml:"lock_timeout"         env:"BOOKING_LOCK_TIMEOUT"         env-default:"3s"              validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"15m" validate:"required,gt=0"`
}

// MailgunConfig with an empty api key disables outbound mail.
type MailgunConfig struct {
	Domain string `yaml:"domain"  env:"MAILGUN_DOMAIN"  env-default:""`
	APIKey string `yaml:"api_key" env:"MAILGUN_API_KEY" env-default:""`
	From   string `yaml:"from"    env:"MAILGUN_FROM"    env-default:""`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
