package models

import "time"

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig holds NSQ connection configuration
type NSQConfig struct {
	Address         string   `mapstructure:"address"`
	LookupAddresses []string `mapstructure:"lookup_addresses"`
	Channel         string   `mapstructure:"channel"`
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// DispatchConfig holds the tunables of the dispatch engine
type DispatchConfig struct {
	OfferTimeout  time.Duration `mapstructure:"offer_timeout"`
	SearchRadiusM float64       `mapstructure:"search_radius_m"`
	StandLimit    int           `mapstructure:"stand_limit"`
	GeofenceM     float64       `mapstructure:"geofence_m"`
	OTPTTL        time.Duration `mapstructure:"otp_ttl"`
	FarePerKm     float64       `mapstructure:"fare_per_km"`
	BaseFare      float64       `mapstructure:"base_fare"`
}
