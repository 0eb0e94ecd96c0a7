package config

import (
	"log"
	"strings"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional config file and the
// environment. Environment variables win, e.g. SERVER_PORT overrides
// server.port from the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file:", err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dispatch")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.channel", "dispatch")

	v.SetDefault("logger.level", "info")

	v.SetDefault("dispatch.offer_timeout", 60*time.Second)
	v.SetDefault("dispatch.search_radius_m", 5000.0)
	v.SetDefault("dispatch.stand_limit", 10)
	v.SetDefault("dispatch.geofence_m", 50.0)
	v.SetDefault("dispatch.otp_ttl", 10*time.Minute)
	v.SetDefault("dispatch.fare_per_km", 15.0)
	v.SetDefault("dispatch.base_fare", 30.0)
}
