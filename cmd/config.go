package cmd

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string

	RedisAddr     string
	RedisPassword string
	MenuCacheTTL  time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxRelaySchedule    string
	OutboxRelayBatch       int
}

// DSN renders the PostgreSQL connection URL understood by both lib/pq and pgx.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits KafkaHost on commas. An empty host disables the relay.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
