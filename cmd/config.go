package cmd

import "time"

// Config carries all runtime settings for the fulfillment service.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	OverdueGracePeriod time.Duration
}
