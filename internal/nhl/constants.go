package nhl

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second

	// The public NHL API rejects requests without a browser-looking agent.
	userAgent = "Mozilla/5.0"
)
