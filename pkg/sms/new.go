package sms

import (
	"net/http"
	"time"

	"ujenzi-notify/pkg/log"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// New builds an SMS gateway client from the given configuration.
func New(l log.Logger, cfg Config) (ISMS, error) {
	if cfg.Username == "" || cfg.APIKey == "" {
		return nil, errCredentialsRequired
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implSMS{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(cfg.Timeout),
	}, nil
}
