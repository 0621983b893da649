// Package httpx builds the resty clients used for all outbound HTTP. Every
// client carries a fixed timeout and no retry policy: a slow or failed fetch
// is reported once as missing data.
package httpx

import (
	"time"

	"github.com/go-resty/resty/v2"
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

func New(opts Options) *resty.Client {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}

	c := resty.New().SetTimeout(opts.Timeout)
	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	return c
}
