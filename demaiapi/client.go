// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demaiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"
)

// DefaultURL - backend used when none is configured
const DefaultURL = "http://localhost:5050"

const (
	defaultTimeout = 30 * time.Second
	requestRate    = 10
	requestBurst   = 20
	maximumBody    = 4 << 20
)

// Client - a backend connection
type Client struct {
	log     *logger.L
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// StatusError - a non-2xx reply
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if "" != e.Detail {
		return e.Detail
	}
	if http.StatusUnauthorized == e.Status {
		return "Invalid wallet authentication. Please reconnect your wallet."
	}
	return fmt.Sprintf("Server error! Status: %d", e.Status)
}

// IsUnauthorised - true for a 401 reply
func IsUnauthorised(err error) bool {
	e, ok := err.(*StatusError)
	return ok && http.StatusUnauthorized == e.Status
}

// New - client for baseURL, empty means DefaultURL; a nil httpClient
// gets one with a default timeout
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if "" == baseURL {
		baseURL = DefaultURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if nil != err {
		return nil, err
	}
	if "http" != u.Scheme && "https" != u.Scheme {
		return nil, fmt.Errorf("unsupported backend scheme: %q", u.Scheme)
	}

	if nil == httpClient {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	return &Client{
		log:     logger.New("demaiapi"),
		base:    u,
		http:    httpClient,
		limiter: rate.NewLimiter(requestRate, requestBurst),
	}, nil
}

// URL - the backend base address
func (c *Client) URL() string {
	return c.base.String()
}

// endpoint path relative to the base, query may be nil
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	if nil != query {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// send one request and decode a JSON reply into reply (which may be nil)
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body interface{}, reply interface{}) error {
	if err := c.limiter.Wait(ctx); nil != err {
		return err
	}

	var reader io.Reader
	if nil != body {
		buffer, err := json.Marshal(body)
		if nil != err {
			return err
		}
		reader = bytes.NewReader(buffer)
	}

	u := c.endpoint(path, query)
	request, err := http.NewRequestWithContext(ctx, method, u, reader)
	if nil != err {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if nil != body {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.http.Do(request)
	if nil != err {
		c.log.Warnf("%s %s: error: %s", method, path, err)
		return err
	}
	defer response.Body.Close()

	buffer, err := io.ReadAll(io.LimitReader(response.Body, maximumBody))
	if nil != err {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		e := &StatusError{
			Status: response.StatusCode,
		}
		var detail struct {
			Detail interface{} `json:"detail"`
		}
		if nil == json.Unmarshal(buffer, &detail) {
			switch d := detail.Detail.(type) {
			case string:
				e.Detail = d
			case nil:
			default:
				if b, err := json.Marshal(d); nil == err {
					e.Detail = string(b)
				}
			}
		}
		c.log.Warnf("%s %s: status: %d  detail: %q", method, path, response.StatusCode, e.Detail)
		return e
	}

	c.log.Debugf("%s %s: status: %d  bytes: %d", method, path, response.StatusCode, len(buffer))

	if nil == reply || 0 == len(buffer) {
		return nil
	}
	return json.Unmarshal(buffer, reply)
}
