// Package client delivers group messages to a grouplog collector. It is the
// producer side of the contract: one POST per message, no retry, no queue.
// Package client 将群消息投递到 grouplog 收集器：每条消息一次 POST，不重试、不排队。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	errs "github.com/livp123/grouplog/pkg/errors"
)

// DefaultEndpoint is the collector's ingestion URL.
const DefaultEndpoint = "http://localhost:8300/log"

// Message is the payload the collector accepts.
// Message 是收集器接受的消息体。
type Message struct {
	Group     string `json:"group"`
	From      string `json:"from"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Client posts messages to one endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.SugaredLogger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used by Relay.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client. An empty endpoint uses DefaultEndpoint.
// New 创建客户端，空地址使用 DefaultEndpoint。
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the target URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send performs a single POST. Transport failures and non-2xx statuses are
// returned as ErrDeliveryFailed.
// Send 执行一次 POST，传输失败或非 2xx 状态返回 ErrDeliveryFailed。
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.NewDeliveryError(c.endpoint, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewDeliveryError(c.endpoint, 0, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewDeliveryError(c.endpoint, resp.StatusCode, nil)
	}
	return nil
}

// Relay is the best-effort variant of Send: a failure is logged and the
// message is dropped. It reports whether the message was delivered.
// Relay 是 Send 的尽力而为版本：失败时记录日志并丢弃消息。
func (c *Client) Relay(ctx context.Context, msg Message) bool {
	c.log.Infof("📨 %s: %s > %s", msg.Group, msg.From, msg.Text)
	if err := c.Send(ctx, msg); err != nil {
		c.log.Errorf("❌ Failed to deliver to collector: %v", err)
		return false
	}
	return true
}
