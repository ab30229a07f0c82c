package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/isola/internal/apperror"
	"github.com/rocketscienceinc/isola/internal/entity"
)

const defaultChannelPrefix = "isola"

// Client relays match events to a pub/sub channel per match.
type Client struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Client {
	if prefix == "" {
		prefix = defaultChannelPrefix
	}

	return &Client{
		client: client,
		prefix: prefix,
	}
}

// Connect - dials addr and checks the connection with a ping.
func Connect(ctx context.Context, addr, prefix string) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrRelayUnavailable, addr, err)
	}

	return New(conn, prefix), nil
}

// Channel - pub/sub channel carrying the events of one match.
func (that *Client) Channel(matchID string) string {
	return that.prefix + ":" + matchID + ":events"
}

// Publish - sends the event as JSON on its match channel.
func (that *Client) Publish(ctx context.Context, event *entity.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.Channel(event.MatchID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
