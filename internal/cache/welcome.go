// Package cache holds the short-lived handoff flags the dashboard consumes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WelcomePayload is stored once after a successful checkout and consumed once
// by the destination dashboard.
type WelcomePayload struct {
	OrderID     string `json:"order_id"`
	PackageName string `json:"package_name"`
	Name        string `json:"name"`
}

type WelcomeFlagStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWelcomeFlagStore(client *redis.Client, ttl time.Duration) *WelcomeFlagStore {
	return &WelcomeFlagStore{client: client, ttl: ttl}
}

func (s *WelcomeFlagStore) Set(ctx context.Context, userID string, payload WelcomePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, welcomeKey(userID), data, s.ttl).Err()
}

// Consume returns the payload and deletes it in one step; a second consume
// finds nothing.
func (s *WelcomeFlagStore) Consume(ctx context.Context, userID string) (*WelcomePayload, error) {
	data, err := s.client.GetDel(ctx, welcomeKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var payload WelcomePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func welcomeKey(userID string) string {
	return fmt.Sprintf("welcome:%s", userID)
}
