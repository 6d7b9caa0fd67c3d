package redis

import (
	"context"
	"time"
)

const revokedKeyPrefix = "revoked:"

// RevocationList implements tokens.RevocationList on Redis. Entries expire
// with the token they blacklist, so the set never needs sweeping.
type RevocationList struct {
	client *Client
}

func NewRevocationList(client *Client) *RevocationList {
	return &RevocationList{client: client}
}

func (r *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to blacklist.
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl)
}

func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return r.client.Exists(ctx, revokedKeyPrefix+jti)
}
