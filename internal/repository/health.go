package repository

import "context"

// ストアの疎通確認（/healthz 用）
type Pinger interface {
	Ping(ctx context.Context) error
}
