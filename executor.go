package restclient

import (
	"context"

	"github.com/harborline/restclient/internal/shardqueue"
)

// executor abstracts the internal async job runner used by FetchAsync.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

// Note: all clients include an executor by default; async fetches require it.
