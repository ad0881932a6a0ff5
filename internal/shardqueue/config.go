package shardqueue

import "time"

// Config tunes a ShardExecutor. The zero value gets sane defaults applied by
// NewShardExecutor.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int

	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int

	// EnqueueTimeout bounds how long Submit waits for queue space before
	// giving up with a QueueFullError.
	EnqueueTimeout time.Duration

	// ErrorHandler, when non-nil, receives every job error. It runs on the
	// shard worker goroutine and must not block for long.
	ErrorHandler func(error)
}
