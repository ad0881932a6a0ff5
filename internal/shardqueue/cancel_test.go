package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// Submit should return ctx.Err when the caller context is canceled while waiting for a full queue.
func TestSubmit_ContextCanceledWhileWaiting(t *testing.T) {
	cfg := Config{Shards: 1, QueueSize: 1, EnqueueTimeout: time.Second}
	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	// Block the worker with a long job.
	blockCtx, cancelBlock := context.WithCancel(context.Background())
	var started int32
	if err := ex.Submit(context.Background(), "k", JobFunc(func(ctx context.Context) error {
		atomic.StoreInt32(&started, 1)
		<-blockCtx.Done()
		return nil
	})); err != nil {
		t.Fatalf("submit block job: %v", err)
	}

	for atomic.LoadInt32(&started) == 0 {
		time.Sleep(time.Millisecond)
	}

	// Fill the buffer with one more job so the next submit will block on send.
	_ = ex.Submit(context.Background(), "k", JobFunc(func(ctx context.Context) error { return nil }))

	// Now attempt to submit with an already-canceled context; since queue is full, ctx should win.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ex.Submit(ctx, "k", JobFunc(func(ctx context.Context) error { return nil }))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	cancelBlock() // unblock worker to let test exit quickly
}

// When a job's context is canceled before the worker starts it, the worker should skip Run and invoke the error handler with ctx.Err.
func TestWorker_SkipsRunForCanceledJob(t *testing.T) {
	var handlerCalls int32
	cfg := Config{Shards: 1, QueueSize: 2}
	cfg.ErrorHandler = func(err error) { atomic.AddInt32(&handlerCalls, 1) }

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	// First job blocks the worker.
	blockCtx, unblock := context.WithCancel(context.Background())
	started := make(chan struct{})
	if err := ex.Submit(context.Background(), "k", JobFunc(func(ctx context.Context) error {
		close(started)
		<-blockCtx.Done()
		return nil
	})); err != nil {
		t.Fatalf("submit blocking job: %v", err)
	}
	<-started

	// Second job is queued behind the blocking one but will have its context canceled before execution.
	ran := int32(0)
	jobCtx, cancelJob := context.WithCancel(context.Background())
	if err := ex.Submit(jobCtx, "k", JobFunc(func(ctx context.Context) error {
		atomic.StoreInt32(&ran, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit second job: %v", err)
	}

	// Cancel before worker gets to the job so run is skipped.
	cancelJob()

	// Unblock worker to move on to the canceled job.
	unblock()

	time.Sleep(50 * time.Millisecond)

	if atomic.LoadInt32(&ran) == 1 {
		t.Fatal("job Run should not have been called for canceled context")
	}
	if atomic.LoadInt32(&handlerCalls) == 0 {
		t.Fatal("expected error handler to be invoked for canceled job")
	}
}

// A panic in one shard worker should not crash other shards; jobs on other shards continue to run.
func TestWorker_PanicDoesNotStopOtherShards(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 2, QueueSize: 4})
	defer ex.Stop()

	// Choose two keys that map to different shards.
	keyPanic := "panic-key"
	shardPanic := ex.shardFor(keyPanic)
	keyOther := "other-key"
	for tries := 0; tries < 100 && ex.shardFor(keyOther) == shardPanic; tries++ {
		keyOther = keyOther + "x"
	}
	if ex.shardFor(keyOther) == shardPanic {
		t.Fatal("failed to find keys mapping to different shards")
	}

	// Submit a job that panics on shardPanic.
	if err := ex.Submit(context.Background(), keyPanic, JobFunc(func(ctx context.Context) error { panic("job panic") })); err != nil {
		t.Fatalf("submit panic job: %v", err)
	}

	// Submit a job on the other shard; it should still run even if the panic kills one worker.
	ran := make(chan struct{})
	if err := ex.Submit(context.Background(), keyOther, JobFunc(func(ctx context.Context) error { close(ran); return nil })); err != nil {
		t.Fatalf("submit follow-up: %v", err)
	}

	select {
	case <-ran:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("other shard did not continue after worker panic")
	}
}
