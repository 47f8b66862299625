package main

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

func TestPoolProcessesSubmittedMessages(t *testing.T) {
	ctx := context.Background()

	const total = 10
	done := make(chan []byte, total)

	pool := NewPool(ctx, 3, 4, func(ctx context.Context, msg []byte) error {
		done <- msg
		return nil
	})

	for i := 0; i < total; i++ {
		if !pool.Submit(ctx, &nats.Msg{Data: []byte{byte(i)}}) {
			t.Fatalf("submit %d rejected", i)
		}
	}

	for i := 0; i < total; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}

	pool.Stop()
	pool.Wait()
}

func TestPoolSubmitRejectsAfterCancel(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	// One blocked worker and a full queue so the submit cannot win the send case.
	block := make(chan struct{})
	pool := NewPool(context.Background(), 1, 1, func(ctx context.Context, msg []byte) error {
		<-block
		return nil
	})
	defer func() {
		close(block)
		pool.Stop()
		pool.Wait()
	}()

	pool.Submit(context.Background(), &nats.Msg{})
	pool.Submit(context.Background(), &nats.Msg{})

	if pool.Submit(cancelled, &nats.Msg{}) {
		t.Error("expected submit with cancelled context on a full queue to be rejected")
	}
}
