package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
)

type MessageHandler func(ctx context.Context, msg []byte) error

// Pool processes nats messages with a bounded number of workers. Messages are
// acked on success and nacked for redelivery on handler failure.
type Pool struct {
	jobs    chan *nats.Msg
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	handler MessageHandler
}

func NewPool(ctx context.Context, workers, queueSize int, handler MessageHandler) *Pool {
	if workers < 1 {
		workers = 2
	}
	if queueSize < 1 {
		queueSize = 100
	}

	poolCtx, cancel := context.WithCancel(ctx)

	pool := &Pool{
		jobs:    make(chan *nats.Msg, queueSize),
		ctx:     poolCtx,
		cancel:  cancel,
		handler: handler,
	}

	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case msg, ok := <-p.jobs:
			if !ok {
				return
			}
			p.process(msg)
		}
	}
}

func (p *Pool) process(msg *nats.Msg) {
	if err := p.handler(p.ctx, msg.Data); err != nil {
		slog.Error("failed to handle message", "err", err)
		if err := msg.Nak(); err != nil {
			slog.Error("failed to nak message", "err", err)
		}
		return
	}

	if err := msg.Ack(); err != nil {
		slog.Error("failed to ack message", "err", err)
	}
}

// Submit queues a message for processing, blocking while the queue is full.
// Returns false once either context is cancelled.
func (p *Pool) Submit(ctx context.Context, msg *nats.Msg) bool {
	select {
	case p.jobs <- msg:
		return true
	case <-ctx.Done():
		return false
	case <-p.ctx.Done():
		return false
	}
}

func (p *Pool) Stop() {
	p.cancel()
	close(p.jobs)
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
