package fetcher

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrPoolClosed = errors.New("fetch pool closed")
	ErrQueueFull  = errors.New("fetch queue full")
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one queued fetch, identified by its province/date key for logging.
type Task struct {
	Key string
	Run func() error
}

type WorkerPool struct {
	queue  chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts size workers reading from a queue holding up to depth
// waiting tasks.
func NewWorkerPool(size, depth int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if depth < 1 {
		depth = size
	}
	wp := &WorkerPool{queue: make(chan Task, depth)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.queue {
		if err := task.Run(); err != nil {
			zap.L().Warn("Fetch task failed", zap.String("key", task.Key), zap.Error(err))
		}
	}
}

// AddTask queues task without waiting. It fails with ErrQueueFull when every
// queue slot is taken.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case wp.queue <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.queue)
	wp.mu.Unlock()

	wp.wg.Wait()
}
