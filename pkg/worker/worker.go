package worker

import (
	"context"
	"sync"

	"github.com/VladPetriv/currency_bot/pkg/logger"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// Pool is a worker pool.
// Jobs with an ID that is already queued or running are dropped.
type Pool[T any] struct {
	workersCount int
	handlerFunc  Func[T]
	logger       *logger.Logger
	jobs         chan job[T]
	wg           *sync.WaitGroup
	dedup        map[string]struct{}
	mu           *sync.Mutex
}

// NewPool creates a new worker pool.
func NewPool[T any](workersCount int, handlerFunc Func[T], logger *logger.Logger) *Pool[T] {
	if workersCount <= 0 {
		workersCount = 1
	}

	return &Pool[T]{
		workersCount: workersCount,
		handlerFunc:  handlerFunc,
		logger:       logger,
		jobs:         make(chan job[T]),
		wg:           &sync.WaitGroup{},
		dedup:        make(map[string]struct{}),
		mu:           &sync.Mutex{},
	}
}

// Start starts the number of workers that were passed in constructor.
func (p *Pool[T]) Start(ctx context.Context) {
	for range p.workersCount {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	logger := p.logger.With().Str("name", "worker.Pool").Logger()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Err(ctx.Err()).Msg("worker stopping due to context cancellation")
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				logger.Error().Err(err).Str("jobID", job.ID).Msg("handle job")
			}
			p.mu.Lock()
			delete(p.dedup, job.ID)
			p.mu.Unlock()
		}
	}
}

// Stop stops the worker pool and waits for running jobs.
func (p *Pool[T]) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// AddJob adds a new job to the worker pool.
// It blocks until a worker is free or ctx is done. Returns false when the job was not queued.
func (p *Pool[T]) AddJob(ctx context.Context, id string, data T) bool {
	p.mu.Lock()
	_, ok := p.dedup[id]
	if ok {
		p.mu.Unlock()
		return false
	}
	p.dedup[id] = struct{}{}
	p.mu.Unlock()

	select {
	case p.jobs <- job[T]{ID: id, Data: data}:
		return true
	case <-ctx.Done():
		p.mu.Lock()
		delete(p.dedup, id)
		p.mu.Unlock()

		return false
	}
}
