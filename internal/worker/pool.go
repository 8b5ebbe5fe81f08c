package worker

import (
	"context"
	"sync"

	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs are labelled by name in logs and metrics
type Named interface {
	Name() string
}

// JobName returns the job's name, or a generic label
func JobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return DefaultJobName
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with a context derived from ctx that is cancelled on Stop.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	name := JobName(job)
	if err := job.Process(p.ctx); err != nil {
		// A failed job never stops the worker
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "job", name, "error", err)
		metrics.WorkerJobsTotal.WithLabelValues(name, metrics.OutcomeError).Inc()
		return
	}
	metrics.WorkerJobsTotal.WithLabelValues(name, metrics.OutcomeSuccess).Inc()
}

// Enqueue adds a job to the queue, blocking while it is full.
// It returns false if the pool stopped before the job was accepted.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	}
}

// TryEnqueue adds a job without blocking and reports whether it was accepted
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		if p.cancel != nil {
			p.cancel()
		}
	})
	p.wg.Wait()
}
