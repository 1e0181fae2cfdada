// Package concurrency provides a bounded worker pool for fanning an audit
// out over a fleet of instances.
package concurrency

import (
	"fmt"
	"sync"
)

// Work is one unit of fan-out work.
type Work func() (interface{}, error)

type Result struct {
	Value interface{}
	Error error
}

// WorkPool runs queued work with bounded parallelism. Results are returned
// in completion order, not submission order.
type WorkPool struct {
	workerCount int
	works       []Work
}

func NewWorkPool(workerCount int) *WorkPool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &WorkPool{workerCount: workerCount}
}

func (w *WorkPool) AddJob(job Work) {
	w.works = append(w.works, job)
}

func (w *WorkPool) Run() []Result {
	jobs := make(chan Work, len(w.works))
	results := make(chan Result, len(w.works))

	var wg sync.WaitGroup
	for i := 0; i < w.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- run(job)
			}
		}()
	}

	for _, job := range w.works {
		jobs <- job
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make([]Result, 0, len(w.works))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func run(job Work) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Error: fmt.Errorf("paniced with %v", r)}
		}
	}()

	v, err := job()
	return Result{Value: v, Error: err}
}
