// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Worker declares the workers functional interface
type Worker interface {
	// Work processes the task within the given context
	Work(ctx context.Context, task interface{}) error
}

// The WorkerFunc type is an adapter to allow the use of ordinary functions as
// Workers. WorkerFunc(f) is a Worker object that calls f.
type WorkerFunc func(ctx context.Context, task interface{}) error

// Work calls f(ctx, task)
func (f WorkerFunc) Work(ctx context.Context, task interface{}) error {
	return f(ctx, task)
}

// Job dispatches a batch of tasks to a set of parallel workers and collects
// their errors synchronously.
type Job struct {
	// MaxWorkers is the maximum number of workers processing the batch in parallel
	MaxWorkers int
	// Worker processes the tasks
	Worker Worker
	// FailFast quits processing on the first error when set. For fault
	// tolerant operation leave it unset and all errors are aggregated.
	FailFast bool
}

// Dispatch spawns workers processing the supplied tasks in parallel and blocks
// until the batch is done. If the context is cancelled, or an error occurs
// while FailFast is set, processing halts and the remaining tasks are dropped.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) error {
	if len(tasks) == 0 {
		return nil
	}
	workersCount := j.MaxWorkers
	if workersCount < 1 {
		workersCount = 1
	}
	if workersCount > len(tasks) {
		workersCount = len(tasks)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		taskCh = make(chan interface{})
		// sized to the batch so workers never block reporting errors
		errCh = make(chan error, len(tasks))
		wg    sync.WaitGroup
	)
	for i := 0; i < workersCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				if err := j.Worker.Work(ctx, task); err != nil {
					errCh <- err
					if j.FailFast {
						cancel()
						return
					}
				}
			}
		}()
	}

feed:
	for _, task := range tasks {
		select {
		case taskCh <- task:
		case <-ctx.Done():
			break feed
		}
	}
	close(taskCh)
	wg.Wait()
	close(errCh)

	var errs *multierror.Error
	for err := range errCh {
		if j.FailFast {
			return err
		}
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
