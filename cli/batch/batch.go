package batch

import (
	"context"
	"fmt"
	"sync"

	"reversewords/cli/logging"
	"reversewords/cli/util"
)

// Pool reverses many lines at once. The reversal functions it runs are
// pure, so workers share nothing but the job and result channels.
type Pool struct {
	log        logging.Logger
	numWorkers int
}

type lineJob struct {
	Index int
	Line  string
}

func NewPool(log logging.Logger, numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Pool{
		log,
		numWorkers,
	}
}

// Reverse applies fn to every line and returns the results in input order.
// If ctx ends before every line is done the partial work is dropped.
func (p Pool) Reverse(ctx context.Context, lines []string, fn func(string) string) ([]string, error) {
	if len(lines) == 0 {
		return []string{}, nil
	}

	numWorkers := min(p.numWorkers, len(lines))
	jobCh := make(chan lineJob)
	resCh := make(chan lineJob, len(lines))

	p.log.Trace("Initializing wait group...")
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	go func() {
		wg.Wait()
		close(resCh)
	}()

	p.log.Trace("Starting workers...")
	workerNames := util.RandomNames(1, numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker(ctx, workerNames[i], fn, jobCh, resCh, &wg)
		p.log.Debug(fmt.Sprintf("Started worker %s", workerNames[i]))
	}

	go func() {
		defer close(jobCh)
		for i, line := range lines {
			select {
			case jobCh <- lineJob{i, line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]string, len(lines))
	done := 0
	for r := range resCh {
		results[r.Index] = r.Line
		done++
	}

	if done < len(lines) {
		p.log.Info(fmt.Sprintf("Batch stopped after %d of %d lines", done, len(lines)))
		return nil, fmt.Errorf("batch stopped after %d of %d lines; %w", done, len(lines), ctx.Err())
	}
	p.log.Debug(fmt.Sprintf("Batch reversed %d lines with %d workers", len(lines), numWorkers))
	return results, nil
}

func (p Pool) worker(ctx context.Context, name string, fn func(string) string, jobCh <-chan lineJob, resCh chan<- lineJob, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			p.log.Debug(fmt.Sprintf("Worker %s received exit signal, closing...", name))
			return
		case job, ok := <-jobCh:
			if !ok {
				p.log.Trace(fmt.Sprintf("Worker %s found no more lines, closing...", name))
				return
			}
			// resCh holds every line, so this never blocks
			resCh <- lineJob{job.Index, fn(job.Line)}
			p.log.Trace(fmt.Sprintf("Worker %s reversed line %d", name, job.Index))
		}
	}
}
