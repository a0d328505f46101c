package gaps

import (
	"context"
	"fmt"
	"sync"
)

// ExtractJob is one sequence to extract windows from
type ExtractJob struct {
	Seq        Sequence
	Coords     []Coordinate // used when FromCoords is set
	FromCoords bool

	index int
}

// ExtractResult is the outcome for one sequence
type ExtractResult struct {
	Name    string
	Length  int
	Windows []FlankedWindow

	index int
	err   error
}

// ParallelExtractor extracts windows from many sequences at once.
// Sequences are independent, so each worker owns whole sequences; results
// are handed back in submission order.
type ParallelExtractor struct {
	workers int
	flank   int
}

// NewParallelExtractor creates an extractor with cfg's workers and flank
func NewParallelExtractor(cfg *Config) *ParallelExtractor {
	workers := cfg.Workers
	if workers <= 0 {
		workers = detectOptimalWorkers()
	}
	// Each job holds a whole sequence in memory
	maxWorkers := 32
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return &ParallelExtractor{workers: workers, flank: cfg.FlankLength}
}

// Workers returns the number of workers
func (pe *ParallelExtractor) Workers() int {
	return pe.workers
}

// Run calls produce, which submits jobs, and emit for every result in
// submission order. The first error from produce, a worker or emit stops the
// run and is returned.
func (pe *ParallelExtractor) Run(ctx context.Context,
	produce func(submit func(ExtractJob) error) error,
	emit func(ExtractResult) error) error {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan ExtractJob, pe.workers*2)
	results := make(chan ExtractResult, pe.workers*2)

	// Producer
	produced := make(chan error, 1)
	go func() {
		defer close(jobs)
		next := 0
		produced <- produce(func(job ExtractJob) error {
			job.index = next
			next++
			select {
			case jobs <- job:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	// Workers
	var wg sync.WaitGroup
	for i := 0; i < pe.workers; i++ {
		wg.Add(1)
		go pe.worker(ctx, i, jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector, restores submission order
	pending := make(map[int]ExtractResult)
	next := 0
	var firstErr error
	for res := range results {
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			cancel()
			continue
		}

		pending[res.index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := emit(r); err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}

	if err := <-produced; err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr == nil && len(pending) > 0 {
		firstErr = fmt.Errorf("extraction stopped with %d results undelivered", len(pending))
	}
	return firstErr
}

// worker extracts windows from whole sequences
func (pe *ParallelExtractor) worker(ctx context.Context, id int, jobs <-chan ExtractJob,
	results chan<- ExtractResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res := ExtractResult{Name: job.Seq.Name, Length: job.Seq.Len(), index: job.index}
		if job.FromCoords {
			res.Windows, res.err = ExtractCoordinates(job.Seq, job.Coords, pe.flank)
		} else {
			res.Windows, res.err = ExtractMasked(job.Seq, pe.flank)
		}
		if res.err != nil {
			res.err = fmt.Errorf("worker %d failed on %s: %w", id, job.Seq.Name, res.err)
		}

		select {
		case results <- res:
		case <-ctx.Done():
			return
		}
	}
}
