package side

import (
	"context"
	"sync"

	"github.com/gosuri/uiprogress"
)

// EvaluateConcurrent computes the same rasters as Evaluate, fanning
// rows out to goroutines. Every write lands on the stream cell being
// processed, so rows share no state. Progress renders on its own
// uiprogress instance so repeated calls within a process are safe.
func (d *Domain) EvaluateConcurrent(ctx context.Context, opts *Options) (*Accumulation, error) {
	a := d.newAccumulation()
	initial, thresh := opts.seed(d.Cw)

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(d.Nrow).AppendCompleted().PrependElapsed()

	var wg sync.WaitGroup
	for row := 0; row < d.Nrow; row++ {
		select {
		case <-ctx.Done():
			wg.Wait()
			p.Stop()
			return nil, ctx.Err()
		default:
		}
		wg.Add(1)
		go func(row int) {
			d.evalRow(a, row, initial, thresh, opts.HExp)
			bar.Incr()
			wg.Done()
		}(row)
	}
	wg.Wait()
	p.Stop()

	return a, nil
}
