package gaps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelExtractor_PreservesOrder(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 4
	cfg.FlankLength = 2
	pe := NewParallelExtractor(cfg)
	assert.Equal(t, 4, pe.Workers())

	const n = 50
	var got []string
	err := pe.Run(context.Background(),
		func(submit func(ExtractJob) error) error {
			for i := 0; i < n; i++ {
				// vary the work so results finish out of order
				body := strings.Repeat("ACGT", 1+(n-i)*10)
				seq := Sequence{Name: fmt.Sprintf("seq%02d", i), Text: body + "acgt" + body}
				if err := submit(ExtractJob{Seq: seq}); err != nil {
					return err
				}
			}
			return nil
		},
		func(res ExtractResult) error {
			require.Len(t, res.Windows, 1)
			got = append(got, res.Name)
			return nil
		})
	require.NoError(t, err)

	require.Len(t, got, n)
	for i, name := range got {
		assert.Equal(t, fmt.Sprintf("seq%02d", i), name)
	}
}

func TestParallelExtractor_FromCoords(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 2
	cfg.FlankLength = 5
	pe := NewParallelExtractor(cfg)

	var windows []FlankedWindow
	err := pe.Run(context.Background(),
		func(submit func(ExtractJob) error) error {
			return submit(ExtractJob{
				Seq:        Sequence{Name: "chr1", Text: strings.Repeat("A", 40)},
				Coords:     []Coordinate{{10, 20}, {22, 30}},
				FromCoords: true,
			})
		},
		func(res ExtractResult) error {
			assert.Equal(t, 40, res.Length)
			windows = append(windows, res.Windows...)
			return nil
		})
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 5, windows[0].FlankStart)
	assert.Equal(t, 35, windows[0].FlankEnd)
}

func TestParallelExtractor_WorkerError(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 3
	pe := NewParallelExtractor(cfg)

	err := pe.Run(context.Background(),
		func(submit func(ExtractJob) error) error {
			for i := 0; i < 20; i++ {
				job := ExtractJob{Seq: Sequence{Name: fmt.Sprintf("s%d", i), Text: "ACGTACGT"}, FromCoords: true}
				if i == 7 {
					job.Coords = []Coordinate{{6, 7}, {1, 2}}
				}
				if err := submit(job); err != nil {
					return err
				}
			}
			return nil
		},
		func(ExtractResult) error { return nil })

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructural))
	assert.Contains(t, err.Error(), "s7")
}

func TestParallelExtractor_EmitError(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 2
	pe := NewParallelExtractor(cfg)

	stop := errors.New("disk full")
	emitted := 0
	err := pe.Run(context.Background(),
		func(submit func(ExtractJob) error) error {
			for i := 0; i < 100; i++ {
				if err := submit(ExtractJob{Seq: Sequence{Name: "s", Text: "ACGT"}}); err != nil {
					return err
				}
			}
			return nil
		},
		func(ExtractResult) error {
			emitted++
			if emitted == 3 {
				return stop
			}
			return nil
		})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, emitted)
}

func TestParallelExtractor_Cancelled(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = 2
	pe := NewParallelExtractor(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pe.Run(ctx,
		func(submit func(ExtractJob) error) error {
			for i := 0; i < 100; i++ {
				if err := submit(ExtractJob{Seq: Sequence{Name: "s", Text: "ACGT"}}); err != nil {
					return err
				}
			}
			return nil
		},
		func(ExtractResult) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
