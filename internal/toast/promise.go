package toast

import (
	"context"
	"time"
)

// PromiseOptions describes the three phases of a promise toast.
type PromiseOptions[T any] struct {
	Loading string
	Success func(T) string
	Error   func(error) string

	// Duration is the fallback for SuccessDuration and ErrorDuration.
	Duration        time.Duration
	SuccessDuration time.Duration
	ErrorDuration   time.Duration

	SuccessAction *Action
	ErrorAction   *Action
}

// Promise shows a loading toast while task runs and turns it into a success or error
// toast when task returns. The task result is passed through unchanged. Promise blocks;
// run it from a goroutine or a tea.Cmd.
func Promise[T any](ctx context.Context, p *Provider, task func(context.Context) (T, error), opts PromiseOptions[T]) (T, error) {
	id := p.create(Options{
		Message:   opts.Loading,
		Type:      TypeInfo,
		Duration:  -1,
		HideClose: true,
	}, true)

	data, err := task(ctx)
	if err != nil {
		message := err.Error()
		if opts.Error != nil {
			message = opts.Error(err)
		}
		p.Update(id, func(it *Item) {
			it.Message = message
			it.Type = TypeError
			it.Duration = resolveDuration(firstNonZero(opts.ErrorDuration, opts.Duration))
			it.Closable = true
			it.Loading = false
			it.Action = opts.ErrorAction
		})
		p.log.WithFields(map[string]any{"toast": id}).Error(err, "promise toast failed")
		return data, err
	}

	message := ""
	if opts.Success != nil {
		message = opts.Success(data)
	}
	p.Update(id, func(it *Item) {
		it.Message = message
		it.Type = TypeSuccess
		it.Duration = resolveDuration(firstNonZero(opts.SuccessDuration, opts.Duration))
		it.Closable = true
		it.Loading = false
		it.Action = opts.SuccessAction
	})
	return data, nil
}

func firstNonZero(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
