package yelphelp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-kasumi/worker"
)

// Run starts the Adapter and handles its events until the given context is canceled.
// StartEvent is handled synchronously; each MessageEvent is handled as an independent job on the worker,
// so replies to two messages are not ordered.
//
// nil is returned when the context is canceled.
// When the Adapter escalates BotNonContinuableError, registered Alerter implementations are notified and the error is returned.
func (d *Dispatcher) Run(ctx context.Context) error {
	botCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	wkr := d.worker
	if wkr == nil {
		wkr = worker.Run(botCtx, d.config.Worker)
	}

	critical := make(chan error, 1)
	notifyErr := func(err error) {
		select {
		case <-botCtx.Done():
			// Bot context is already canceled by the preceding error notification. Do nothing.
			return

		default:
		}

		var nonContinuable *BotNonContinuableError
		if !errors.As(err, &nonContinuable) {
			logger.Warnf("Error is escalated by adapter: %+v", err)
			return
		}

		logger.Errorf("Stop unrecoverable bot. Error: %+v", err)
		select {
		case critical <- err:
		default:
		}
		cancel()
	}

	d.runAdapter(botCtx, d.receiver(botCtx, wkr), notifyErr) // Blocks til interaction ends

	select {
	case err := <-critical:
		if e := d.Alert(ctx, err); e != nil {
			logger.Errorf("Failed to send alert: %+v", e)
		}
		return err

	default:
		if ctx.Err() == nil {
			return NewBotNonContinuableError("adapter stopped without context cancellation")
		}
		return nil

	}
}

// runAdapter runs the Adapter in a panic-proof manner.
func (d *Dispatcher) runAdapter(ctx context.Context, enqueueEvent func(Event) error, notifyErr func(error)) {
	defer func() {
		// When the adapter panics, recover and tell as much detailed information as possible via the error notification.
		if r := recover(); r != nil {
			stack := []string{fmt.Sprintf("panic in adapter: %#v.", r)}

			// Inform stack trace
			for depth := 0; ; depth++ {
				_, src, line, ok := runtime.Caller(depth)
				if !ok {
					break
				}
				stack = append(stack, fmt.Sprintf(" -> depth:%d. file:%s. line:%d.", depth, src, line))
			}

			notifyErr(NewBotNonContinuableError(strings.Join(stack, "\n")))
		}
	}()

	d.adapter.Run(ctx, enqueueEvent, notifyErr)
}

func (d *Dispatcher) receiver(ctx context.Context, wkr worker.Worker) func(Event) error {
	continuousEnqueueErrCnt := 0
	return func(event Event) error {
		switch e := event.(type) {
		case *StartEvent:
			d.OnStart()
			return nil

		case *MessageEvent:
			err := wkr.Enqueue(func() {
				d.OnMessage(ctx, e)
			})

			if err == nil {
				continuousEnqueueErrCnt = 0
				return nil
			}

			continuousEnqueueErrCnt++
			// Could not send because probably the workers are too busy or the context is already canceled.
			return NewBlockedInputError(continuousEnqueueErrCnt)

		default:
			logger.Debugf("Event given, but no corresponding action is defined. %#v", event)
			return nil

		}
	}
}
