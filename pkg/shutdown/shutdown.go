package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Drain runs graceful and waits up to timeout for it to return. When it
// stalls, force runs and Drain waits at most another timeout for either of
// them before giving up; neither is guaranteed to have returned by then.
// It reports whether graceful completed on its own.
func Drain(timeout time.Duration, graceful, force func()) bool {
	stopped := make(chan struct{})
	go func() {
		graceful()
		close(stopped)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-stopped:
		return true
	case <-timer.C:
	}

	forced := make(chan struct{})
	go func() {
		force()
		close(forced)
	}()

	timer.Reset(timeout)
	select {
	case <-stopped:
	case <-forced:
	case <-timer.C:
	}
	return false
}
