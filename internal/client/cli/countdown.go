package cli

import (
	"context"
	"fmt"
	"io"
	"time"
)

// RunCountdown renders the post-claim validity window: the remaining
// seconds are rewritten in place once per tick until the window expires or
// ctx is canceled. The tick interval is injectable so tests do not wait
// wall-clock seconds.
func RunCountdown(ctx context.Context, w io.Writer, seconds int, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; {
		fmt.Fprintf(w, "\rTicket valid for %2ds", remaining)
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return
		case <-ticker.C:
			remaining--
		}
	}
	fmt.Fprint(w, "\rTicket window expired\n")
}
