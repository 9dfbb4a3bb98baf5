// Package dispatch drives a mail-merge batch: render, build, and send one
// message per recipient over a single authenticated session, with a
// throttle pause between sends and an ordered stream of per-recipient
// outcomes.
//
// # Batch loop
//
// Run spawns one worker goroutine per invocation and returns immediately
// with the event channel. Recipients are processed strictly in list order
// with no intra-batch concurrency: SMTP relays serialize a session's
// commands anyway, and parallel sends would defeat the throttle's rate
// limiting.
//
//	d := dispatch.New(transport, dispatch.WithDelay(2*time.Second))
//	for ev := range d.Run(ctx, batch) {
//		switch {
//		case ev.Outcome != nil:
//			// live per-recipient progress, in index order
//		case ev.Summary != nil:
//			// terminal record: counts, aborted/cancelled flags
//		}
//	}
//
// # Failure isolation
//
// A failed connect or authentication aborts the batch with zero recipient
// attempts and a single aborted summary. Every other failure (malformed
// address, relay rejection, timeout) is isolated to its recipient's
// outcome; the loop continues. The engine never retries: re-invoking for
// the failed indices is the caller's decision.
//
// # Cancellation
//
// Cancelling the context stops the batch between recipients or during the
// throttle pause. The session is closed, a cancelled summary is emitted,
// and no further sends occur; outcomes already emitted stand.
package dispatch
