package workers

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/messages"
)

// TraceWorker writes every snapshot published by the game loop to a trace
// stream as compressed, length-prefixed frames.
type TraceWorker struct {
	snapshotChan  <-chan *messages.Snapshot
	writer        *bufio.Writer
	flushInterval time.Duration
	frames        int
}

type NewTraceWorkerOptions struct {
	SnapshotChan <-chan *messages.Snapshot
	Writer       io.Writer
	// FlushInterval is how often buffered frames are flushed to Writer
	FlushInterval time.Duration
}

// NewTraceWorker creates a new TraceWorker.
// The worker buffers frames and flushes them periodically and when it stops.
func NewTraceWorker(opts NewTraceWorkerOptions) *TraceWorker {
	flushInterval := opts.FlushInterval
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	return &TraceWorker{
		snapshotChan:  opts.SnapshotChan,
		writer:        bufio.NewWriter(opts.Writer),
		flushInterval: flushInterval,
	}
}

// Start consumes snapshots until the context is done or the channel is closed.
func (w *TraceWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()
	defer w.flush()

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case snapshot, ok := <-w.snapshotChan:
			if !ok {
				return
			}
			w.writeSnapshot(snapshot)
		case <-ticker.C:
			w.flush()
		}
	}
}

// Frames returns the number of frames written. It must not be called while Start is running.
func (w *TraceWorker) Frames() int {
	return w.frames
}

// drain writes the snapshots already queued on the channel.
func (w *TraceWorker) drain() {
	for {
		select {
		case snapshot, ok := <-w.snapshotChan:
			if !ok {
				return
			}
			w.writeSnapshot(snapshot)
		default:
			return
		}
	}
}

func (w *TraceWorker) writeSnapshot(snapshot *messages.Snapshot) {
	if err := messages.WriteFrame(w.writer, snapshot); err != nil {
		log.Error("Failed to write trace frame for tick %d: %v", snapshot.Tick, err)
		return
	}
	w.frames++
}

func (w *TraceWorker) flush() {
	if err := w.writer.Flush(); err != nil {
		log.Error("Failed to flush trace: %v", err)
	}
}
