package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/mouse"
)

// Stats counts what the frame loop has processed. All methods are safe
// for concurrent use.
type Stats struct {
	// Frame timing
	frameCount    atomic.Uint64
	frameTotalNs  atomic.Int64
	frameMaxNs    atomic.Int64
	droppedFrames atomic.Uint64

	// Input
	eventCount atomic.Uint64
	clickCount atomic.Uint64
	dragCount  atomic.Uint64

	hookErrors atomic.Uint64

	startTime time.Time
}

// NewStats creates a new stats tracker.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordFrame records one frame and how long it took.
func (s *Stats) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	s.frameCount.Add(1)
	s.frameTotalNs.Add(ns)

	for {
		old := s.frameMaxNs.Load()
		if ns <= old || s.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordDroppedFrame records a frame that overran its interval.
func (s *Stats) RecordDroppedFrame() {
	s.droppedFrames.Add(1)
}

// RecordEvents records n ingested events.
func (s *Stats) RecordEvents(n int) {
	s.eventCount.Add(uint64(n))
}

// RecordHookError records a failed frame hook.
func (s *Stats) RecordHookError() {
	s.hookErrors.Add(1)
}

// OnFrame counts the clicks and finished drags of the current frame.
func (s *Stats) OnFrame(_ uint64, state *input.State) error {
	for i := 0; i < mouse.Capacity; i++ {
		b := mouse.Button(i)
		if state.IsMouseButtonJustClicked(b) {
			s.clickCount.Add(1)
		}
		if state.IsMouseDragJustFinished(b) {
			s.dragCount.Add(1)
		}
	}
	return nil
}

// Snapshot returns a point-in-time view of the stats.
func (s *Stats) Snapshot() StatsSnapshot {
	frames := s.frameCount.Load()

	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(s.frameTotalNs.Load() / int64(frames))
	}

	return StatsSnapshot{
		Uptime:        time.Since(s.startTime),
		Frames:        frames,
		AvgFrameTime:  avg,
		MaxFrameTime:  time.Duration(s.frameMaxNs.Load()),
		DroppedFrames: s.droppedFrames.Load(),
		Events:        s.eventCount.Load(),
		Clicks:        s.clickCount.Load(),
		Drags:         s.dragCount.Load(),
		HookErrors:    s.hookErrors.Load(),
	}
}

// StatsSnapshot is a point-in-time view of Stats.
type StatsSnapshot struct {
	Uptime        time.Duration
	Frames        uint64
	AvgFrameTime  time.Duration
	MaxFrameTime  time.Duration
	DroppedFrames uint64
	Events        uint64
	Clicks        uint64
	Drags         uint64
	HookErrors    uint64
}

// AvgFPS returns the average frames per second over the uptime.
func (s StatsSnapshot) AvgFPS() float64 {
	if s.Uptime <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Uptime.Seconds()
}

func (s StatsSnapshot) String() string {
	return fmt.Sprintf("frames=%d events=%d clicks=%d drags=%d dropped=%d hook_errors=%d avg_frame=%s max_frame=%s",
		s.Frames, s.Events, s.Clicks, s.Drags, s.DroppedFrames, s.HookErrors, s.AvgFrameTime, s.MaxFrameTime)
}
