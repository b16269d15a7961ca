package app

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/framestate/internal/geom"
	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/input/mouse"
)

func TestStats_RecordFrame(t *testing.T) {
	s := NewStats()
	s.RecordFrame(2 * time.Millisecond)
	s.RecordFrame(4 * time.Millisecond)
	s.RecordDroppedFrame()
	s.RecordEvents(5)
	s.RecordHookError()

	snap := s.Snapshot()
	if snap.Frames != 2 {
		t.Errorf("Frames = %d, want 2", snap.Frames)
	}
	if snap.AvgFrameTime != 3*time.Millisecond {
		t.Errorf("AvgFrameTime = %v, want 3ms", snap.AvgFrameTime)
	}
	if snap.MaxFrameTime != 4*time.Millisecond {
		t.Errorf("MaxFrameTime = %v, want 4ms", snap.MaxFrameTime)
	}
	if snap.DroppedFrames != 1 || snap.Events != 5 || snap.HookErrors != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if !strings.Contains(snap.String(), "frames=2 events=5") {
		t.Errorf("String() = %q", snap.String())
	}
}

func TestStats_OnFrame(t *testing.T) {
	s := NewStats()
	state := input.New()

	state.HandleButton(mouse.ButtonLeft, input.Pressed, geom.Pos(0, 0))
	state.HandleButton(mouse.ButtonLeft, input.Released, geom.Pos(0, 0))

	state.HandleButton(mouse.ButtonMiddle, input.Pressed, geom.Pos(0, 0))
	state.HandleMove(geom.Pos(10, 10))
	state.HandleButton(mouse.ButtonMiddle, input.Released, geom.Pos(10, 10))

	s.OnFrame(1, state)
	state.EndFrame()
	s.OnFrame(2, state)

	snap := s.Snapshot()
	if snap.Clicks != 1 || snap.Drags != 1 {
		t.Errorf("clicks = %d drags = %d, want 1 and 1", snap.Clicks, snap.Drags)
	}
}

func TestStatsSnapshot_AvgFPS(t *testing.T) {
	if got := (StatsSnapshot{}).AvgFPS(); got != 0 {
		t.Errorf("AvgFPS() = %v, want 0", got)
	}
	snap := StatsSnapshot{Uptime: 2 * time.Second, Frames: 120}
	if got := snap.AvgFPS(); got != 60 {
		t.Errorf("AvgFPS() = %v, want 60", got)
	}
}
