package app

import (
	"testing"

	"github.com/dshills/framestate/internal/input"
)

func TestControl(t *testing.T) {
	var c Control
	if c.Requested() {
		t.Error("Requested() = true before any request")
	}

	s := input.New(input.WithTerminator(&c))
	s.Dispatch(input.CloseRequest{})
	s.Dispatch(input.CloseRequest{})

	if !c.Requested() {
		t.Error("Requested() = false after close requests")
	}
	if c.Requests() != 2 {
		t.Errorf("Requests() = %d, want 2", c.Requests())
	}
}
