package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) || f.Has(ActionRight) {
		t.Errorf("Unexpected actions %v", f.Actions)
	}
}

func TestInputFramePointerLastWriteWins(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(10)
	f.SetPointer(72.5)

	if !f.HasPointer || f.Pointer != 72.5 {
		t.Errorf("Pointer = %v (has %v), want 72.5", f.Pointer, f.HasPointer)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.SetPointer(40)
	f.At = time.Unix(100, 0)

	f.Clear()

	if f.Has(ActionQuit) || f.HasPointer || f.Pointer != 0 || !f.At.IsZero() {
		t.Errorf("Clear left state behind: %+v", f)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.SetPointer(55)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRight) || c.Pointer != 55 || !c.HasPointer {
		t.Errorf("Clone changed with original: %+v", c)
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() == ActionBack.String() {
		t.Error("Actions should have distinct names")
	}
}
