package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const testHold = 650 * time.Millisecond

func TestKeyboardFreshPressIsEdgeTriggered(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.Press(KeySpace, epoch)
	f := kb.Frame(epoch.Add(16 * time.Millisecond))
	if !f.Pressed(KeySpace) || !f.Down(KeySpace) {
		t.Fatal("Expected space pressed and down on first frame")
	}

	// Next frame without new events: still held, not pressed
	f = kb.Frame(epoch.Add(32 * time.Millisecond))
	if f.Pressed(KeySpace) {
		t.Error("Press must not repeat on the following frame")
	}
	if !f.Down(KeySpace) {
		t.Error("Key should remain held within hold window")
	}
}

func TestKeyboardAutoRepeatIsNotPress(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.Press("w", epoch)
	kb.Frame(epoch.Add(10 * time.Millisecond))

	kb.Press("w", epoch.Add(33*time.Millisecond))
	f := kb.Frame(epoch.Add(40 * time.Millisecond))
	if f.Pressed("w") {
		t.Error("Auto-repeat event should not count as a fresh press")
	}
	if !f.Down("w") {
		t.Error("Auto-repeat should keep the key held")
	}
}

// TestKeyboardHeldKeyWithRepeatDelay drives a key held through a typical 500 ms
// initial repeat delay followed by 33 ms repeats, sampled every frame
func TestKeyboardHeldKeyWithRepeatDelay(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.Press(KeySpace, epoch)
	nextRepeat := 500 * time.Millisecond

	presses, released := 0, 0
	for elapsed := 16 * time.Millisecond; elapsed <= time.Second; elapsed += 16 * time.Millisecond {
		for nextRepeat <= elapsed {
			kb.Press(KeySpace, epoch.Add(nextRepeat))
			nextRepeat += 33 * time.Millisecond
		}
		f := kb.Frame(epoch.Add(elapsed))
		if f.Pressed(KeySpace) {
			presses++
		}
		if !f.Down(KeySpace) {
			released++
		}
	}

	if presses != 1 {
		t.Errorf("Held key produced %d presses, want 1", presses)
	}
	if released != 0 {
		t.Errorf("Held key read as released on %d frames", released)
	}
}

func TestKeyboardTapWithinHoldWindowStaysHeld(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.Press(KeySpace, epoch)
	kb.Frame(epoch.Add(16 * time.Millisecond))

	kb.Press(KeySpace, epoch.Add(300*time.Millisecond))
	if kb.Frame(epoch.Add(304 * time.Millisecond)).Pressed(KeySpace) {
		t.Error("Event inside the hold window should not count as a new press")
	}
}

func TestKeyboardPressAfterReleaseIsFresh(t *testing.T) {
	kb := NewKeyboard(testHold)

	presses := 0
	now := epoch
	for i := 0; i < 3; i++ {
		kb.Press(KeySpace, now)
		if kb.Frame(now.Add(16 * time.Millisecond)).Pressed(KeySpace) {
			presses++
		}
		now = now.Add(testHold + 100*time.Millisecond)
		if kb.Frame(now).Down(KeySpace) {
			t.Fatalf("Key %d should be released after the hold window", i)
		}
	}
	if presses != 3 {
		t.Errorf("Expected 3 fresh presses after releases, got %d", presses)
	}
}

func TestKeyboardHoldExpires(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.Press("a", epoch)
	kb.Frame(epoch)

	if !kb.Frame(epoch.Add(testHold)).Down("a") {
		t.Error("Key should still be held at the edge of the hold window")
	}
	if kb.Frame(epoch.Add(testHold + time.Millisecond)).Down("a") {
		t.Error("Key should be released after hold window without events")
	}
}

func TestKeyboardHandleTcellEvents(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), epoch)
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), epoch)
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), epoch)

	f := kb.Frame(epoch)
	for _, k := range []Key{"w", KeyUp, KeySpace} {
		if !f.Pressed(k) {
			t.Errorf("Expected %q pressed", k)
		}
	}
}

func TestKeyboardInterruptRequestsClose(t *testing.T) {
	kb := NewKeyboard(testHold)

	kb.HandleEvent(tcell.NewEventInterrupt(nil), epoch)
	if !kb.Frame(epoch).CloseRequested() {
		t.Error("Expected close request after interrupt event")
	}
	if kb.Frame(epoch).CloseRequested() {
		t.Error("Close request should be consumed by one frame")
	}
}

func TestFramePressedImpliesDown(t *testing.T) {
	f := NewFrame(nil, []Key{"d"})
	if !f.Down("d") {
		t.Error("Pressed key should also be down")
	}
	if !AnyPressed(f, KeyNone, "x", "d") {
		t.Error("AnyPressed should find d")
	}
}
