package core

import "testing"

func TestCommandIsTurn(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected bool
	}{
		{CmdNone, false},
		{CmdTurnUp, true},
		{CmdTurnDown, true},
		{CmdTurnLeft, true},
		{CmdTurnRight, true},
		{CmdTogglePause, false},
		{CmdQuit, false},
		{CmdAnyKey, false},
	}

	for _, tc := range tests {
		if tc.cmd.IsTurn() != tc.expected {
			t.Errorf("%s.IsTurn() = %v, expected %v", tc.cmd, tc.cmd.IsTurn(), tc.expected)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CmdTogglePause.String() != "TogglePause" {
		t.Errorf("String() = %q, expected TogglePause", CmdTogglePause.String())
	}
	if Command(99).String() != "Unknown" {
		t.Errorf("String() of unknown command = %q, expected Unknown", Command(99).String())
	}
}

func TestCommandQueueOrder(t *testing.T) {
	q := NewCommandQueue(4)
	q.Push(CmdTurnUp)
	q.Push(CmdTurnLeft)
	q.Push(CmdTogglePause)

	var got []Command
	q.Drain(func(c Command) { got = append(got, c) })

	expected := []Command{CmdTurnUp, CmdTurnLeft, CmdTogglePause}
	if len(got) != len(expected) {
		t.Fatalf("Drain() yielded %d commands, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("command %d = %s, expected %s", i, got[i], expected[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", q.Len())
	}
}

func TestCommandQueueBounded(t *testing.T) {
	q := NewCommandQueue(2)

	if !q.Push(CmdTurnUp) || !q.Push(CmdTurnDown) {
		t.Fatal("Push should succeed while below capacity")
	}
	if q.Push(CmdQuit) {
		t.Error("Push should fail when the queue is full")
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d, expected 1", q.Dropped())
	}

	var got []Command
	q.Drain(func(c Command) { got = append(got, c) })
	if len(got) != 2 || got[0] != CmdTurnUp || got[1] != CmdTurnDown {
		t.Errorf("Drain() = %v, expected [TurnUp TurnDown]", got)
	}
}

func TestCommandQueueWrapAround(t *testing.T) {
	q := NewCommandQueue(3)

	// Interleave pushes and drains so the ring index wraps.
	for round := 0; round < 5; round++ {
		q.Push(CmdTurnLeft)
		q.Push(CmdTurnRight)
		n := 0
		q.Drain(func(Command) { n++ })
		if n != 2 {
			t.Fatalf("round %d: drained %d commands, expected 2", round, n)
		}
	}
}

func TestCommandQueueDefaultCapacity(t *testing.T) {
	q := NewCommandQueue(0)
	if q.Cap() != DefaultQueueCapacity {
		t.Errorf("Cap() = %d, expected %d", q.Cap(), DefaultQueueCapacity)
	}
}
