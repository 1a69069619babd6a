package processor

import (
	"testing"

	"github.com/hztirf/helm/internal/testutil"
)

func TestRegisterInputAtGrows(t *testing.T) {
	s := newSinkNode(1)
	extra := NewInput()
	s.RegisterInputAt(extra, 3)

	if s.NumInputs() != 4 {
		t.Fatalf("NumInputs() = %d, want 4", s.NumInputs())
	}

	if s.Input(3) != extra {
		t.Fatal("input 3 is not the registered input")
	}

	for i := 1; i < 3; i++ {
		if s.Input(i) == nil || s.Input(i).IsPlugged() {
			t.Fatalf("gap input %d should be an unplugged placeholder", i)
		}
	}

	if s.Input(0) != s.OwnedInput(0) {
		t.Fatal("owned input 0 was replaced")
	}

	if s.NumOwnedInputs() != 1 {
		t.Fatalf("NumOwnedInputs() = %d, want 1", s.NumOwnedInputs())
	}
}

func TestRegisterOutputAppends(t *testing.T) {
	s := newSourceNode(1)
	out := NewOutput(s)
	s.RegisterOutput(out)

	if s.NumOutputs() != 2 || s.Output(1) != out {
		t.Fatal("RegisterOutput did not append")
	}

	s.RegisterOutputAt(out, 4)
	if s.NumOutputs() != 5 {
		t.Fatalf("NumOutputs() = %d, want 5", s.NumOutputs())
	}

	for i := 2; i < 4; i++ {
		if s.Output(i).Owner() != Node(s) {
			t.Fatalf("gap output %d not owned by the node", i)
		}
	}

	if s.NumOwnedOutputs() != 1 {
		t.Fatalf("NumOwnedOutputs() = %d, want 1", s.NumOwnedOutputs())
	}
}

func TestRegisterContractViolations(t *testing.T) {
	s := newSourceNode(1)

	testutil.RequirePanics(t, "nil input", func() { s.RegisterInput(nil) })
	testutil.RequirePanics(t, "nil output", func() { s.RegisterOutput(nil) })
	testutil.RequirePanics(t, "silent output", func() { s.RegisterOutputAt(Silence(), 0) })
	testutil.RequirePanics(t, "negative input index", func() { s.RegisterInputAt(NewInput(), -1) })
	testutil.RequirePanics(t, "negative output index", func() { s.RegisterOutputAt(NewOutput(s), -2) })
	testutil.RequirePanics(t, "owned input index 0", func() { s.OwnedInput(0) })
	testutil.RequirePanics(t, "owned output index 1", func() { s.OwnedOutput(1) })
}

func TestPolyphonicActivePorts(t *testing.T) {
	v := newVoiceNode(3)

	if !v.IsPolyphonic() {
		t.Fatal("voice node should report polyphony")
	}

	if v.NumInputs() != 3 || v.NumOutputs() != 3 {
		t.Fatalf("active arity = %d/%d, want 3/3", v.NumInputs(), v.NumOutputs())
	}

	src := newSourceNode(3)
	for i := 0; i < 3; i++ {
		v.PlugNext(src.Output(i))
	}

	for i, in := range v.voiceInputs {
		if in.Source() != src.Output(i) {
			t.Fatalf("voice %d input not wired through the active set", i)
		}
	}

	if v.OwnedInput(0).IsPlugged() {
		t.Fatal("owned input wired although it is not active")
	}

	v.RestoreOwnedPorts()

	if v.NumInputs() != 1 || v.NumOutputs() != 1 {
		t.Fatalf("restored arity = %d/%d, want 1/1", v.NumInputs(), v.NumOutputs())
	}

	if v.Input(0) != v.OwnedInput(0) || v.Output(0) != v.OwnedOutput(0) {
		t.Fatal("RestoreOwnedPorts did not expose the owned ports")
	}
}

func TestUnplugNodeUsesActiveOutputs(t *testing.T) {
	v := newVoiceNode(2)
	dst := newSinkNode(2)
	dst.PlugAt(v.Output(0), 0)
	dst.PlugAt(v.Output(1), 1)

	dst.UnplugNode(v)

	if dst.Input(0).IsPlugged() || dst.Input(1).IsPlugged() {
		t.Fatal("voice outputs still connected")
	}
}
