package profile

import "testing"

func TestNew(t *testing.T) {
	p := New(WithMode("cpu"), WithPath("/tmp/x"), WithQuiet(true))

	if p.Mode != "cpu" || p.Path != "/tmp/x" || !p.Quiet {
		t.Errorf("New() = %+v", p)
	}
}

func TestStart_NoMode(t *testing.T) {
	ctrl := New().Start()

	if _, ok := ctrl.(ignore); !ok {
		t.Errorf("Start() without mode = %T, want no-op", ctrl)
	}

	ctrl.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	ctrl := New(WithMode("bogus"), WithQuiet(true)).Start()

	if _, ok := ctrl.(ignore); !ok {
		t.Errorf("Start() with unknown mode = %T, want no-op", ctrl)
	}

	ctrl.Stop()
}
