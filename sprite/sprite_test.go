package sprite

import (
	"errors"
	"testing"

	"github.com/lixenwraith/kungfu-chess/core"
)

func TestNew_RequiresFrames(t *testing.T) {
	if _, err := New(nil, 6, true); !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestAnimation_Loops(t *testing.T) {
	a, err := New([]string{"a", "b", "c"}, 10, true)
	if err != nil {
		t.Fatal(err)
	}
	a.Reset(core.Command{TimestampMs: 1000})

	steps := []struct {
		now  int64
		want string
	}{
		{1000, "a"}, {1099, "a"}, {1100, "b"}, {1250, "c"}, {1300, "a"},
	}
	for _, s := range steps {
		a.Update(s.now)
		if got := a.Frame(); got != s.want {
			t.Errorf("frame at %d = %q, want %q", s.now, got, s.want)
		}
	}
}

func TestAnimation_HoldsLastFrameWithoutLoop(t *testing.T) {
	a, _ := New([]string{"a", "b"}, 10, false)
	a.Reset(core.Command{TimestampMs: 0})
	a.Update(10_000)
	if a.Frame() != "b" {
		t.Errorf("frame = %q, want last", a.Frame())
	}
}

func TestClone_IndependentPlayback(t *testing.T) {
	a, _ := New([]string{"a", "b"}, 10, true)
	b := a.Clone()
	a.Reset(core.Command{TimestampMs: 0})
	a.Update(100)
	if a.Index() != 1 || b.Index() != 0 {
		t.Errorf("indices a=%d b=%d", a.Index(), b.Index())
	}
}
