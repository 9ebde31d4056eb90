package motion

import (
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	if err := Defaults.Require(FadeUp, Bloom, SlideLeft, SlideRight, StaggerContainer, HeroFade, HeroRise, Bob); err != nil {
		t.Fatalf("expected all presets to be defined: %v", err)
	}

	t.Run("Slides Mirror Each Other", func(t *testing.T) {
		left, _ := Defaults.Get(SlideLeft)
		right, _ := Defaults.Get(SlideRight)
		if left.Initial.X != -right.Initial.X {
			t.Errorf("expected mirrored offsets, got %v and %v", left.Initial.X, right.Initial.X)
		}
	})

	t.Run("Bob Loops Forever", func(t *testing.T) {
		bob, _ := Defaults.Get(Bob)
		if !bob.Looping() {
			t.Error("expected bob to be a keyframe preset")
		}
		if bob.Timing.Repeat != Infinite {
			t.Errorf("expected infinite repeat, got %d", bob.Timing.Repeat)
		}
	})
}

func TestRequire(t *testing.T) {
	err := Table{}.Require(FadeUp)
	if err == nil || !strings.Contains(err.Error(), FadeUp) {
		t.Errorf("expected missing preset error naming %s, got %v", FadeUp, err)
	}
}

func TestStaggerDelay(t *testing.T) {
	tests := []struct {
		index int
		want  time.Duration
	}{
		{0, 0},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{5, time.Second},
	}

	for _, tt := range tests {
		if got := Defaults.StaggerDelay(StaggerContainer, tt.index); got != tt.want {
			t.Errorf("StaggerDelay(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	if got := Defaults.StaggerDelay("missing", 3); got != 0 {
		t.Errorf("expected 0 for unknown container, got %v", got)
	}
}

func TestStylesheet(t *testing.T) {
	css := Defaults.Stylesheet()

	for _, want := range []string{
		".m-fadeUp{opacity:0;transform:translate3d(0px,50px,0) scale(1);transition:opacity 800ms ease-out 0ms,transform 800ms ease-out 0ms;}",
		".m-fadeUp.is-visible,.is-visible>.m-fadeUp{opacity:1;transform:translate3d(0px,0px,0) scale(1);}",
		"filter:blur(10px);",
		"cubic-bezier(0.22,1,0.36,1)",
		"@keyframes m-bob{0%{opacity:1;transform:translate3d(0px,0px,0) scale(1);}50%{opacity:1;transform:translate3d(0px,10px,0) scale(1);}100%",
		".m-bob{animation:m-bob 2000ms ease-in-out 0ms infinite;}",
		".motion-paused .m-bob{animation-play-state:paused;}",
		"opacity 1000ms ease-out 500ms",
		"prefers-reduced-motion",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("expected stylesheet to contain %q", want)
		}
	}

	if css != Defaults.Stylesheet() {
		t.Error("expected stylesheet output to be stable")
	}

	if (Table{}).Stylesheet() != "" {
		t.Error("expected empty table to render nothing")
	}
}

func TestStylesheetRevealTrigger(t *testing.T) {
	css := Defaults.Stylesheet()

	for _, line := range strings.Split(css, "\n") {
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		selectors, _, _ := strings.Cut(line, "{")
		if strings.Contains(selectors, ":") {
			t.Errorf("expected no pseudo-class triggers, got %q", selectors)
		}
	}

	for _, name := range Defaults.Names() {
		p := Defaults[name]
		if p.Looping() {
			continue
		}
		cls := "." + p.Class()
		target := cls + ".is-visible,.is-visible>" + cls + "{"
		if n := strings.Count(css, target); n != 1 {
			t.Errorf("%s: expected one is-visible target rule, got %d", name, n)
		}
		if n := strings.Count("\n"+css, "\n"+cls+"{"); n != 1 {
			t.Errorf("%s: expected one initial state rule, got %d", name, n)
		}
	}
}

func TestEasingCSS(t *testing.T) {
	if got := EaseInOut.CSS(); got != "ease-in-out" {
		t.Errorf("expected ease-in-out, got %s", got)
	}
	if got := Cubic(0.4, 0, 0.2, 1).CSS(); got != "cubic-bezier(0.4,0,0.2,1)" {
		t.Errorf("unexpected bezier %s", got)
	}
}
