package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// VisibleClass is added by the browser engine once an element is revealed.
const VisibleClass = "is-visible"

// PausedClass is added to the document root to pause looping presets.
const PausedClass = "motion-paused"

// Stylesheet renders the table as CSS. Each transition preset gets a class
// holding its initial state and a rule applying its target state once the
// element (or its parent container) carries [VisibleClass]. Keyframe
// presets become looping animations. Output order is stable.
func (t Table) Stylesheet() string {
	var b strings.Builder
	var classes []string

	for _, name := range t.Names() {
		p := t[name]
		cls := "." + p.Class()
		classes = append(classes, cls)

		if p.Looping() {
			writeKeyframes(&b, p)
			fmt.Fprintf(&b, "%s{animation:%s %s %s %s %s;}\n",
				cls, p.Class(), Millis(p.Timing.Duration), p.Timing.Ease.CSS(), Millis(p.Timing.Delay), iterations(p.Timing.Repeat))
			fmt.Fprintf(&b, ".%s %s{animation-play-state:paused;}\n", PausedClass, cls)
			continue
		}

		fmt.Fprintf(&b, "%s{%stransition:%s;}\n", cls, declarations(p.Initial, p.usesBlur()), transition(p))
		fmt.Fprintf(&b, "%s.%s,.%s>%s{%s}\n", cls, VisibleClass, VisibleClass, cls, declarations(p.Target, p.usesBlur()))
	}

	if len(classes) > 0 {
		fmt.Fprintf(&b, "@media (prefers-reduced-motion: reduce){%s{transition:none!important;animation:none!important;opacity:1!important;transform:none!important;filter:none!important;}}\n",
			strings.Join(classes, ","))
	}

	return b.String()
}

// CSS renders the easing as a timing function.
func (e Easing) CSS() string {
	if e.Name != "" {
		return e.Name
	}
	c := e.Curve
	return fmt.Sprintf("cubic-bezier(%s,%s,%s,%s)", num(c[0]), num(c[1]), num(c[2]), num(c[3]))
}

// Transform renders the offset and scale of s.
func (s State) Transform() string {
	return fmt.Sprintf("translate3d(%spx,%spx,0) scale(%s)", num(s.X), num(s.Y), num(s.Scale))
}

func (p Preset) usesBlur() bool {
	return p.Initial.Blur != 0 || p.Target.Blur != 0
}

func declarations(s State, blur bool) string {
	d := fmt.Sprintf("opacity:%s;transform:%s;", num(s.Opacity), s.Transform())
	if blur {
		d += fmt.Sprintf("filter:blur(%spx);", num(s.Blur))
	}
	return d
}

func transition(p Preset) string {
	props := []string{"opacity", "transform"}
	if p.usesBlur() {
		props = append(props, "filter")
	}
	parts := make([]string, len(props))
	for i, prop := range props {
		parts[i] = fmt.Sprintf("%s %s %s %s", prop, Millis(p.Timing.Duration), p.Timing.Ease.CSS(), Millis(p.Timing.Delay))
	}
	return strings.Join(parts, ",")
}

func writeKeyframes(b *strings.Builder, p Preset) {
	fmt.Fprintf(b, "@keyframes %s{", p.Class())
	last := len(p.Keyframes) - 1
	for i, s := range p.Keyframes {
		pct := 0.0
		if last > 0 {
			pct = float64(i) * 100 / float64(last)
		}
		fmt.Fprintf(b, "%s%%{opacity:%s;transform:%s;}", num(pct), num(s.Opacity), s.Transform())
	}
	b.WriteString("}\n")
}

func iterations(repeat int) string {
	switch {
	case repeat < 0:
		return "infinite"
	case repeat == 0:
		return "1"
	default:
		return strconv.Itoa(repeat)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
