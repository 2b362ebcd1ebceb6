package overlay

import (
	"math"
	"strconv"
	"strings"
)

const (
	CounterSteps     = 60
	CounterStepTicks = 2 // 2000ms / 60 steps at 60 TPS
)

// Counter counts a stat label such as "100+" or "70%" up from zero,
// keeping its suffix. Labels without "+" or "%" stay as they are.
type Counter struct {
	label   string
	target  float64
	current float64
	inc     float64
	plus    bool
	percent bool

	animated bool
	started  bool
	running  bool
	done     bool
	ticks    int
}

func NewCounter(label string) *Counter {
	c := &Counter{label: label}
	c.plus = strings.Contains(label, "+")
	c.percent = strings.Contains(label, "%")
	if !c.plus && !c.percent {
		return c
	}

	digits := strings.NewReplacer("+", "", "%", "").Replace(strings.TrimSpace(label))
	n, err := strconv.Atoi(leadingNumber(digits))
	if err != nil {
		return c
	}
	c.target = float64(n)
	c.inc = c.target / CounterSteps
	c.animated = true
	return c
}

// leadingNumber mirrors parseInt: an optional sign and the digits that
// follow it.
func leadingNumber(s string) string {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// Start begins the count. Starting twice has no effect.
func (c *Counter) Start() {
	c.started = true
	if c.animated && !c.running && !c.done {
		c.running = true
	}
}

func (c *Counter) Update() {
	if !c.running {
		return
	}
	c.ticks++
	if c.ticks < CounterStepTicks {
		return
	}
	c.ticks = 0

	c.current += c.inc
	if c.current >= c.target {
		c.current = c.target
		c.running = false
		c.done = true
	}
}

func (c *Counter) Started() bool { return c.started }

func (c *Counter) Done() bool { return !c.animated || c.done }

// String is the label to display. Before Start it is the original label.
func (c *Counter) String() string {
	if !c.animated || (!c.running && !c.done) {
		return c.label
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(math.Floor(c.current))))
	if c.plus {
		b.WriteByte('+')
	}
	if c.percent {
		b.WriteByte('%')
	}
	return b.String()
}
