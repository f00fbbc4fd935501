// Package animation drives page transitions with a damped spring.
//
// A Tween runs its progress from 1 (the transition just started) to 0 (the
// new page is in place). The Bubble Tea model feeds FrameMsg values back into
// Update until the tween reports that it has settled.
package animation

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const epsilon = 0.002

// fallbackDuration bounds a transition whose options set no MaxDuration
const fallbackDuration = time.Second

// Options configures the spring
type Options struct {
	FPS         int
	Frequency   float64 // angular frequency; higher is faster
	Damping     float64 // damping ratio; 1 is critically damped
	MaxDuration time.Duration
	Disabled    bool // settle on the first frame
}

// DefaultOptions is the slow, critically damped spring used for slides
func DefaultOptions() Options {
	return Options{
		FPS:         60,
		Frequency:   12.0,
		Damping:     1.0,
		MaxDuration: 700 * time.Millisecond,
	}
}

// QuickOptions is a stiffer spring for page flips that should feel instant
func QuickOptions() Options {
	return Options{
		FPS:         60,
		Frequency:   20.0,
		Damping:     1.0,
		MaxDuration: 250 * time.Millisecond,
	}
}

// FrameMsg advances the tween identified by ID
type FrameMsg struct {
	ID  string
	Seq uint64
}

// Tween animates one transition at a time for a single owner
type Tween struct {
	id      string
	opts    Options
	spring  harmonica.Spring
	seq     uint64
	pos     float64
	vel     float64
	running bool
	frames  int
}

// New creates a tween owned by id (usually a controller ID)
func New(id string, opts Options) *Tween {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	return &Tween{
		id:     id,
		opts:   opts,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Frequency, opts.Damping),
	}
}

// Start begins a new transition and returns the command for its first frame.
// A running transition is superseded; its pending frames become stale.
func (t *Tween) Start() tea.Cmd {
	t.seq++
	t.pos = 1
	t.vel = 0
	t.frames = 0
	t.running = true
	return t.tick()
}

// Update consumes a frame. It returns the next frame command and whether the
// transition settled on this frame. Frames for other tweens or superseded
// transitions are ignored.
func (t *Tween) Update(msg FrameMsg) (tea.Cmd, bool) {
	if msg.ID != t.id || msg.Seq != t.seq || !t.running {
		return nil, false
	}

	t.frames++
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, 0)

	if t.opts.Disabled || t.done() {
		t.pos, t.vel = 0, 0
		t.running = false
		return nil, true
	}
	return t.tick(), false
}

// Progress is the fraction of the distance still to travel, in [0, 1]
func (t *Tween) Progress() float64 {
	return math.Max(0, math.Min(1, t.pos))
}

// Running reports whether a transition is being animated
func (t *Tween) Running() bool {
	return t.running
}

// ID returns the owner identity carried by frames
func (t *Tween) ID() string {
	return t.id
}

func (t *Tween) done() bool {
	if math.Abs(t.pos) < epsilon && math.Abs(t.vel) < epsilon {
		return true
	}
	return t.elapsed() >= t.limit()
}

// limit is the longest a transition may run before it is forced to settle
func (t *Tween) limit() time.Duration {
	if t.opts.MaxDuration > 0 {
		return t.opts.MaxDuration
	}
	return fallbackDuration
}

func (t *Tween) elapsed() time.Duration {
	return time.Duration(t.frames) * time.Second / time.Duration(t.opts.FPS)
}

func (t *Tween) frameInterval() time.Duration {
	return time.Second / time.Duration(t.opts.FPS)
}

func (t *Tween) tick() tea.Cmd {
	id, seq := t.id, t.seq
	return tea.Tick(t.frameInterval(), func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Seq: seq}
	})
}
