package core

// Key is a logical game key, abstracted from physical key presses.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyShoot
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyShoot:
		return "Shoot"
	default:
		return "Unknown"
	}
}

// ParseKey maps a DOM-style key name to a logical key.
func ParseKey(raw string) (Key, bool) {
	switch raw {
	case "a", "ArrowLeft":
		return KeyLeft, true
	case "d", "ArrowRight":
		return KeyRight, true
	case " ":
		return KeyShoot, true
	default:
		return 0, false
	}
}

// KeyEvent is a single key transition waiting in the input queue.
type KeyEvent struct {
	Key  Key
	Down bool
}

// InputState reports the resolved, level-triggered input flags.
type InputState interface {
	Left() bool
	Right() bool
	Shoot() bool
}

type keyFlags struct {
	left, right, shoot bool
}

func (f *keyFlags) apply(e KeyEvent) {
	switch e.Key {
	case KeyLeft:
		f.left = e.Down
	case KeyRight:
		f.right = e.Down
	case KeyShoot:
		f.shoot = e.Down
	}
}

// Input accumulates raw keyboard transitions and polled gamepad state and
// resolves them once per update into three flags. A flag is set when either
// the keyboard or the gamepad requests it.
type Input struct {
	queue    []KeyEvent
	keyboard keyFlags
	gamepad  keyFlags
}

// NewInput creates an input with no keys held.
func NewInput() *Input {
	return &Input{}
}

// KeyboardEvent queues a key transition. Unrecognised keys are dropped.
func (in *Input) KeyboardEvent(isDown bool, raw string) bool {
	key, ok := ParseKey(raw)
	if !ok {
		return false
	}
	in.queue = append(in.queue, KeyEvent{Key: key, Down: isDown})
	return true
}

// SetGamepadState overwrites the gamepad flags.
func (in *Input) SetGamepadState(left, right, shoot bool) {
	in.gamepad = keyFlags{left: left, right: right, shoot: shoot}
}

// Update drains the key queue into the keyboard flags and returns the
// events it applied, in arrival order.
func (in *Input) Update() []KeyEvent {
	drained := in.queue
	for _, e := range drained {
		in.keyboard.apply(e)
	}
	in.queue = nil
	return drained
}

// Pending returns the number of queued, not yet applied, events.
func (in *Input) Pending() int {
	return len(in.queue)
}

func (in *Input) Left() bool  { return in.keyboard.left || in.gamepad.left }
func (in *Input) Right() bool { return in.keyboard.right || in.gamepad.right }
func (in *Input) Shoot() bool { return in.keyboard.shoot || in.gamepad.shoot }
