package bird

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// collisionMessage is shown whenever the bird bumps into an obstacle.
const collisionMessage = "Little bird, take a breath. Up again soon!"

// encouragements are picked at random for pickups and timed rewards.
var encouragements = []string{
	"You're doing great!",
	"Every flap counts!",
	"Keep shining, little bird!",
	"So proud of you!",
	"You've got this!",
	"What a lovely flight!",
	"Believe in your wings!",
	"One step at a time!",
}

// Message is a transient banner that fades out over a fixed duration of
// driven time. Showing a new message replaces the running fade, so an older
// message can never hide a newer one.
type Message struct {
	text    string
	opacity float64
	fade    *gween.Tween
}

// Show displays text at full opacity for d.
func (m *Message) Show(text string, d time.Duration) {
	m.text = text
	m.opacity = 1
	m.fade = gween.New(1, 0, float32(d.Seconds()), ease.InQuad)
}

// Update advances the fade by dt and clears the message when it ends.
func (m *Message) Update(dt time.Duration) {
	if m.fade == nil {
		return
	}
	v, done := m.fade.Update(float32(dt.Seconds()))
	m.opacity = float64(v)
	if done {
		m.Clear()
	}
}

// Clear hides the message immediately.
func (m *Message) Clear() {
	m.text = ""
	m.opacity = 0
	m.fade = nil
}

// Text returns the visible message or an empty string.
func (m *Message) Text() string {
	return m.text
}

// Opacity returns the current fade level in [0, 1].
func (m *Message) Opacity() float64 {
	return m.opacity
}

// Visible reports whether a message is on screen.
func (m *Message) Visible() bool {
	return m.text != ""
}
