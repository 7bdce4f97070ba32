package bird

import (
	"testing"
	"time"
)

func TestMessageFadesOut(t *testing.T) {
	var m Message
	m.Show("hi", 2*time.Second)

	if !m.Visible() || m.Opacity() != 1 {
		t.Fatalf("fresh message should be fully visible, opacity=%v", m.Opacity())
	}

	m.Update(time.Second)
	if !m.Visible() {
		t.Fatal("message hidden too early")
	}
	if o := m.Opacity(); o <= 0 || o >= 1 {
		t.Errorf("opacity mid-fade = %v, expected within (0,1)", o)
	}

	m.Update(1100 * time.Millisecond)
	if m.Visible() || m.Text() != "" {
		t.Error("message should be hidden after its duration")
	}
}

func TestNewMessageReplacesFade(t *testing.T) {
	var m Message
	m.Show("first", 2*time.Second)
	m.Update(1500 * time.Millisecond)

	m.Show("second", 2*time.Second)
	// The first message would have expired here.
	m.Update(time.Second)
	if m.Text() != "second" {
		t.Fatalf("newer message was hidden by the older timer, text=%q", m.Text())
	}

	m.Update(1100 * time.Millisecond)
	if m.Visible() {
		t.Error("second message should expire on its own schedule")
	}
}

func TestMessageIdleUpdate(t *testing.T) {
	var m Message
	m.Update(time.Second)
	if m.Visible() {
		t.Error("empty message should stay hidden")
	}
}
