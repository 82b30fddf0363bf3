package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type chanSink struct {
	got chan Event
	err error
}

func (s *chanSink) Log(ev Event) error {
	s.got <- ev
	return s.err
}

func TestDispatchDeliversToSink(t *testing.T) {
	sink := &chanSink{got: make(chan Event, 1)}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{
		Actor:    "admin@barberia.cr",
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: "ap-1",
	})

	select {
	case ev := <-sink.got:
		assert.Equal(t, "appointment_confirmed", ev.Action)
		assert.Equal(t, "ap-1", ev.EntityID)
	case <-time.After(2 * time.Second):
		t.Fatal("evento não chegou ao sink")
	}
}

func TestDispatchSurvivesSinkError(t *testing.T) {
	sink := &chanSink{got: make(chan Event, 2), err: errors.New("db indisponível")}
	d := NewDispatcher(sink, zap.NewNop())

	d.Dispatch(Event{Action: "first"})
	d.Dispatch(Event{Action: "second"})

	for _, want := range []string{"first", "second"} {
		select {
		case ev := <-sink.got:
			require.Equal(t, want, ev.Action)
		case <-time.After(2 * time.Second):
			t.Fatalf("evento %q não chegou ao sink", want)
		}
	}
}

func TestDispatchNeverBlocks(t *testing.T) {
	// Sink que nunca consome: a fila enche e eventos extras são
	// descartados sem travar o chamador.
	blocked := &chanSink{got: make(chan Event)}
	d := NewDispatcher(blocked, zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Event{Action: "burst"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch bloqueou com a fila cheia")
	}
}
