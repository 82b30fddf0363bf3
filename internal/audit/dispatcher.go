package audit

import "go.uber.org/zap"

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink recebe eventos já fora do caminho da requisição.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch nunca bloqueia: fila cheia descarta o evento em vez de
// segurar a API.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
