package statemachine

import "log/slog"

// Observer receives a notification after every executed transition.
// Observers run after the machine's OnTransition callback, in
// registration order.
type Observer[S comparable, E any] interface {
	OnTransition(from S, event E, to S)
}

// AddObserver registers an observer.
func (m *Machine[S, E, T]) AddObserver(observer Observer[S, E]) {
	m.observers = append(m.observers, observer)
}

// RemoveObserver unregisters a previously added observer.
func (m *Machine[S, E, T]) RemoveObserver(observer Observer[S, E]) {
	for i, o := range m.observers {
		if o == observer {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Machine[S, E, T]) notifyTransition(from S, event E, to S) {
	for _, o := range m.observers {
		o.OnTransition(from, event, to)
	}
}

// LoggingObserver logs every transition through slog.
type LoggingObserver[S comparable, E any] struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger falls
// back to slog.Default. Attach per-machine attributes (for example the
// machine id) with logger.With before passing it in.
func NewLoggingObserver[S comparable, E any](logger *slog.Logger) *LoggingObserver[S, E] {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver[S, E]{logger: logger}
}

// OnTransition logs the transition at info level.
func (o *LoggingObserver[S, E]) OnTransition(from S, event E, to S) {
	o.logger.Info("transition",
		slog.Any("from", from),
		slog.Any("event", event),
		slog.Any("to", to))
}
