package eventual

import "log/slog"

// fallibleEngine is the variant whose resolver may reject an event.
// Resolution halts at the first resolver error: later events in the
// schedule are never passed to the resolver, and the partially resolved
// state is never exposed.
type fallibleEngine[S, E any] struct {
	queue   eventQueue[E]
	resolve FallibleResolver[S, E]
	logger  *slog.Logger
}

func (e *fallibleEngine[S, E]) QueueEvent(event E) Engine[S, E, Result[S]] {
	e.queue.push(event)
	return e
}

func (e *fallibleEngine[S, E]) QueueEvents(events ...E) Engine[S, E, Result[S]] {
	e.queue.pushAll(events)
	return e
}

func (e *fallibleEngine[S, E]) QueuePrologue(event E) Engine[S, E, Result[S]] {
	e.queue.pushPrologue(event)
	return e
}

func (e *fallibleEngine[S, E]) QueueEpilogue(event E) Engine[S, E, Result[S]] {
	e.queue.pushEpilogue(event)
	return e
}

func (e *fallibleEngine[S, E]) ResolveWith(init func() S, comb Combinator[E]) Result[S] {
	sched, err := e.queue.drain(comb)
	if err != nil {
		return Fail[S](err)
	}

	system := init()
	step := 0
	for _, phase := range phases(sched) {
		for _, event := range phase.events {
			step++
			e.logger.Debug("resolving event", "phase", phase.name, "step", step)

			next, err := e.resolve(event, system)
			if err != nil {
				// The resolver's error is surfaced verbatim: no
				// wrapping, no retry, no partial state.
				e.logger.Warn("resolution halted",
					"phase", phase.name,
					"step", step,
					"error", err,
				)
				return Fail[S](err)
			}
			system = next
		}
	}

	e.logger.Info("resolution complete", "events", step)
	return OK(system)
}

func (e *fallibleEngine[S, E]) ResolveInOrder(init func() S) Result[S] {
	return e.ResolveWith(init, Identity[E])
}
