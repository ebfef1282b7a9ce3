package eventual

import "log/slog"

// totalEngine is the variant whose resolver always produces a state.
// Resolution cannot fail; resolving an already-resolved engine is the
// one contract violation, and it panics because the total signature has
// no error channel.
type totalEngine[S, E any] struct {
	queue   eventQueue[E]
	resolve Resolver[S, E]
	logger  *slog.Logger
}

func (e *totalEngine[S, E]) QueueEvent(event E) Engine[S, E, S] {
	e.queue.push(event)
	return e
}

func (e *totalEngine[S, E]) QueueEvents(events ...E) Engine[S, E, S] {
	e.queue.pushAll(events)
	return e
}

func (e *totalEngine[S, E]) QueuePrologue(event E) Engine[S, E, S] {
	e.queue.pushPrologue(event)
	return e
}

func (e *totalEngine[S, E]) QueueEpilogue(event E) Engine[S, E, S] {
	e.queue.pushEpilogue(event)
	return e
}

func (e *totalEngine[S, E]) ResolveWith(init func() S, comb Combinator[E]) S {
	sched, err := e.queue.drain(comb)
	if err != nil {
		// Misuse, not a domain failure: S carries no error channel.
		panic(err)
	}

	system := init()
	step := 0
	for _, phase := range phases(sched) {
		for _, event := range phase.events {
			step++
			e.logger.Debug("resolving event", "phase", phase.name, "step", step)
			system = e.resolve(event, system)
		}
	}

	e.logger.Info("resolution complete", "events", step)
	return system
}

func (e *totalEngine[S, E]) ResolveInOrder(init func() S) S {
	return e.ResolveWith(init, Identity[E])
}

// phase pairs a schedule segment with its name for logging.
type phase[E any] struct {
	name   string
	events []E
}

func phases[E any](sched schedule[E]) []phase[E] {
	return []phase[E]{
		{"prologue", sched.prologue},
		{"main", sched.main},
		{"epilogue", sched.epilogue},
	}
}
