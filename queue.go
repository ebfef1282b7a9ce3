package eventual

// eventQueue is the ordered event container behind both engine variants.
//
// Events live in three phases: a prologue and an epilogue that always
// resolve in insertion order, and the reorderable main queue in between.
// Only the main queue is handed to the ordering combinator.
//
// The queue is not synchronized: the engine is exclusively owned by its
// caller and resolution is a sequential fold, so there is no concurrent
// access by construction.
type eventQueue[E any] struct {
	prologue []E
	events   []E
	epilogue []E
	drained  bool
}

// schedule is the fully ordered outcome of draining a queue. The phases
// are kept separate so the engines can report which phase an event
// resolved in.
type schedule[E any] struct {
	prologue []E
	main     []E
	epilogue []E
}

func (s schedule[E]) size() int {
	return len(s.prologue) + len(s.main) + len(s.epilogue)
}

func (q *eventQueue[E]) push(event E) {
	q.events = append(q.events, event)
}

// pushAll copies the given events onto the main queue in argument order.
// The copy is what makes convenience queuing safe: the caller's slice is
// never aliased by the queue.
func (q *eventQueue[E]) pushAll(events []E) {
	q.events = append(q.events, events...)
}

func (q *eventQueue[E]) pushPrologue(event E) {
	q.prologue = append(q.prologue, event)
}

func (q *eventQueue[E]) pushEpilogue(event E) {
	q.epilogue = append(q.epilogue, event)
}

// drain consumes the queue, applying the combinator to the main phase.
//
// Draining is single-shot: a second drain returns an EngineError with
// ErrCodeResolved. The backing slices are released so resolved engines
// do not retain event references.
func (q *eventQueue[E]) drain(comb Combinator[E]) (schedule[E], error) {
	if q.drained {
		return schedule[E]{}, newResolvedError()
	}
	q.drained = true

	sched := schedule[E]{
		prologue: q.prologue,
		main:     comb(q.events),
		epilogue: q.epilogue,
	}

	// Release event references held by the consumed queue.
	q.prologue = nil
	q.events = nil
	q.epilogue = nil

	return sched, nil
}
