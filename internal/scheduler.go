package internal

// Scheduler is a Runtime's priority-queue drain loop, combining the
// drain itself (the infinite-loop guard, here named maxDrainIterations)
// with bundling (bundleDepth) in one type, since they form a single
// cooperating state machine rather than two separate objects.
type Scheduler struct {
	queue *DepQueue

	bundleDepth int
	seen        []*DepItem

	// maxDrainIterations guards against runaway self-re-enqueueing graphs.
	maxDrainIterations int
}

const defaultMaxDrainIterations = 1_000_000

// NewScheduler returns a scheduler with an empty queue.
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue:              NewDepQueue(),
		maxDrainIterations: defaultMaxDrainIterations,
	}
}

// Enqueue inserts item into the priority queue if not already present.
func (s *Scheduler) Enqueue(item *DepItem) {
	s.queue.Push(item)
}

// Remove evicts item from the queue (used on disposal of a queued node).
func (s *Scheduler) Remove(item *DepItem) {
	s.queue.Remove(item)
}

// Compute drains the queue in priority order. Re-entrant calls while a
// drain is already running are no-ops: bundleDepth suppresses them so the
// active drain continues uninterrupted.
func (s *Scheduler) Compute() {
	if s.bundleDepth != 0 {
		return
	}
	if s.queue.Size() == 0 {
		return
	}

	s.bundleDepth++
	defer func() {
		for _, item := range s.seen {
			item.enqueued = false
		}
		s.seen = s.seen[:0]
		s.bundleDepth--
	}()

	iterations := 0
	for s.queue.Size() > 0 {
		iterations++
		if iterations > s.maxDrainIterations {
			panic("rui: possible infinite update loop detected")
		}

		item := s.queue.Pop()
		s.seen = append(s.seen, item)
		item.Recompute()
	}
}

// BundleChanges defers draining until fn (and any nested BundleChanges)
// returns, then drains once. Promise-based deferral is deliberately not
// supported: fn runs synchronously to completion.
func (s *Scheduler) BundleChanges(fn func()) {
	s.bundleDepth++
	fn()
	s.bundleDepth--

	s.Compute()
}

// IsBundling reports whether a BundleChanges scope is currently open.
func (s *Scheduler) IsBundling() bool {
	return s.bundleDepth > 0
}
