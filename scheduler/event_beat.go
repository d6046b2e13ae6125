package scheduler

import "sync"

// EventBeat is induced once per host run-loop tick to flush buffered
// events toward the runtime.
type EventBeat interface {
	Induce()
}

// RuntimeExecutor runs a callable on the UI runtime thread at some later
// point.
type RuntimeExecutor func(fn func())

// EventBeatManager keeps the set of registered event beats and induces
// them on every tick. Beats are borrowed: the manager never owns them, and
// an owner must unregister a beat before releasing it.
type EventBeatManager struct {
	executor RuntimeExecutor

	mu    sync.Mutex
	beats map[EventBeat]struct{}
}

// NewEventBeatManager creates a manager dispatching through the executor.
// A nil executor runs beats inline on the ticking goroutine.
func NewEventBeatManager(executor RuntimeExecutor) *EventBeatManager {
	return &EventBeatManager{
		executor: executor,
		beats:    make(map[EventBeat]struct{}),
	}
}

// Register adds a beat to the set.
func (m *EventBeatManager) Register(beat EventBeat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beats[beat] = struct{}{}
}

// Unregister removes a beat from the set.
func (m *EventBeatManager) Unregister(beat EventBeat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.beats, beat)
}

// Tick induces every registered beat. The set is snapshotted under the
// mutex before dispatching, so beats may register or unregister from
// within Induce without deadlocking.
func (m *EventBeatManager) Tick() {
	m.mu.Lock()
	snapshot := make([]EventBeat, 0, len(m.beats))
	for beat := range m.beats {
		snapshot = append(snapshot, beat)
	}
	m.mu.Unlock()

	dispatch := func() {
		for _, beat := range snapshot {
			beat.Induce()
		}
	}

	if m.executor != nil {
		m.executor(dispatch)
		return
	}
	dispatch()
}
