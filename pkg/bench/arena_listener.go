package bench

import "sync"

// Distributes the arena events between multiple listeners,
// calls are serialized so the listeners don't have to be thread safe
type ArenaListener struct {
	mu        sync.Mutex
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{listeners: make([]ListenerLike, 0, len(listeners))}
	for _, l := range listeners {
		al.Add(l)
	}
	return al
}

func (al *ArenaListener) Add(l ListenerLike) {
	if l == nil {
		return
	}
	al.mu.Lock()
	al.listeners = append(al.listeners, l)
	al.mu.Unlock()
}

func (al *ArenaListener) OnGameFinished(info GameInfo) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnGameFinished(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(info VersusSummaryInfo) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		l.Summary(info)
	}
}
