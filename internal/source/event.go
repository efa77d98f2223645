package source

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// gpuPeer stands in for the original's SOME/IP GPU usage service
// (original_source/Phases/app/server.cpp's SimpleGpuServer): it answers
// synchronous pull requests and periodically broadcasts to subscribers,
// both backed by the same random usage generator. The real SOME/IP runtime
// is an out-of-scope external collaborator; this is its in-process stand-in
// so the event-subscription driver has a live peer to exercise.
type gpuPeer struct {
	mu          sync.Mutex
	subscribers []func(float64)
	stop        chan struct{}
	started     bool
}

func newGPUPeer() *gpuPeer {
	return &gpuPeer{stop: make(chan struct{})}
}

// randomUsage mirrors SimpleGpuServer::randomFloat's 0-100 uniform range.
func randomUsage() float64 {
	return rand.Float64() * 100
}

// requestValue answers a synchronous pull the way requestGpuUsageData does:
// a single fresh reading per call.
func (p *gpuPeer) requestValue() float64 {
	return randomUsage()
}

// subscribe registers handler to be invoked on every broadcast tick.
func (p *gpuPeer) subscribe(handler func(float64)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, handler)
}

// start launches the broadcast loop exactly once, mirroring the original
// server's "every second, broadcastGpuUsageChange" loop.
func (p *gpuPeer) start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				usage := randomUsage()
				p.mu.Lock()
				subs := make([]func(float64), len(p.subscribers))
				copy(subs, p.subscribers)
				p.mu.Unlock()
				for _, s := range subs {
					s(usage)
				}
			}
		}
	}()
}

func (p *gpuPeer) close() {
	close(p.stop)
}

// EventSource is the event-subscription driver. It binds to one owned
// gpuPeer instance per the design note in spec.md §9: "one owned instance
// held by the app controller, not a process-wide global" — the original's
// singleton exists only because the real SOME/IP runtime binds a
// process-wide (domain, instance) pair, a constraint that doesn't apply to
// the simulated peer.
//
// The driver exposes both modes the original specifies: Open subscribes
// onBroadcast, which updates lastValue under a mutex with an atomic
// hasNewData flag, while Read — per the conservative initial design —
// always uses the synchronous pull path rather than consuming lastValue.
type EventSource struct {
	peer *gpuPeer

	mu         sync.Mutex
	lastValue  float64
	hasNewData atomic.Bool
}

// NewEventSource constructs an unopened driver.
func NewEventSource() *EventSource {
	return &EventSource{}
}

// Open binds to the simulated peer and subscribes for broadcast updates.
func (e *EventSource) Open() bool {
	if e.peer != nil {
		return true
	}
	e.peer = newGPUPeer()
	e.peer.subscribe(e.onBroadcast)
	e.peer.start()
	return true
}

func (e *EventSource) onBroadcast(usage float64) {
	e.mu.Lock()
	e.lastValue = usage
	e.mu.Unlock()
	e.hasNewData.Store(true)
}

// Read issues a synchronous pull request and returns the resulting float
// rendered as a string, per the conservative initial design (spec.md §9's
// third open question): the subscription path updates lastValue but Read
// never consumes it.
func (e *EventSource) Read() (string, bool) {
	if e.peer == nil {
		return "", false
	}
	usage := e.peer.requestValue()
	return strconv.FormatFloat(usage, 'f', -1, 64), true
}

// Close stops the simulated peer's broadcast loop.
func (e *EventSource) Close() error {
	if e.peer != nil {
		e.peer.close()
	}
	return nil
}
