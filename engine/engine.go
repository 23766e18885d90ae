package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-mw/engine/profiler"
	"github.com/Carmen-Shannon/oxy-mw/engine/scene"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
type engine struct {
	mu              sync.Mutex
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	logger           *zap.Logger
	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	scenes map[int]scene.Scene
}

// Engine is the main entry point for the engine.
// It runs a fixed-rate tick loop that updates every active scene in ascending z-index order.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick before scenes update.
	// Use this for game logic that poses bones or toggles skeleton activity.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given z-index key.
	// Scenes are updated in ascending key order.
	//
	// Parameters:
	//   - key: the z-index determining update order (lower updates first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Step runs a single tick with the given delta time, without the ticker.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	Step(deltaTime float32)

	// Run starts the tick loop and blocks until Quit is called or ctx is done.
	//
	// Parameters:
	//   - ctx: context whose cancellation stops the engine
	Run(ctx context.Context)

	// Quit signals the tick loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
		logger:          zap.NewNop(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger)
	}
	return e
}

func (e *engine) Run(ctx context.Context) {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.handleEngine(ctx)
	e.wg.Wait()

	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// Quit signals the tick loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Recovers from panics
// raised by callbacks and signals quit on recovery.
func (e *engine) handleEngine(ctx context.Context) {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("engine goroutine recovered from panic", zap.Any("panic", r))
			e.Quit()
		}
	}()

	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

func (e *engine) Step(deltaTime float32) {
	e.mu.Lock()
	callback := e.tickCallback
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	profile := e.profilingEnabled
	e.mu.Unlock()

	if callback != nil {
		callback(deltaTime)
	}
	for _, s := range active {
		s.Update(deltaTime)
	}
	if profile {
		e.profiler.Tick()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Non-blocking send - if channel is full, replace the pending value
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
