package session

import (
	"log"
	"math"
	"sync"
	"time"

	"tummo/internal/core/history"
	"tummo/internal/core/model"
)

// CuePlayer plays named audio cues. Playback is fire-and-forget and
// best-effort: the engine never waits on it and ignores failures.
type CuePlayer interface {
	// Unlock prepares the player for playback. It is invoked from
	// user-gesture paths before any cue is expected to play and must be
	// safe to call repeatedly.
	Unlock()
	// Play triggers a cue at the given volume hint and reports whether the
	// cue was dispatched. It must not block or panic.
	Play(cue Cue, volume float64) bool
}

// Store persists the session history aggregate. Both operations are
// best-effort; errors are reported but must never be fatal to the engine.
type Store interface {
	Load() (history.AppData, error)
	Save(history.AppData) error
}

// Engine is the state machine driving one breathing session at a time across
// configurable rounds of breathing, retention and recovery. All transitions
// happen under one mutex, on user-action or timer-fire callbacks, so they are
// serialized exactly as they occur.
type Engine struct {
	mu        sync.Mutex
	scheduler Scheduler
	cues      CuePlayer
	store     Store
	config    model.SessionConfig
	timings   model.Timings

	phase Phase
	// seq is bumped whenever the outstanding timer set is invalidated.
	// Every scheduled callback captures the value current at scheduling
	// time and is discarded if the engine has moved on since.
	seq     uint64
	cancels []func()

	currentRound      int
	breathCount       int
	isInhale          bool
	retentionTime     int
	recoveryCountdown int
	roundRetentions   []int
	sessionStart      time.Time

	appData history.AppData
	events  []chan Event
	closed  bool
}

// New creates an Engine in the setup phase and loads the persisted history.
// A load failure leaves the history empty; the engine still works, the
// record just may not survive a restart.
func New(scheduler Scheduler, cues CuePlayer, store Store, config model.SessionConfig, timings model.Timings) *Engine {
	config.Rounds = model.ClampRounds(config.Rounds)
	config.BreathsPerRound = model.ClampBreathsPerRound(config.BreathsPerRound)
	config.Volume = model.ClampVolume(config.Volume)

	engine := &Engine{
		scheduler: scheduler,
		cues:      cues,
		store:     store,
		config:    config,
		timings:   timings,
		phase:     PhaseSetup,
	}
	if store != nil {
		data, err := store.Load()
		if err != nil {
			log.Printf("load session history: %v", err)
		} else {
			engine.appData = data
		}
	}
	return engine
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close cancels any outstanding timers and closes observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.cancelTimersLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// StartSession begins a new session from the setup phase. The cue player is
// unlocked synchronously within this user-gesture call, before any cue fires.
func (engine *Engine) StartSession() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseSetup {
		return
	}
	engine.unlockCuesLocked()

	engine.currentRound = 1
	engine.roundRetentions = nil
	engine.sessionStart = engine.scheduler.Now()
	engine.enterBreathingLocked()
}

// EndRetention terminates the retention hold, records its duration and moves
// to recovery. Ignored outside the retention phase.
func (engine *Engine) EndRetention() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseRetention {
		return
	}
	engine.roundRetentions = append(engine.roundRetentions, engine.retentionTime)
	engine.enterRecoveryLocked()
}

// NextRound advances past a finished round: into the next round's breathing
// phase, or to completion after the final round. Ignored outside round_done.
func (engine *Engine) NextRound() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseRoundDone {
		return
	}
	engine.unlockCuesLocked()

	if engine.currentRound < engine.config.Rounds {
		engine.currentRound++
		engine.enterBreathingLocked()
		return
	}
	engine.completeLocked()
}

// Quit abandons the session in progress and returns to setup. Nothing is
// persisted. Safe to call from any phase, any number of times.
func (engine *Engine) Quit() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	switch engine.phase {
	case PhaseBreathing, PhaseRetention, PhaseRecovery, PhaseRoundDone:
		engine.resetToSetupLocked()
	}
}

// Done dismisses a completed session and returns to setup. The session has
// already been persisted. Ignored outside the complete phase.
func (engine *Engine) Done() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseComplete {
		return
	}
	engine.resetToSetupLocked()
}

// SetRounds updates the configured round count. Editable only during setup;
// the value is clamped to the valid range.
func (engine *Engine) SetRounds(rounds int) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseSetup {
		return
	}
	engine.config.Rounds = model.ClampRounds(rounds)
	engine.emitLocked(EventConfigChange)
}

// SetBreathsPerRound updates the configured breaths per round. Editable only
// during setup; the value is clamped and snapped to the step.
func (engine *Engine) SetBreathsPerRound(breaths int) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseSetup {
		return
	}
	engine.config.BreathsPerRound = model.ClampBreathsPerRound(breaths)
	engine.emitLocked(EventConfigChange)
}

// SetVolume updates the cue volume hint. Editable only during setup.
func (engine *Engine) SetVolume(volume float64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase != PhaseSetup {
		return
	}
	engine.config.Volume = model.ClampVolume(volume)
	engine.emitLocked(EventConfigChange)
}

// Snapshot returns a read-only view of the engine state plus the derived
// history stats.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

func (engine *Engine) enterBreathingLocked() {
	engine.transitionLocked(PhaseBreathing)
	engine.breathCount = 0
	engine.isInhale = true
	engine.emitLocked(EventPhaseChange)

	start := engine.scheduler.Now()
	engine.scheduleLocked(engine.timings.LeadIn, func() {
		engine.runBreathCycleLocked(start, 0)
	})
}

// runBreathCycleLocked starts breath cycle n. Cycle starts are fixed at
// start + LeadIn + n*CyclePeriod, independent of cue latency.
func (engine *Engine) runBreathCycleLocked(start time.Time, cycle int) {
	engine.isInhale = true
	engine.playLocked(CueInhale)
	engine.emitLocked(EventProgress)

	engine.scheduleLocked(engine.timings.InhaleToExhale, engine.finishBreathLocked)

	if cycle+1 < engine.config.BreathsPerRound {
		next := start.Add(engine.timings.LeadIn + time.Duration(cycle+1)*engine.timings.CyclePeriod)
		engine.scheduleLocked(next.Sub(engine.scheduler.Now()), func() {
			engine.runBreathCycleLocked(start, cycle+1)
		})
	}
}

func (engine *Engine) finishBreathLocked() {
	engine.isInhale = false
	engine.playLocked(CueExhale)
	if engine.breathCount < engine.config.BreathsPerRound {
		engine.breathCount++
	}
	engine.emitLocked(EventProgress)

	if engine.breathCount == engine.config.BreathsPerRound {
		engine.scheduleLocked(engine.timings.PreRetentionPause, engine.enterRetentionLocked)
	}
}

func (engine *Engine) enterRetentionLocked() {
	engine.transitionLocked(PhaseRetention)
	engine.retentionTime = 0
	engine.playLocked(CueHoldStart)
	engine.emitLocked(EventPhaseChange)

	start := engine.scheduler.Now()
	engine.scheduleRetentionSecondLocked(start, 1)
}

// Retention has no automatic exit; the counter runs until EndRetention or
// Quit cancels it.
func (engine *Engine) scheduleRetentionSecondLocked(start time.Time, second int) {
	at := start.Add(time.Duration(second) * time.Second)
	engine.scheduleLocked(at.Sub(engine.scheduler.Now()), func() {
		engine.retentionTime = second
		if interval := int(engine.timings.RetentionCueEvery / time.Second); interval > 0 && second%interval == 0 {
			engine.playLocked(CueTick)
		}
		engine.emitLocked(EventProgress)
		engine.scheduleRetentionSecondLocked(start, second+1)
	})
}

func (engine *Engine) enterRecoveryLocked() {
	engine.transitionLocked(PhaseRecovery)
	engine.recoveryCountdown = engine.timings.RecoverySeconds
	engine.playLocked(CueRecoveryIn)
	engine.emitLocked(EventPhaseChange)

	start := engine.scheduler.Now()
	engine.scheduleRecoverySecondLocked(start, 1)
}

func (engine *Engine) scheduleRecoverySecondLocked(start time.Time, second int) {
	at := start.Add(time.Duration(second) * time.Second)
	engine.scheduleLocked(at.Sub(engine.scheduler.Now()), func() {
		// Beep while 4..1 seconds remain, before decrementing.
		if engine.recoveryCountdown >= 1 && engine.recoveryCountdown <= engine.timings.RecoveryBeepFrom {
			engine.playLocked(CueCountdownBeep)
		}
		if engine.recoveryCountdown > 0 {
			engine.recoveryCountdown--
		}
		engine.emitLocked(EventProgress)

		if engine.recoveryCountdown == 0 {
			engine.playLocked(CueRoundComplete)
			engine.scheduleLocked(engine.timings.PostRecoveryPause, func() {
				engine.transitionLocked(PhaseRoundDone)
				engine.emitLocked(EventPhaseChange)
			})
			return
		}
		engine.scheduleRecoverySecondLocked(start, second+1)
	})
}

func (engine *Engine) completeLocked() {
	now := engine.scheduler.Now()
	retentions := append([]int(nil), engine.roundRetentions...)
	record := history.SessionRecord{
		Date:            history.DateKey(now),
		Rounds:          engine.config.Rounds,
		BreathsPerRound: engine.config.BreathsPerRound,
		Retentions:      retentions,
		DurationSeconds: int(math.Round(now.Sub(engine.sessionStart).Seconds())),
		Timestamp:       now.UnixMilli(),
	}

	engine.appData = engine.appData.Append(record)
	if engine.store != nil {
		if err := engine.store.Save(engine.appData); err != nil {
			log.Printf("save session history: %v", err)
		}
	}

	engine.playLocked(CueSessionComplete)
	engine.transitionLocked(PhaseComplete)
	engine.emitLocked(EventPhaseChange)
}

// resetToSetupLocked discards all transient session state. Configuration is
// preserved.
func (engine *Engine) resetToSetupLocked() {
	engine.transitionLocked(PhaseSetup)
	engine.currentRound = 0
	engine.breathCount = 0
	engine.isInhale = false
	engine.retentionTime = 0
	engine.recoveryCountdown = 0
	engine.roundRetentions = nil
	engine.sessionStart = time.Time{}
	engine.emitLocked(EventPhaseChange)
}

// transitionLocked is the single place phase changes occur. Entering a new
// phase always cancels any timers left by the prior phase.
func (engine *Engine) transitionLocked(phase Phase) {
	engine.cancelTimersLocked()
	engine.phase = phase
}

func (engine *Engine) cancelTimersLocked() {
	engine.seq++
	for _, cancel := range engine.cancels {
		cancel()
	}
	engine.cancels = nil
}

// scheduleLocked registers a single-shot callback carrying the current
// sequence token. A fire that arrives after the engine has transitioned (or
// otherwise invalidated its timer set) is discarded without acting.
func (engine *Engine) scheduleLocked(delay time.Duration, fn func()) {
	token := engine.seq
	cancel := engine.scheduler.Schedule(delay, func() {
		engine.mu.Lock()
		defer engine.mu.Unlock()
		if engine.seq != token || engine.closed {
			return
		}
		fn()
	})
	engine.cancels = append(engine.cancels, cancel)
}

func (engine *Engine) unlockCuesLocked() {
	if engine.cues != nil {
		engine.cues.Unlock()
	}
}

func (engine *Engine) playLocked(cue Cue) {
	if engine.cues == nil {
		return
	}
	// Best effort: a failed cue never affects session timing.
	_ = engine.cues.Play(cue, engine.config.Volume)
}

func (engine *Engine) emitLocked(eventType EventType) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		At:       engine.scheduler.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
