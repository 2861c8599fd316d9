// Package sim owns the periodic simulation. One goroutine holds the
// WorldState; income, decay, event, weather and autosave ticks and all
// player mutations execute on that goroutine, so writes never overlap and
// every tick reads the state as it is at the moment it runs. There is no
// lock around the world because there is no parallelism over it, only
// interleaving of discrete callbacks.
package sim

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"zooverse/internal/app/ports"
	"zooverse/internal/app/savecodec"
	"zooverse/internal/domain/zoo"
)

var (
	ErrNotRunning     = errors.New("simulation not running")
	ErrAlreadyRunning = errors.New("simulation already running")
)

type Config struct {
	IncomeEvery   time.Duration
	DecayEvery    time.Duration
	EventEvery    time.Duration
	WeatherEvery  time.Duration
	AutosaveEvery time.Duration
	Slot          string
}

func DefaultConfig() Config {
	return Config{
		IncomeEvery:   zoo.IncomeTickInterval,
		DecayEvery:    zoo.DecayTickInterval,
		EventEvery:    zoo.EventTickInterval,
		WeatherEvery:  zoo.WeatherTickInterval,
		AutosaveEvery: zoo.AutosaveTickInterval,
		Slot:          "default",
	}
}

type Deps struct {
	Saves    ports.SaveRepository
	Journal  ports.JournalRepository
	Notifier ports.Notifier
	Metrics  ports.TickRecorder
	Rand     *rand.Rand
	Now      func() time.Time
}

type Loop struct {
	cfg  Config
	deps Deps

	mu      sync.Mutex
	running bool
	cmds    chan command
	stop    chan struct{}
	done    chan struct{}
}

type command struct {
	fn    func(w *zoo.WorldState) error
	reply chan error
}

func New(cfg Config, deps Deps) *Loop {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Loop{cfg: cfg, deps: deps}
}

// Start takes ownership of the world and begins ticking. The caller must
// not touch the world again except through Do.
func (l *Loop) Start(world *zoo.WorldState) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return ErrAlreadyRunning
	}
	l.cmds = make(chan command)
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	l.running = true
	go l.run(world, l.cmds, l.stop, l.done)
	return nil
}

// Stop halts every ticker and blocks until the loop goroutine has exited.
// A final save is written so leaving the world never loses progress.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	stop, done := l.stop, l.done
	l.running = false
	l.mu.Unlock()
	close(stop)
	<-done
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Do runs fn on the loop goroutine against the current world and returns
// its error. Rejected with ErrNotRunning while the world is not entered.
func (l *Loop) Do(ctx context.Context, fn func(w *zoo.WorldState) error) error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return ErrNotRunning
	}
	cmds, stop := l.cmds, l.stop
	l.mu.Unlock()

	cmd := command{fn: fn, reply: make(chan error, 1)}
	select {
	case cmds <- cmd:
	case <-stop:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) run(w *zoo.WorldState, cmds chan command, stop, done chan struct{}) {
	defer close(done)

	income := time.NewTicker(l.cfg.IncomeEvery)
	defer income.Stop()
	decay := time.NewTicker(l.cfg.DecayEvery)
	defer decay.Stop()
	events := time.NewTicker(l.cfg.EventEvery)
	defer events.Stop()
	weather := time.NewTicker(l.cfg.WeatherEvery)
	defer weather.Stop()
	autosave := time.NewTicker(l.cfg.AutosaveEvery)
	defer autosave.Stop()

	for {
		select {
		case <-stop:
			l.save(w)
			return
		case <-income.C:
			if delta := zoo.IncomeTick(w); delta > 0 && l.deps.Metrics != nil {
				l.deps.Metrics.RecordIncome(delta)
			}
		case <-decay.C:
			zoo.DecayTick(w)
		case <-events.C:
			l.eventTick(w)
		case <-weather.C:
			zoo.CycleWeather(w, l.deps.Rand)
		case <-autosave.C:
			l.save(w)
		case cmd := <-cmds:
			cmd.reply <- cmd.fn(w)
		}
	}
}

func (l *Loop) eventTick(w *zoo.WorldState) {
	outcome := zoo.RollEvent(w, l.deps.Rand)
	if outcome == nil {
		return
	}
	if l.deps.Notifier != nil {
		l.deps.Notifier.Notify(outcome.Message, outcome.Severity)
	}
	if l.deps.Metrics != nil {
		l.deps.Metrics.RecordEvent(outcome.Message)
	}
	if l.deps.Journal != nil {
		entry := ports.JournalEntry{
			Slot:       l.cfg.Slot,
			Kind:       "random_event",
			Message:    outcome.Message,
			Delta:      outcome.Applied,
			Severity:   outcome.Severity,
			OccurredAt: l.deps.Now(),
		}
		if err := l.deps.Journal.Append(context.Background(), entry); err != nil {
			log.Printf("journal append: %v", err)
		}
	}
}

// save encodes and persists the current world. Failures are logged and
// counted, never propagated: an autosave must not take down a tick.
func (l *Loop) save(w *zoo.WorldState) {
	blob, err := savecodec.Encode(w)
	if err == nil {
		err = l.deps.Saves.SaveBlob(context.Background(), l.cfg.Slot, blob)
	}
	if err != nil {
		log.Printf("autosave slot %s: %v", l.cfg.Slot, err)
	}
	if l.deps.Metrics != nil {
		l.deps.Metrics.RecordAutosave(err == nil)
	}
}
