package simulation

import (
	"fmt"
	"math"

	"github.com/parcelworks/extraction-planner/pkg/config"
)

// Simulator runs the staged-labor workforce simulation: tier by tier, tick
// by tick, it fills county slots with workers (idle returners before new
// hires), accrues production-phase labor cost, and diverts cycle completers
// to the heartbeat maintenance crew as extracted volume grows. A Simulator
// is built fresh per run and is deterministic for identical inputs.
type Simulator struct {
	cfg          *config.Config
	workloads    []Workload
	maxWorkers   int64 // lifetime hire cap, 0 = unbounded
	hiresPerWeek int

	events []Event
	weekly []WeekPoint

	idle          int
	totalHired    int64
	hiredThisWeek int
	heartbeat     int
	laborCost     float64
}

// Result is the simulator's output: accumulated labor cost, county totals,
// the final heartbeat crew, and the weekly series consumed by the report.
type Result struct {
	LaborCost          float64
	FractionalCounties float64
	CountiesCompleted  int
	FinalHeartbeat     int
	Weeks              []WeekPoint
	Events             []Event
}

// NewSimulator creates a simulator over the given tier workloads.
// maxWorkers of 0 means unbounded; hiresPerWeek of 0 falls back to the
// configured onboarding rate.
func NewSimulator(cfg *config.Config, workloads []Workload, maxWorkers int64, hiresPerWeek int) *Simulator {
	if hiresPerWeek <= 0 {
		hiresPerWeek = cfg.Rates.NewHiresPerWeek
	}

	return &Simulator{
		cfg:          cfg,
		workloads:    workloads,
		maxWorkers:   maxWorkers,
		hiresPerWeek: hiresPerWeek,
		events:       []Event{},
		weekly:       []WeekPoint{},
	}
}

// Run executes the simulation and returns the aggregated result.
func (s *Simulator) Run() Result {
	ticksPerWeek := s.cfg.TicksPerWeek

	tick := 0
	tickInWeek := 0
	week := 0
	weekOccupancy := 0

	completedBase := 0.0 // properties finished in earlier tiers
	countiesCompleted := 0
	stalled := false

	idx := s.nextWorkload(0)
	var pl *pipeline
	if idx < len(s.workloads) {
		pl = newPipeline(s.workloads[idx].Tier, ticksPerWeek)
		s.addTierEvent(EventTypeTierStarted, week, tick, s.workloads[idx].Tier.Label)
	}

	for idx < len(s.workloads) && !stalled {
		wl := s.workloads[idx]

		// 1. Fill any open county slots, idle returners first.
		s.allocate(pl, wl)

		// 2. Accrue labor for the production phase only.
		s.laborCost += float64(pl.producing()) * s.cfg.Rates.LaborPerPersonWeekly / float64(ticksPerWeek)

		// 3. Advance the shift register.
		completers := pl.advance()

		// 4. Dispose of completers: heartbeat first, then same-tier
		// restarts (recycled workers bypass the hire cap), then idle.
		if completers > 0 {
			pl.complete(completers, wl)

			required := maintainersFor(completedBase+pl.propertiesCompleted, s.cfg.Rates.PropertiesPerMaintainer)
			if divert := required - s.heartbeat; divert > 0 {
				if divert > completers {
					divert = completers
				}
				s.heartbeat += divert
				completers -= divert
				s.addEvent(Event{
					Week:      tick / ticksPerWeek,
					Tick:      tick,
					Type:      EventTypeHeartbeatCrew,
					TierLabel: wl.Tier.Label,
					Heartbeat: s.heartbeat,
					Message:   fmt.Sprintf("Heartbeat crew grew to %d", s.heartbeat),
				})
			}

			if unfilled := wl.CountiesNeeded - pl.countiesStarted; unfilled > 0 && completers > 0 {
				restart := completers
				if restart > unfilled {
					restart = unfilled
				}
				pl.start(restart)
				completers -= restart
			}
			s.idle += completers
		}

		// 5. Tier transition once the work drains.
		if pl.done(wl) {
			completedBase += pl.propertiesCompleted
			countiesCompleted += pl.countiesCompleted
			s.addTierEvent(EventTypeTierCompleted, tick/ticksPerWeek, tick, wl.Tier.Label)

			idx = s.nextWorkload(idx + 1)
			if idx < len(s.workloads) {
				pl = newPipeline(s.workloads[idx].Tier, ticksPerWeek)
				s.addTierEvent(EventTypeTierStarted, tick/ticksPerWeek, tick, s.workloads[idx].Tier.Label)
			}
		} else if s.starved(pl, wl) {
			// Lifetime hire cap exhausted with nobody in flight and no
			// idle returners: the remaining work is unreachable.
			stalled = true
			s.addEvent(Event{
				Week:      tick / ticksPerWeek,
				Tick:      tick,
				Type:      EventTypeStalled,
				TierLabel: wl.Tier.Label,
				Message:   fmt.Sprintf("Worker cap %d reached with %d counties left in tier %s", s.maxWorkers, wl.CountiesNeeded-pl.countiesCompleted, wl.Tier.Label),
				IsWarning: true,
			})
		}

		// 6. Weekly sample and flush.
		if idx < len(s.workloads) {
			weekOccupancy += pl.occupancy()
		}
		tick++
		tickInWeek++
		if tickInWeek == ticksPerWeek {
			s.flushWeek(week, weekOccupancy, tickInWeek)
			week++
			tickInWeek = 0
			weekOccupancy = 0
			s.hiredThisWeek = 0
		}
	}

	// Final partial week.
	if tickInWeek > 0 {
		s.flushWeek(week, weekOccupancy, tickInWeek)
	}

	fractional := 0.0
	for _, wl := range s.workloads {
		fractional += wl.FractionalCounties
	}

	return Result{
		LaborCost:          s.laborCost,
		FractionalCounties: fractional,
		CountiesCompleted:  countiesCompleted,
		FinalHeartbeat:     s.heartbeat,
		Weeks:              s.weekly,
		Events:             s.events,
	}
}

// allocate fills the tier's open county slots for this tick. Idle workers
// are reassigned without limit; new hires are capped per week by the
// onboarding rate and, when configured, by the lifetime worker maximum.
func (s *Simulator) allocate(pl *pipeline, wl Workload) {
	unfilled := wl.CountiesNeeded - pl.countiesStarted
	if unfilled <= 0 {
		return
	}

	fromIdle := unfilled
	if fromIdle > s.idle {
		fromIdle = s.idle
	}
	s.idle -= fromIdle
	pl.start(fromIdle)
	unfilled -= fromIdle
	if unfilled <= 0 {
		return
	}

	hires := s.hiresPerWeek - s.hiredThisWeek
	if hires > unfilled {
		hires = unfilled
	}
	if s.maxWorkers > 0 {
		if room := s.maxWorkers - s.totalHired; int64(hires) > room {
			hires = int(room)
		}
	}
	if hires <= 0 {
		return
	}

	s.hiredThisWeek += hires
	s.totalHired += int64(hires)
	pl.start(hires)
}

// starved reports a permanently unreachable state: open county slots with an
// empty pipeline, no idle workers, and the lifetime hire cap exhausted.
func (s *Simulator) starved(pl *pipeline, wl Workload) bool {
	if s.maxWorkers <= 0 || s.totalHired < s.maxWorkers {
		return false
	}
	return s.idle == 0 && pl.occupancy() == 0 && pl.countiesStarted < wl.CountiesNeeded
}

// nextWorkload skips zero-property tiers starting at index i.
func (s *Simulator) nextWorkload(i int) int {
	for i < len(s.workloads) && s.workloads[i].Properties == 0 {
		i++
	}
	return i
}

func (s *Simulator) flushWeek(week, occupancySum, ticks int) {
	s.weekly = append(s.weekly, WeekPoint{
		Week:          week,
		ActiveWorkers: float64(occupancySum) / float64(ticks),
		Heartbeat:     s.heartbeat,
	})
}

func (s *Simulator) addTierEvent(eventType EventType, week, tick int, label string) {
	message := fmt.Sprintf("Tier '%s' started", label)
	if eventType == EventTypeTierCompleted {
		message = fmt.Sprintf("Tier '%s' completed", label)
	}
	s.addEvent(Event{
		Week:      week,
		Tick:      tick,
		Type:      eventType,
		TierLabel: label,
		Heartbeat: s.heartbeat,
		Message:   message,
	})
}

// addEvent adds an event to the event list
func (s *Simulator) addEvent(event Event) {
	s.events = append(s.events, event)
}

// maintainersFor returns the heartbeat crew required for a cumulative
// extracted property volume: one maintainer per fixed block of properties,
// with any positive volume requiring at least one.
func maintainersFor(properties float64, perMaintainer int64) int {
	if properties <= 0 {
		return 0
	}
	return int(math.Ceil(properties / float64(perMaintainer)))
}
