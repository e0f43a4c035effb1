package simulation

// EventType defines the type of event in the simulation
type EventType string

const (
	EventTypeTierStarted   EventType = "tier-started"
	EventTypeTierCompleted EventType = "tier-completed"
	EventTypeHeartbeatCrew EventType = "heartbeat-crew"
	EventTypeStalled       EventType = "workforce-stalled"
)

// Event is a point-in-time milestone in the simulation, recorded for the
// report timeline. Events are bookkeeping only; they never feed back into
// the numeric output.
type Event struct {
	Week          int
	Tick          int
	Type          EventType
	TierLabel     string
	ActiveWorkers int
	Heartbeat     int
	Message       string
	IsWarning     bool
}

// WeekPoint is one entry of the weekly output series: the tick-averaged
// active-worker count over the week and the heartbeat crew at week's end.
type WeekPoint struct {
	Week          int
	ActiveWorkers float64
	Heartbeat     int
}
