package constants

// System Priorities
// Lower values run first; the order mirrors the frame steps of the simulation
const (
	PriorityCollision = 10
	PriorityOutcome   = 20
	PrioritySpawn     = 30
	PriorityMotion    = 40
	PriorityWeapon    = 50
	PriorityCull      = 100
)

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask is used for ring indexing
	EventBufferMask = EventQueueSize - 1
)

// Metrics keys
const (
	MetricFrames       = "sim.frames"
	MetricEntities     = "sim.entities"
	MetricPeakEntities = "sim.entities_peak"
	MetricSpawned      = "spawn.total"
	MetricKills        = "combat.kills"
	MetricPlayerHits   = "combat.player_hits"
	MetricShotsFired   = "combat.shots"
)
