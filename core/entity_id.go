package core

// EntityID is a stable per-match entity handle; zero is never assigned
type EntityID uint64
