// internal/defs/types.go
package defs

// AmmoDefinition holds all the static data for a shell type.
type AmmoDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MuzzleVelocity float64 `json:"muzzle_velocity"` // m/s
	Mass           float64 `json:"mass"`            // kg, informational
	DragK          float64 `json:"drag_k"`          // deceleration = DragK * v^2
	DispersionRad  float64 `json:"dispersion_rad"`  // cone half-angle, radians
	MaxFlightTime  float64 `json:"max_flight_time"` // seconds
	MaxRange       float64 `json:"max_range"`       // meters from muzzle
}

// TargetDefinition holds the hitbox dimensions for a target type.
type TargetDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length float64 `json:"length"` // along Z, meters
	Width  float64 `json:"width"`  // along X
	Height float64 `json:"height"` // along Y
}

// MissionKind selects the mission behavior implementation.
type MissionKind string

const (
	MissionRange  MissionKind = "RANGE"  // неподвижные цели, бесконечный респаун
	MissionPatrol MissionKind = "PATROL" // цели идут поперёк сектора
)

// MissionDefinition holds the tuning parameters for one mission.
type MissionDefinition struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Kind          MissionKind `json:"kind"`
	AmmoID        string      `json:"ammo_id"`
	TargetID      string      `json:"target_id"`
	SpawnRangeMin float64     `json:"spawn_range_min"` // meters
	SpawnRangeMax float64     `json:"spawn_range_max"`
	LateralMax    float64     `json:"lateral_max"` // meters off-center
	TargetCount   int         `json:"target_count"`
	TargetSpeed   float64     `json:"target_speed"`  // m/s, PATROL only
	RespawnDelay  float64     `json:"respawn_delay"` // seconds, PATROL only
}
