package teams

import "math"

// Movement estimates crew relocation time between clusters in days.
type Movement interface {
	MoveDays(fromCluster, toCluster string) float64
}

// SimpleMovement uses flat relocation estimates: one day to move within a
// cluster, a fixed number of days between clusters.
type SimpleMovement struct {
	SameClusterDays    float64
	BetweenClusterDays float64
}

// NewSimpleMovement returns the default flat movement model.
func NewSimpleMovement() SimpleMovement {
	return SimpleMovement{SameClusterDays: 1, BetweenClusterDays: 14}
}

func (m SimpleMovement) MoveDays(fromCluster, toCluster string) float64 {
	if fromCluster == toCluster {
		return m.SameClusterDays
	}
	return m.BetweenClusterDays
}

// Coordinate locates a cluster in meters.
type Coordinate struct {
	X, Y, Z float64
}

// DistanceTo returns the Euclidean distance to another coordinate.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx, dy, dz := c.X-other.X, c.Y-other.Y, c.Z-other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceMovement derives relocation time from cluster geometry. Travel time
// never drops below MinDaysBetweenClusters, and clusters without coordinates
// fall back to that minimum.
type DistanceMovement struct {
	Coordinates            map[string]Coordinate
	MinDaysBetweenClusters float64
	TeamSpeedKmh           float64
	SameClusterDays        float64
}

// NewDistanceMovement returns a geometry-based movement model with the
// default relocation parameters.
func NewDistanceMovement(coordinates map[string]Coordinate) DistanceMovement {
	return DistanceMovement{
		Coordinates:            coordinates,
		MinDaysBetweenClusters: 90,
		TeamSpeedKmh:           15,
		SameClusterDays:        1,
	}
}

func (m DistanceMovement) MoveDays(fromCluster, toCluster string) float64 {
	if fromCluster == toCluster {
		return m.SameClusterDays
	}
	if fromCluster == "" {
		return m.MinDaysBetweenClusters
	}
	from, okFrom := m.Coordinates[fromCluster]
	to, okTo := m.Coordinates[toCluster]
	if !okFrom || !okTo {
		return m.MinDaysBetweenClusters
	}
	distanceMeters := from.DistanceTo(to)
	travelDays := (distanceMeters / (m.TeamSpeedKmh * 1000)) / 24
	return m.MinDaysBetweenClusters + travelDays
}
