package risk

import (
	"math/rand"

	"github.com/kilianp07/wellplan/core/model"
)

// Strategy degrades production of wells hit by operational risks. ApplyRisk
// is a pure transform of an affected context; DefineRisk may trigger a new
// risk before applying it.
type Strategy interface {
	ApplyRisk(ctx *model.WellPlanContext)
	DefineRisk(ctx *model.WellPlanContext)
}

// ClusterRandom randomly triggers cluster-wide production losses. Once a
// cluster is hit, every later well on it inherits the accumulated reduction.
type ClusterRandom struct {
	TriggerChance float64
	Impact        float64
	rng           *rand.Rand
	affected      map[string]float64
}

// NewClusterRandom creates a strategy drawing from the given generator.
func NewClusterRandom(triggerChance, impact float64, rng *rand.Rand) *ClusterRandom {
	return &ClusterRandom{
		TriggerChance: triggerChance,
		Impact:        impact,
		rng:           rng,
		affected:      make(map[string]float64),
	}
}

// ApplyRisk scales the oil profile down by the cluster's accumulated
// reduction and records it under the applied_risk metadata key.
func (s *ClusterRandom) ApplyRisk(ctx *model.WellPlanContext) {
	reduction, ok := s.affected[ctx.Well.Cluster]
	if !ok {
		return
	}
	for i := range ctx.OilProfile {
		ctx.OilProfile[i] *= 1 - reduction
	}
	ctx.Metadata["applied_risk"] = reduction
}

// DefineRisk rolls the trigger and, on a hit, deepens the cluster's
// reduction by Impact, capped at a total loss, then applies it.
func (s *ClusterRandom) DefineRisk(ctx *model.WellPlanContext) {
	if s.rng.Float64() >= s.TriggerChance {
		return
	}
	cluster := ctx.Well.Cluster
	remaining := 1 - s.affected[cluster]
	if remaining > 0 {
		additional := s.Impact
		if additional > remaining {
			additional = remaining
		}
		s.affected[cluster] += additional
		if s.affected[cluster] > 1 {
			s.affected[cluster] = 1
		}
	}
	s.ApplyRisk(ctx)
}
