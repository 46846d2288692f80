package builder

import (
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

// Infrastructure reports when ground facilities allow a well to start. It is
// a lower bound on the well's scheduling window.
type Infrastructure interface {
	ReadyDate(well model.Well) time.Time
}

// SimpleInfrastructure uses the readiness date recorded on the well itself;
// wells without one are ready immediately.
type SimpleInfrastructure struct{}

func (SimpleInfrastructure) ReadyDate(well model.Well) time.Time {
	return well.ReadinessDate
}
