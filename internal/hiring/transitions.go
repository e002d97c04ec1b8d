package hiring

import (
	"fmt"

	"github.com/jonathan/hireflow/internal/types"
)

// exits lists the statuses each status may move to when transitions are strict.
// Hired, rejected and withdrawn are terminal.
var exits = map[types.ApplicationStatus][]types.ApplicationStatus{
	types.StatusApplied: {
		types.StatusScreening, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusScreening: {
		types.StatusPhoneInterview, types.StatusTechnicalInterview, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusPhoneInterview: {
		types.StatusTechnicalInterview, types.StatusFinalInterview, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusTechnicalInterview: {
		types.StatusFinalInterview, types.StatusOfferExtended, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusFinalInterview: {
		types.StatusOfferExtended, types.StatusRejected, types.StatusWithdrawn,
	},
	types.StatusOfferExtended: {
		types.StatusHired, types.StatusRejected, types.StatusWithdrawn,
	},
}

// CanTransition reports whether an application may move from one status to another
// under strict transitions. Staying in place is always allowed.
func CanTransition(from, to types.ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range exits[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Service) checkTransition(from, to types.ApplicationStatus) error {
	if !to.Valid() {
		return &ErrValidation{Field: "status", Message: fmt.Sprintf("unknown value %q", to)}
	}
	if s.strict && !CanTransition(from, to) {
		return &ErrValidation{Field: "status", Message: fmt.Sprintf("cannot move from %s to %s", from, to)}
	}
	return nil
}
