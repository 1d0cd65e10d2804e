package driveblock

import "drive-time-planner/internal/model"

// Action is the outcome of reconciling one source event.
type Action string

const (
	ActionCreated   Action = "created"
	ActionPatched   Action = "patched"
	ActionDeleted   Action = "deleted"
	ActionUnchanged Action = "unchanged"
	ActionSkipped   Action = "skipped"
)

// ReconcileOutput reports what the reconciler did for one source event.
type ReconcileOutput struct {
	Action Action
	Reason string            // Set when the action is skipped
	Block  *model.DriveBlock // The block written or confirmed, nil for delete/skip
}

// ScanOutput summarizes a full scan across all configured calendars.
type ScanOutput struct {
	Calendars int `json:"calendars"`
	Events    int `json:"events"`
	Created   int `json:"created"`
	Patched   int `json:"patched"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

func (s *ScanOutput) Record(out ReconcileOutput) {
	switch out.Action {
	case ActionCreated:
		s.Created++
	case ActionPatched:
		s.Patched++
	case ActionDeleted:
		s.Deleted++
	case ActionUnchanged:
		s.Unchanged++
	case ActionSkipped:
		s.Skipped++
	}
}
