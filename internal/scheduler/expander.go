package scheduler

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// sessionNamespace seeds deterministic session IDs so regenerating the same
// range yields the same records.
var sessionNamespace = uuid.MustParse("6f1c1e1a-3b0e-4d5e-9a37-1d2f0c8b7a41")

// SessionID derives the stable ID of a session from its identity tuple.
func SessionID(key domain.SessionKey) string {
	name := key.GroupID + "|" + key.Date + "|" + key.StartTime + "|" + key.Venue
	return uuid.NewSHA1(sessionNamespace, []byte(name)).String()
}

// ExpandRequest describes one bounded expansion of a weekly template.
type ExpandRequest struct {
	GroupID     string
	WindowStart time.Time
	WindowEnd   time.Time
	Template    *domain.ScheduleTemplate
	ModuleLabel string

	// ExistingKeys holds this group's already-persisted sessions; they are
	// skipped silently.
	ExistingKeys map[domain.SessionKey]bool
	// Booked maps slots held by other groups to their owner; a collision is
	// reported as a conflict.
	Booked map[domain.SlotKey]string

	Calendar calendar.Calendar
}

// Occurrence is one expansion step: either a new session or a conflict.
type Occurrence struct {
	Session  domain.Session
	Conflict *domain.ConflictError
}

// ExpandResult is the collected outcome of an expansion.
type ExpandResult struct {
	Sessions  []domain.Session
	Conflicts []domain.ConflictError
}

func validateExpand(req ExpandRequest) error {
	if req.GroupID == "" {
		return domain.NewValidationError("group_id", "group id is required")
	}
	if req.WindowStart.IsZero() || req.WindowEnd.IsZero() {
		return domain.NewValidationError("window", "window start and end are required")
	}
	if calendar.Day(req.WindowEnd).Before(calendar.Day(req.WindowStart)) {
		return domain.NewValidationError("window_end", "end date "+req.WindowEnd.Format(domain.DateLayout)+" is before start date "+req.WindowStart.Format(domain.DateLayout))
	}
	return req.Template.Validate()
}

// Expand returns a lazy, finite sequence of occurrences for the request.
// The sequence can be iterated any number of times; each pass walks the
// window from the start and yields the same occurrences.
func Expand(req ExpandRequest) (iter.Seq[Occurrence], error) {
	if err := validateExpand(req); err != nil {
		return nil, err
	}
	start, end := calendar.Day(req.WindowStart), calendar.Day(req.WindowEnd)

	return func(yield func(Occurrence) bool) {
		emitted := make(map[domain.SessionKey]bool)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !req.Calendar.IsWorkingDay(d) {
				continue
			}
			for _, slot := range req.Template.Slots[d.Weekday()] {
				s := domain.Session{
					GroupID:     req.GroupID,
					Date:        d,
					StartTime:   slot.StartTime,
					EndTime:     slot.EndTime,
					Venue:       slot.Venue,
					ModuleLabel: req.ModuleLabel,
					Notes:       string(slot.Activity),
				}
				key := s.Key()
				if req.ExistingKeys[key] || emitted[key] {
					continue
				}
				emitted[key] = true

				if owner, ok := req.Booked[s.Slot()]; ok && owner != req.GroupID {
					occ := Occurrence{Conflict: &domain.ConflictError{
						Date:               key.Date,
						StartTime:          key.StartTime,
						Venue:              key.Venue,
						GroupID:            req.GroupID,
						ConflictingGroupID: owner,
					}}
					if !yield(occ) {
						return
					}
					continue
				}

				s.ID = SessionID(key)
				if !yield(Occurrence{Session: s}) {
					return
				}
			}
		}
	}, nil
}

// PlanExpandRequest expands a template across every module window of a plan.
type PlanExpandRequest struct {
	Plan         *domain.RolloutPlan
	Template     *domain.ScheduleTemplate
	ExistingKeys map[domain.SessionKey]bool
	Booked       map[domain.SlotKey]string
	// From and To optionally clip the plan (e.g. a GroupSchedule range).
	From     *time.Time
	To       *time.Time
	Calendar calendar.Calendar
}

// ExpandPlan runs one bounded expansion per module, each limited to
// [module start, workplace-activity end], and concatenates them in module
// order.
func ExpandPlan(req PlanExpandRequest) (iter.Seq[Occurrence], error) {
	if req.Plan == nil || len(req.Plan.Modules) == 0 {
		return nil, domain.NewValidationError("plan", "a rollout plan with at least one module is required")
	}

	var parts []iter.Seq[Occurrence]
	for _, m := range req.Plan.Modules {
		from, to := m.StartDate, m.WorkplaceActivityEnd
		if req.From != nil && calendar.Day(*req.From).After(from) {
			from = calendar.Day(*req.From)
		}
		if req.To != nil && calendar.Day(*req.To).Before(to) {
			to = calendar.Day(*req.To)
		}
		if to.Before(from) {
			continue
		}
		seq, err := Expand(ExpandRequest{
			GroupID:      req.Plan.GroupID,
			WindowStart:  from,
			WindowEnd:    to,
			Template:     req.Template,
			ModuleLabel:  moduleLabel(m),
			ExistingKeys: req.ExistingKeys,
			Booked:       req.Booked,
			Calendar:     req.Calendar,
		})
		if err != nil {
			return nil, err
		}
		parts = append(parts, seq)
	}

	return func(yield func(Occurrence) bool) {
		for _, seq := range parts {
			for occ := range seq {
				if !yield(occ) {
					return
				}
			}
		}
	}, nil
}

func moduleLabel(m domain.ModuleWindow) string {
	if m.ModuleCode == "" {
		return m.ModuleName
	}
	if m.ModuleName == "" {
		return m.ModuleCode
	}
	return m.ModuleCode + " " + m.ModuleName
}

// Collect drains a sequence into sessions and conflicts, preserving order.
func Collect(seq iter.Seq[Occurrence]) ExpandResult {
	var res ExpandResult
	for occ := range seq {
		if occ.Conflict != nil {
			res.Conflicts = append(res.Conflicts, *occ.Conflict)
			continue
		}
		res.Sessions = append(res.Sessions, occ.Session)
	}
	return res
}
