package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/models"
)

// Filter narrows the event set a view renders. Stages apply in order and
// each narrows the previous: organization scope, then the optional building
// selection, then coach-role team scoping.
type Filter struct {
	OrganizationID uuid.UUID
	BuildingID     *uuid.UUID
	// CoachEmail, when set, restricts events to teams coached by that email.
	CoachEmail string
}

// VisibleEvents applies the filter chain. Applying the same filter twice
// yields the same set as applying it once.
func VisibleEvents(events []models.Event, teams []models.Team, f Filter) []models.Event {
	var coached map[uuid.UUID]struct{}
	if f.CoachEmail != "" {
		coached = make(map[uuid.UUID]struct{})
		for _, t := range teams {
			if strings.EqualFold(t.CoachEmail, f.CoachEmail) {
				coached[t.ID] = struct{}{}
			}
		}
	}
	var out []models.Event
	for _, e := range events {
		if e.OrganizationID != f.OrganizationID {
			continue
		}
		if f.BuildingID != nil && e.BuildingID != *f.BuildingID {
			continue
		}
		if coached != nil {
			if _, ok := coached[e.TeamID]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// DayGroup is one agenda bucket: a calendar date and its events sorted by
// start time.
type DayGroup struct {
	Date   time.Time      `json:"date"`
	Events []models.Event `json:"events"`
}

// GroupByDay buckets events by calendar day and sorts buckets
// chronologically. The sort within a bucket is stable: events with equal
// start times keep their input order.
func GroupByDay(events []models.Event) []DayGroup {
	ordered := append([]models.Event(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})
	byDay := make(map[string]*DayGroup)
	var keys []string
	for _, e := range ordered {
		key := e.Start.Format("2006-01-02")
		g, ok := byDay[key]
		if !ok {
			g = &DayGroup{Date: DateOnly(e.Start)}
			byDay[key] = g
			keys = append(keys, key)
		}
		g.Events = append(g.Events, e)
	}
	sort.Strings(keys)
	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *byDay[key])
	}
	return groups
}

// EventsOn returns the events starting on the given date, sorted by start
// time (stable).
func EventsOn(events []models.Event, day time.Time) []models.Event {
	var out []models.Event
	for _, e := range events {
		if SameDay(e.Start, day) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
