// Package store holds all application state in memory. There is no database:
// collections live behind a single RWMutex so that cascade deletes mutate the
// entity and event collections together, never exposing an orphaned reference.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/models"
)

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("not found")

// ChangeNotifier is invoked after a mutation commits, outside the store lock.
// Used to push schedule-change notices to connected calendars.
type ChangeNotifier func(orgID uuid.UUID, entity, action string, id uuid.UUID)

// Store is the in-memory state store.
type Store struct {
	mu            sync.RWMutex
	organizations []models.Organization
	users         []models.User
	buildings     []models.Building
	teams         []models.Team
	events        []models.Event
	notify        ChangeNotifier
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetNotifier sets the change notification callback.
func (s *Store) SetNotifier(fn ChangeNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

func (s *Store) changed(orgID uuid.UUID, entity, action string, id uuid.UUID) {
	s.mu.RLock()
	fn := s.notify
	s.mu.RUnlock()
	if fn != nil {
		fn(orgID, entity, action, id)
	}
}

// --- organizations and users (seeded; no mutation endpoints) ---

// AddOrganization inserts an organization. Used by seeding.
func (s *Store) AddOrganization(org models.Organization) models.Organization {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	now := time.Now()
	org.CreatedAt, org.UpdatedAt = now, now
	s.mu.Lock()
	s.organizations = append(s.organizations, org)
	s.mu.Unlock()
	return org
}

// AddUser inserts a user. Used by seeding.
func (s *Store) AddUser(u models.User) models.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return u
}

// Organizations returns all organizations.
func (s *Store) Organizations() []models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Organization(nil), s.organizations...)
}

// OrganizationByID returns an organization by id.
func (s *Store) OrganizationByID(id uuid.UUID) (models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.organizations {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Organization{}, ErrNotFound
}

// Users returns all users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// UserByEmail returns a user by email (case-insensitive).
func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UserByID returns a user by id.
func (s *Store) UserByID(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// --- buildings ---

// Buildings returns the organization's buildings.
func (s *Store) Buildings(orgID uuid.UUID) []models.Building {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Building
	for _, b := range s.buildings {
		if b.OrganizationID == orgID {
			out = append(out, b)
		}
	}
	return out
}

// BuildingByID returns a building by id within the organization.
func (s *Store) BuildingByID(orgID, id uuid.UUID) (models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.buildings {
		if b.OrganizationID == orgID && b.ID == id {
			return b, nil
		}
	}
	return models.Building{}, ErrNotFound
}

// BuildingByName returns a building by name, case-insensitive. CSV import
// resolves facility columns through this.
func (s *Store) BuildingByName(orgID uuid.UUID, name string) (models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.buildings {
		if b.OrganizationID == orgID && strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return models.Building{}, ErrNotFound
}

// CreateBuilding assigns an id and appends the building.
func (s *Store) CreateBuilding(b models.Building) models.Building {
	b.ID = uuid.New()
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	if b.Icon == "" || !models.ValidIcon(b.Icon) {
		b.Icon = models.IconGeneric
	}
	s.mu.Lock()
	s.buildings = append(s.buildings, b)
	s.mu.Unlock()
	s.changed(b.OrganizationID, "building", "created", b.ID)
	return b
}

// SaveBuilding replaces the building with a matching id in place; if the id
// is unknown the building is appended as a create.
func (s *Store) SaveBuilding(b models.Building) models.Building {
	if b.ID == uuid.Nil {
		return s.CreateBuilding(b)
	}
	b.UpdatedAt = time.Now()
	s.mu.Lock()
	replaced := false
	for i := range s.buildings {
		if s.buildings[i].ID == b.ID && s.buildings[i].OrganizationID == b.OrganizationID {
			b.CreatedAt = s.buildings[i].CreatedAt
			s.buildings[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		b.CreatedAt = b.UpdatedAt
		s.buildings = append(s.buildings, b)
	}
	s.mu.Unlock()
	if replaced {
		s.changed(b.OrganizationID, "building", "updated", b.ID)
	} else {
		s.changed(b.OrganizationID, "building", "created", b.ID)
	}
	return b
}

// AddSubSection appends a named sub-section to a building.
func (s *Store) AddSubSection(orgID, buildingID uuid.UUID, name string) (models.SubSection, error) {
	sub := models.SubSection{ID: uuid.New(), Name: name}
	s.mu.Lock()
	found := false
	for i := range s.buildings {
		if s.buildings[i].ID == buildingID && s.buildings[i].OrganizationID == orgID {
			s.buildings[i].SubSections = append(s.buildings[i].SubSections, sub)
			s.buildings[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return models.SubSection{}, ErrNotFound
	}
	s.changed(orgID, "building", "updated", buildingID)
	return sub, nil
}

// DeleteBuilding removes the building and every event referencing it in one
// atomic update. Idempotent: deleting an absent building removes nothing.
// Returns the number of cascaded events.
func (s *Store) DeleteBuilding(orgID, id uuid.UUID) int {
	s.mu.Lock()
	kept := s.buildings[:0]
	removed := false
	for _, b := range s.buildings {
		if b.OrganizationID == orgID && b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.buildings = kept
	cascaded := 0
	if removed {
		keptEvents := s.events[:0]
		for _, e := range s.events {
			if e.OrganizationID == orgID && e.BuildingID == id {
				cascaded++
				continue
			}
			keptEvents = append(keptEvents, e)
		}
		s.events = keptEvents
	}
	s.mu.Unlock()
	if removed {
		s.changed(orgID, "building", "deleted", id)
	}
	return cascaded
}

// --- teams ---

// Teams returns the organization's teams.
func (s *Store) Teams(orgID uuid.UUID) []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Team
	for _, t := range s.teams {
		if t.OrganizationID == orgID {
			out = append(out, t)
		}
	}
	return out
}

// TeamByID returns a team by id within the organization.
func (s *Store) TeamByID(orgID, id uuid.UUID) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.OrganizationID == orgID && t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, ErrNotFound
}

// TeamsForCoach returns the organization's teams coached by the given email.
// "My teams" is derived here rather than duplicated on the user.
func (s *Store) TeamsForCoach(orgID uuid.UUID, coachEmail string) []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Team
	for _, t := range s.teams {
		if t.OrganizationID == orgID && strings.EqualFold(t.CoachEmail, coachEmail) {
			out = append(out, t)
		}
	}
	return out
}

// CreateTeam assigns an id and appends the team.
func (s *Store) CreateTeam(t models.Team) models.Team {
	t.ID = uuid.New()
	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	s.mu.Lock()
	s.teams = append(s.teams, t)
	s.mu.Unlock()
	s.changed(t.OrganizationID, "team", "created", t.ID)
	return t
}

// SaveTeam replaces the team with a matching id in place, or appends.
func (s *Store) SaveTeam(t models.Team) models.Team {
	if t.ID == uuid.Nil {
		return s.CreateTeam(t)
	}
	t.UpdatedAt = time.Now()
	s.mu.Lock()
	replaced := false
	for i := range s.teams {
		if s.teams[i].ID == t.ID && s.teams[i].OrganizationID == t.OrganizationID {
			t.CreatedAt = s.teams[i].CreatedAt
			s.teams[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		t.CreatedAt = t.UpdatedAt
		s.teams = append(s.teams, t)
	}
	s.mu.Unlock()
	if replaced {
		s.changed(t.OrganizationID, "team", "updated", t.ID)
	} else {
		s.changed(t.OrganizationID, "team", "created", t.ID)
	}
	return t
}

// DeleteTeam removes the team and every event referencing it in one atomic
// update. Idempotent. Returns the number of cascaded events.
func (s *Store) DeleteTeam(orgID, id uuid.UUID) int {
	s.mu.Lock()
	kept := s.teams[:0]
	removed := false
	for _, t := range s.teams {
		if t.OrganizationID == orgID && t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.teams = kept
	cascaded := 0
	if removed {
		keptEvents := s.events[:0]
		for _, e := range s.events {
			if e.OrganizationID == orgID && e.TeamID == id {
				cascaded++
				continue
			}
			keptEvents = append(keptEvents, e)
		}
		s.events = keptEvents
	}
	s.mu.Unlock()
	if removed {
		s.changed(orgID, "team", "deleted", id)
	}
	return cascaded
}

// --- events ---

// Events returns the organization's events.
func (s *Store) Events(orgID uuid.UUID) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Event
	for _, e := range s.events {
		if e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out
}

// EventByID returns an event by id within the organization.
func (s *Store) EventByID(orgID, id uuid.UUID) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.OrganizationID == orgID && e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, ErrNotFound
}

// CreateEvent assigns a fresh id and appends the event.
func (s *Store) CreateEvent(e models.Event) models.Event {
	e.ID = uuid.New()
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	s.changed(e.OrganizationID, "event", "created", e.ID)
	return e
}

// SaveEvent replaces the event with a matching id preserving its position;
// an unknown id behaves exactly like CreateEvent with that id. The second
// return value reports whether a new event was appended.
func (s *Store) SaveEvent(e models.Event) (models.Event, bool) {
	if e.ID == uuid.Nil {
		return s.CreateEvent(e), true
	}
	e.UpdatedAt = time.Now()
	s.mu.Lock()
	replaced := false
	for i := range s.events {
		if s.events[i].ID == e.ID && s.events[i].OrganizationID == e.OrganizationID {
			e.CreatedAt = s.events[i].CreatedAt
			s.events[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		e.CreatedAt = e.UpdatedAt
		s.events = append(s.events, e)
	}
	s.mu.Unlock()
	if replaced {
		s.changed(e.OrganizationID, "event", "updated", e.ID)
	} else {
		s.changed(e.OrganizationID, "event", "created", e.ID)
	}
	return e, !replaced
}

// DeleteEvent removes the matching event. No error when absent.
func (s *Store) DeleteEvent(orgID, id uuid.UUID) {
	s.mu.Lock()
	kept := s.events[:0]
	removed := false
	for _, e := range s.events {
		if e.OrganizationID == orgID && e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	s.mu.Unlock()
	if removed {
		s.changed(orgID, "event", "deleted", id)
	}
}

// ImportEvents appends a batch of events in a single locked update, assigning
// fresh ids. Used by CSV import so partial batches are never observable.
func (s *Store) ImportEvents(orgID uuid.UUID, events []models.Event) int {
	now := time.Now()
	s.mu.Lock()
	for i := range events {
		events[i].ID = uuid.New()
		events[i].OrganizationID = orgID
		events[i].CreatedAt, events[i].UpdatedAt = now, now
		s.events = append(s.events, events[i])
	}
	s.mu.Unlock()
	if len(events) > 0 {
		s.changed(orgID, "event", "imported", uuid.Nil)
	}
	return len(events)
}
