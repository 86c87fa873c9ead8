package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/pkg/utils"
)

// Seed populates the store with two demo organizations, their facilities,
// teams, users per role, and a handful of events around the current week.
// Demo credentials all use the password "password".
func Seed(s *Store) error {
	hash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}

	northwood := s.AddOrganization(models.Organization{Name: "Northwood High School"})
	lakeside := s.AddOrganization(models.Organization{Name: "Lakeside Academy"})

	gym := s.CreateBuilding(models.Building{
		OrganizationID: northwood.ID,
		Name:           "Main Gymnasium",
		Icon:           models.IconGymnasium,
	})
	var court1 models.SubSection
	for i, name := range []string{"Court 1", "Court 2", "Weight Room"} {
		sub, err := s.AddSubSection(northwood.ID, gym.ID, name)
		if err != nil {
			return err
		}
		if i == 0 {
			court1 = sub
		}
	}
	field := s.CreateBuilding(models.Building{
		OrganizationID: northwood.ID,
		Name:           "Baseball Field",
		Icon:           models.IconField,
	})
	for _, name := range []string{"Main Diamond", "Batting Cages"} {
		if _, err := s.AddSubSection(northwood.ID, field.ID, name); err != nil {
			return err
		}
	}
	pool := s.CreateBuilding(models.Building{
		OrganizationID: northwood.ID,
		Name:           "Aquatic Center",
		Icon:           models.IconPool,
	})
	s.CreateBuilding(models.Building{
		OrganizationID: northwood.ID,
		Name:           "Track & Field",
		Icon:           models.IconTrack,
	})
	s.CreateBuilding(models.Building{
		OrganizationID: lakeside.ID,
		Name:           "Lakeside Sports Hall",
		Icon:           models.IconCourt,
	})

	basketball := s.CreateTeam(models.Team{
		OrganizationID: northwood.ID,
		Name:           "Varsity Basketball",
		Color:          "sky",
		CoachEmail:     "johnson@northwood.edu",
	})
	volleyball := s.CreateTeam(models.Team{
		OrganizationID: northwood.ID,
		Name:           "JV Volleyball",
		Color:          "emerald",
		CoachEmail:     "davis@northwood.edu",
	})
	baseball := s.CreateTeam(models.Team{
		OrganizationID: northwood.ID,
		Name:           "Freshman Baseball",
		Color:          "amber",
		CoachEmail:     "johnson@northwood.edu",
	})
	swim := s.CreateTeam(models.Team{
		OrganizationID: northwood.ID,
		Name:           "Swim Team",
		Color:          "cyan",
		CoachEmail:     "davis@northwood.edu",
	})
	s.CreateTeam(models.Team{
		OrganizationID: lakeside.ID,
		Name:           "Lakeside Rowing",
		Color:          "violet",
		CoachEmail:     "miller@lakeside.edu",
	})

	s.AddUser(models.User{
		Name:            "Alex Miller",
		Email:           "miller@lakeside.edu",
		Password:        hash,
		Role:            models.RoleAdmin,
		OrganizationIDs: []uuid.UUID{lakeside.ID},
	})
	s.AddUser(models.User{
		Name:            "Coach Johnson",
		Email:           "johnson@northwood.edu",
		Password:        hash,
		Role:            models.RoleCoach,
		OrganizationIDs: []uuid.UUID{northwood.ID},
	})
	s.AddUser(models.User{
		Name:            "Coach Davis",
		Email:           "davis@northwood.edu",
		Password:        hash,
		Role:            models.RoleCoach,
		OrganizationIDs: []uuid.UUID{northwood.ID},
	})
	s.AddUser(models.User{
		Name:            "Dana Wells",
		Email:           "wells@northwood.edu",
		Password:        hash,
		Role:            models.RoleAdmin,
		OrganizationIDs: []uuid.UUID{northwood.ID},
	})
	s.AddUser(models.User{
		Name:            "District Office",
		Email:           "super@district.org",
		Password:        hash,
		Role:            models.RoleSuperadmin,
		OrganizationIDs: nil,
	})

	// Events land in the current week so a fresh run has something to show.
	at := func(dayOffset, hour, min int) time.Time {
		base := time.Now().AddDate(0, 0, dayOffset)
		return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, time.Local)
	}
	seedEvents := []models.Event{
		{
			OrganizationID: northwood.ID, BuildingID: gym.ID, SubSectionID: &court1.ID,
			TeamID: basketball.ID, Title: "Basketball Practice",
			Description: "Drills and scrimmage ahead of Friday's game.",
			Start:       at(0, 16, 0), End: at(0, 18, 0),
		},
		{
			OrganizationID: northwood.ID, BuildingID: gym.ID,
			TeamID: volleyball.ID, Title: "Volleyball Conditioning",
			Description: "Strength and agility circuit.",
			Start:       at(1, 7, 0), End: at(1, 8, 30),
		},
		{
			OrganizationID: northwood.ID, BuildingID: field.ID,
			TeamID: baseball.ID, Title: "Batting Practice",
			Description: "Cage rotations, bring your own helmet.",
			Start:       at(1, 15, 30), End: at(1, 17, 0),
		},
		{
			OrganizationID: northwood.ID, BuildingID: pool.ID,
			TeamID: swim.ID, Title: "Morning Swim",
			Description: "Lap endurance session.",
			Start:       at(2, 6, 30), End: at(2, 8, 0),
		},
	}
	for _, e := range seedEvents {
		s.CreateEvent(e)
	}
	return nil
}
