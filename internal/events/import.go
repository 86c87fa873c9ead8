package events

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

// Required and optional CSV columns, resolved by header name so column order
// doesn't matter.
var requiredColumns = []string{"Date", "StartTime", "EndTime", "EventTitle", "Team", "Coach", "FacilityName"}

const optionalSubSectionColumn = "SubSectionName"

// ImportResult reports what a CSV import did. Skipped rows are warnings,
// never fatal.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// ParseSchedule parses CSV text into events against the organization's
// buildings and teams. Rows naming an unknown facility, sub-section, or team
// are skipped with a warning. Fields are split on plain commas; a quoted
// field containing a comma will misparse, which matches the importer this
// replaces and is deliberately not papered over.
func ParseSchedule(text string, buildings []models.Building, teams []models.Team) ([]models.Event, []string, error) {
	var rows []string
	for _, r := range strings.Split(text, "\n") {
		if r = strings.TrimSpace(r); r != "" {
			rows = append(rows, r)
		}
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or has no data rows")
	}

	header := strings.Split(rows[0], ",")
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.TrimSpace(h)] = i
	}
	for _, req := range requiredColumns {
		if _, ok := colIndex[req]; !ok {
			return nil, nil, fmt.Errorf("missing required header column: %s", req)
		}
	}

	teamByName := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamByName[strings.ToLower(t.Name)] = t
	}
	buildingByName := make(map[string]models.Building, len(buildings))
	for _, b := range buildings {
		buildingByName[strings.ToLower(b.Name)] = b
	}

	var (
		imported []models.Event
		warnings []string
	)
	for i := 1; i < len(rows); i++ {
		values := strings.Split(rows[i], ",")
		field := func(col string) string {
			idx, ok := colIndex[col]
			if !ok || idx >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[idx])
		}

		building, ok := buildingByName[strings.ToLower(field("FacilityName"))]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("row %d: facility %q not found", i+1, field("FacilityName")))
			continue
		}

		var subSectionID *uuid.UUID
		if subName := field(optionalSubSectionColumn); subName != "" {
			found := false
			for _, sub := range building.SubSections {
				if strings.EqualFold(sub.Name, subName) {
					id := sub.ID
					subSectionID = &id
					found = true
					break
				}
			}
			if !found {
				warnings = append(warnings, fmt.Sprintf("row %d: sub-section %q not found in %q", i+1, subName, building.Name))
				continue
			}
		}

		team, ok := teamByName[strings.ToLower(field("Team"))]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("row %d: team %q not found", i+1, field("Team")))
			continue
		}

		start, err1 := time.ParseInLocation("2006-01-02 15:04", field("Date")+" "+field("StartTime"), time.Local)
		end, err2 := time.ParseInLocation("2006-01-02 15:04", field("Date")+" "+field("EndTime"), time.Local)
		if err1 != nil || err2 != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: invalid date or time; use YYYY-MM-DD and HH:MM (24-hour)", i+1))
			continue
		}

		title := field("EventTitle")
		if title == "" {
			title = "Untitled Event"
		}
		imported = append(imported, models.Event{
			BuildingID:   building.ID,
			SubSectionID: subSectionID,
			TeamID:       team.ID,
			Title:        title,
			Description:  fmt.Sprintf("Imported event for %s.", team.Name),
			Start:        start,
			End:          end,
		})
	}
	return imported, warnings, nil
}

// Import handles POST /organizations/:id/events/import (admin only).
// Expects a multipart "file" field with the CSV.
func (h *Handler) Import(c *gin.Context) {
	orgID := c.MustGet(middleware.ContextOrgID).(uuid.UUID)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "failed to read file")
		return
	}

	imported, warnings, err := ParseSchedule(string(data), h.store.Buildings(orgID), h.store.Teams(orgID))
	if err != nil {
		response.BadRequest(c, "import failed: "+err.Error())
		return
	}
	for _, w := range warnings {
		h.logger.Warn("csv import row skipped", zap.String("reason", w))
	}
	count := h.store.ImportEvents(orgID, imported)
	response.OK(c, ImportResult{Imported: count, Skipped: len(warnings), Warnings: warnings})
}
