package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriFi/Athletitrack/internal/middleware"
	"github.com/ScriFi/Athletitrack/internal/models"
	"github.com/ScriFi/Athletitrack/internal/store"
	"github.com/ScriFi/Athletitrack/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type calendarFixture struct {
	store    *store.Store
	org      models.Organization
	gym      models.Building
	varsity  models.Team
	handler  *Handler
	router   *gin.Engine
	now      time.Time
	coachReq bool
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()
	s := store.New()
	fx := &calendarFixture{store: s, now: time.Date(2026, time.March, 4, 12, 0, 0, 0, time.Local)}
	fx.org = s.AddOrganization(models.Organization{Name: "Northwood High School"})
	fx.gym = s.CreateBuilding(models.Building{OrganizationID: fx.org.ID, Name: "Main Gymnasium", Icon: models.IconGymnasium})
	fx.varsity = s.CreateTeam(models.Team{OrganizationID: fx.org.ID, Name: "Varsity Basketball", Color: "sky", CoachEmail: "coach@northwood.edu"})

	fx.handler = NewHandler(s)
	fx.handler.now = func() time.Time { return fx.now }

	fx.router = gin.New()
	fx.router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextOrgID, fx.org.ID)
		if fx.coachReq {
			c.Set(middleware.ContextUserRole, string(models.RoleCoach))
			c.Set(middleware.ContextUserEmail, "coach@northwood.edu")
		} else {
			c.Set(middleware.ContextUserRole, string(models.RoleAdmin))
			c.Set(middleware.ContextUserEmail, "admin@northwood.edu")
		}
	})
	fx.router.GET("/calendar", fx.handler.Get)
	fx.router.POST("/calendar/drop", fx.handler.Drop)
	return fx
}

func (fx *calendarFixture) get(t *testing.T, query string) (*httptest.ResponseRecorder, response.Body) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/calendar"+query, nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	var body response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetDefaultsToMonthView(t *testing.T) {
	fx := newCalendarFixture(t)
	w, body := fx.get(t, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)

	data := body.Data.(map[string]interface{})
	assert.Equal(t, "month", data["view"])
	require.NotNil(t, data["month"])
	assert.Nil(t, data["week"])

	grid := data["month"].(map[string]interface{})["grid"].(map[string]interface{})
	assert.EqualValues(t, 2026, grid["year"])
	assert.EqualValues(t, 31, grid["days_in_month"])
}

func TestGetWeekViewNavigation(t *testing.T) {
	fx := newCalendarFixture(t)
	_, body := fx.get(t, "?view=week&date=2026-03-04")
	data := body.Data.(map[string]interface{})
	assert.Equal(t, "week", data["view"])
	require.NotNil(t, data["week"])

	prev, err := time.Parse(time.RFC3339, data["prev"].(string))
	require.NoError(t, err)
	next, err := time.Parse(time.RFC3339, data["next"].(string))
	require.NoError(t, err)
	assert.Equal(t, 14*24*time.Hour, next.Sub(prev))
}

func TestGetRejectsUnknownView(t *testing.T) {
	fx := newCalendarFixture(t)
	w, body := fx.get(t, "?view=agenda")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
}

func TestGetRejectsBadDateAndBuilding(t *testing.T) {
	fx := newCalendarFixture(t)
	w, _ := fx.get(t, "?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = fx.get(t, "?building_id=not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCoachScoping(t *testing.T) {
	fx := newCalendarFixture(t)
	other := fx.store.CreateTeam(models.Team{OrganizationID: fx.org.ID, Name: "JV", Color: "amber", CoachEmail: "other@northwood.edu"})
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)
	fx.store.CreateEvent(models.Event{
		OrganizationID: fx.org.ID, BuildingID: fx.gym.ID, TeamID: fx.varsity.ID,
		Title: "Mine", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour),
	})
	fx.store.CreateEvent(models.Event{
		OrganizationID: fx.org.ID, BuildingID: fx.gym.ID, TeamID: other.ID,
		Title: "Theirs", Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour),
	})

	fx.coachReq = true
	_, body := fx.get(t, "?view=day&date=2026-03-04")
	data := body.Data.(map[string]interface{})
	days := data["day"].(map[string]interface{})["days"].([]interface{})
	events := days[0].(map[string]interface{})["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].(map[string]interface{})["title"])
}

func TestDropDraftsWithoutPersisting(t *testing.T) {
	fx := newCalendarFixture(t)
	payload := `{"kind":"team","id":"` + fx.varsity.ID.String() + `","target":"2026-03-04T14:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/calendar/drop", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	draft := body.Data.(map[string]interface{})
	assert.Equal(t, fx.varsity.ID.String(), draft["team_id"])
	start, err := time.Parse(time.RFC3339, draft["start"].(string))
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, draft["end"].(string))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, end.Sub(start))

	// The draft is never persisted.
	assert.Empty(t, fx.store.Events(fx.org.ID))
}

func TestDropUnknownEntity(t *testing.T) {
	fx := newCalendarFixture(t)
	payload := `{"kind":"facility","id":"` + uuid.NewString() + `","target":"2026-03-04T14:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/calendar/drop", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDropMalformedPayload(t *testing.T) {
	fx := newCalendarFixture(t)
	for _, payload := range []string{
		`{}`,
		`{"kind":"coach","id":"` + uuid.NewString() + `","target":"2026-03-04T14:00:00Z"}`,
		`{"kind":"team","id":"` + uuid.NewString() + `","target":"tomorrow"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/calendar/drop", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		fx.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
