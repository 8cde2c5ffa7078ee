package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shootdesk/backend"
	"shootdesk/middleware"
	"shootdesk/models"
	"shootdesk/services/accounts"
	"shootdesk/services/shoots"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func timeAt(h, m int) *time.Time {
	t := time.Date(2026, 10, 14, h, m, 0, 0, time.UTC)
	return &t
}

// engine injects the token and viewer DashboardAuthMiddleware would set.
func engine(viewer models.Viewer) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.TokenKey, "tok")
		c.Set(middleware.ViewerKey, viewer)
		c.Next()
	})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

type fakeShootService struct {
	list      []models.ShootSummary
	err       error
	lastF     models.FiltersState
	lastOpts  shoots.GroupOptions
	assignArg string
}

func (f *fakeShootService) List(context.Context, string) ([]models.ShootSummary, error) {
	return f.list, f.err
}

func (f *fakeShootService) Board(_ context.Context, _ string, filters models.FiltersState, opts shoots.GroupOptions, now time.Time) (models.GroupedShoots, error) {
	f.lastF, f.lastOpts = filters, opts
	if f.err != nil {
		return models.GroupedShoots{}, f.err
	}
	return shoots.Board(f.list, filters, now, opts), nil
}

func (f *fakeShootService) Assign(_ context.Context, _, id, photographerID string) (shoots.MutationResult, error) {
	f.assignArg = photographerID
	return shoots.MutationResult{ShootID: id, Refreshed: true}, f.err
}

func (f *fakeShootService) Update(_ context.Context, _, id string, _ models.ShootPatch) (shoots.MutationResult, error) {
	return shoots.MutationResult{ShootID: id}, f.err
}

type fakeWeather struct{}

func (fakeWeather) Forecasts(_ context.Context, list []models.ShootSummary, _ time.Time) map[string]models.Forecast {
	return map[string]models.Forecast{list[0].ID: {ShootID: list[0].ID, Summary: "Clear"}}
}

func shootRouter(svc *fakeShootService) *gin.Engine {
	h := NewShootHandler(svc, fakeWeather{})
	h.Now = func() time.Time { return fixedNow }
	r := engine(models.Viewer{ID: "u1", Role: models.RoleAdmin})
	r.GET("/shoots", h.BoardHandler)
	r.POST("/shoots", h.BoardHandler)
	r.GET("/shoots/counts", h.CountsHandler)
	r.GET("/shoots/weather", h.WeatherHandler)
	r.POST("/shoots/:id/assign", h.AssignHandler)
	return r
}

func TestBoardHandlerQueryFilters(t *testing.T) {
	svc := &fakeShootService{list: []models.ShootSummary{
		{ID: "a", Status: "scheduled", StartTime: timeAt(14, 0)},
		{ID: "b", Status: "completed", StartTime: timeAt(9, 0)},
	}}
	w := do(shootRouter(svc), http.MethodGet, "/shoots?statuses=scheduled,booked&history=true&historyLimit=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"scheduled", "booked"}, svc.lastF.Statuses)
	assert.True(t, svc.lastOpts.IncludeHistory)
	assert.Equal(t, 5, svc.lastOpts.HistoryLimit)

	var body struct {
		Total  int                  `json:"total"`
		Groups models.GroupedShoots `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Groups.Today, 1)
	assert.Equal(t, "a", body.Groups.Today[0].Shoots[0].ID)
}

func TestBoardHandlerJSONFilters(t *testing.T) {
	svc := &fakeShootService{}
	w := do(shootRouter(svc), http.MethodPost, "/shoots", `{"unassignedOnly":true,"priority":{"unpaid":true},"custom":{"from":"2026-10-01"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastF.UnassignedOnly)
	assert.True(t, svc.lastF.Priority.Unpaid)
	assert.Equal(t, "2026-10-01", svc.lastF.Custom.From)
	assert.Equal(t, shoots.DefaultHistoryLimit, svc.lastOpts.HistoryLimit)
}

func TestBackendErrorStatusPassesThrough(t *testing.T) {
	svc := &fakeShootService{err: &backend.APIError{Status: http.StatusForbidden, Message: "Not allowed"}}
	w := do(shootRouter(svc), http.MethodGet, "/shoots/counts", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not allowed")

	svc.err = errors.New("dial tcp: refused")
	w = do(shootRouter(svc), http.MethodGet, "/shoots/counts", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	svc.err = context.DeadlineExceeded
	w = do(shootRouter(svc), http.MethodGet, "/shoots/counts", "")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestAssignHandler(t *testing.T) {
	svc := &fakeShootService{}
	r := shootRouter(svc)

	w := do(r, http.MethodPost, "/shoots/s1/assign", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/shoots/s1/assign", `{"photographerId":"p9"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p9", svc.assignArg)
	assert.Contains(t, w.Body.String(), `"refreshed":true`)
}

func TestWeatherHandler(t *testing.T) {
	svc := &fakeShootService{list: []models.ShootSummary{{ID: "s1"}}}
	w := do(shootRouter(svc), http.MethodGet, "/shoots/weather", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"s1":{`)
}

type fakeAvailability struct {
	date time.Time
}

func (f *fakeAvailability) Timeline(_ context.Context, _, _ string, date, _ time.Time) ([]models.TimelineSlot, error) {
	f.date = date
	return []models.TimelineSlot{{Start: "07:00", End: "08:00", Status: models.TimelinePast}}, nil
}

func (f *fakeAvailability) Next(context.Context, string, string, time.Time) (*models.NextAvailable, error) {
	return nil, nil
}

func TestTimelineHandler(t *testing.T) {
	svc := &fakeAvailability{}
	h := NewAvailabilityHandler(svc)
	h.Now = func() time.Time { return fixedNow }
	r := engine(models.Viewer{ID: "u1"})
	r.GET("/photographers/:id/timeline", h.TimelineHandler)
	r.GET("/photographers/:id/next-availability", h.NextAvailabilityHandler)

	w := do(r, http.MethodGet, "/photographers/p1/timeline", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 14, svc.date.Day())
	assert.Contains(t, w.Body.String(), `"date":"2026-10-14"`)

	w = do(r, http.MethodGet, "/photographers/p1/timeline?date=2026-10-20", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, svc.date.Day())

	w = do(r, http.MethodGet, "/photographers/p1/timeline?date=tomorrow-ish", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/photographers/p1/next-availability", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"next":null}`, w.Body.String())
}

type fakeAccounts struct{}

func (fakeAccounts) Submit(_ context.Context, _ string, v models.AccountFormValues, _ models.Viewer) (models.Account, error) {
	if err := accounts.Validate(v); err != nil {
		return models.Account{}, err
	}
	return models.Account{ID: "acc-1", Email: v.Email}, nil
}

func (fakeAccounts) CreatorCandidates(context.Context, string) ([]models.Account, error) {
	return []models.Account{{ID: "a1", FirstName: "Ada", LastName: "Admin"}}, nil
}

func (fakeAccounts) ImportTemplate(context.Context, string) ([]byte, string, error) {
	return []byte("first_name,last_name\n"), "text/csv", nil
}

func (fakeAccounts) UpdateProfile(context.Context, string, map[string]any) ([]byte, error) {
	return nil, nil
}

func TestAccountHandlers(t *testing.T) {
	h := NewAccountHandler(fakeAccounts{})
	r := engine(models.Viewer{ID: "u1", Role: models.RoleSuperadmin})
	r.POST("/accounts", h.CreateAccountHandler)
	r.GET("/accounts/creators", h.CreatorsHandler)
	r.GET("/accounts/import-template", h.ImportTemplateHandler)
	r.PUT("/profile", h.UpdateProfileHandler)

	w := do(r, http.MethodPost, "/accounts", `{"firstName":"Ann","role":"client"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"lastName"`)

	w = do(r, http.MethodPost, "/accounts", `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com","role":"editor","city":"Austin","state":"TX","zipcode":"78701"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "acc-1")

	w = do(r, http.MethodGet, "/accounts/creators", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ada Admin"`)

	w = do(r, http.MethodGet, "/accounts/import-template", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	w = do(r, http.MethodPut, "/profile", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(r, http.MethodPut, "/profile", `{"phone":"555"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

type fakeNotifications struct {
	approve *bool
}

func (f *fakeNotifications) Feed(context.Context, string, time.Time) (models.NotificationFeed, error) {
	return models.NotificationFeed{UnreadCount: 2}, nil
}

func (f *fakeNotifications) Resolve(_ context.Context, _, _, _ string, approve bool) error {
	f.approve = &approve
	return nil
}

func TestApprovalHandler(t *testing.T) {
	svc := &fakeNotifications{}
	h := NewNotificationHandler(svc)
	r := engine(models.Viewer{ID: "u1", Role: models.RoleAdmin})
	r.GET("/notifications", h.FeedHandler)
	r.POST("/notifications/approval", h.ApprovalHandler)

	w := do(r, http.MethodPost, "/notifications/approval", `{"shootId":"s1","type":"refund","approve":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/notifications/approval", `{"shootId":"s1","type":"hold"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/notifications/approval", `{"shootId":"s1","type":"hold","approve":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.approve)
	assert.False(t, *svc.approve)

	w = do(r, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unreadCount":2`)
}

type fakeTours struct{}

func (fakeTours) PublicTour(_ context.Context, id, variant string) ([]byte, error) {
	if id == "missing" {
		return nil, &backend.APIError{Status: http.StatusNotFound, Message: "Shoot not found"}
	}
	return []byte(`{"id":"` + id + `","variant":"` + variant + `"}`), nil
}

func TestTourHandler(t *testing.T) {
	h := NewPublicHandler(fakeTours{})
	r := gin.New()
	r.GET("/tours/:id/:variant", h.TourHandler)

	w := do(r, http.MethodGet, "/tours/s1/g-mls", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"s1","variant":"g-mls"}`, w.Body.String())

	w = do(r, http.MethodGet, "/tours/s1/fancy", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/tours/missing/mls", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Shoot not found")
}
