package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpage/internal/domain"
)

type mockCountdownService struct {
	snapshot domain.CountdownSnapshot
	gotTZ    []string
}

func (m *mockCountdownService) Snapshot(tz string) domain.CountdownSnapshot {
	m.gotTZ = append(m.gotTZ, tz)
	return m.snapshot
}

func pendingSnapshot() domain.CountdownSnapshot {
	return domain.CountdownSnapshot{
		TimeRemaining: domain.TimeRemaining{Days: 12, Hours: 3, Minutes: 45, Seconds: 6},
		ReleaseDate:   "March 1, 2027 9:00 AM UTC",
		Timezone:      "UTC",
	}
}

func newTestPageController(t *testing.T, svc domain.CountdownService, site SiteInfo) *PageController {
	t.Helper()
	ctrl, err := NewPageController(testLogger(), svc, site)
	require.NoError(t, err)
	return ctrl
}

func TestPageController_Page(t *testing.T) {
	svc := &mockCountdownService{snapshot: pendingSnapshot()}
	ctrl := newTestPageController(t, svc, SiteInfo{
		AppName:     "Kyro",
		URL:         "https://kyro.example",
		Description: "The **fastest** way to ship.\n<script>alert(1)</script>",
	})

	req := httptest.NewRequest(http.MethodGet, "/?tz=Asia/Tokyo", nil)
	w := httptest.NewRecorder()
	ctrl.Page(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()

	assert.Contains(t, body, "<title>Kyro | Coming Soon</title>")
	assert.Contains(t, body, `<meta property="og:url" content="https://kyro.example">`)
	assert.Contains(t, body, `<link rel="canonical" href="https://kyro.example">`)
	assert.Contains(t, body, "<strong>fastest</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `<span id="cd-days">12</span>`)
	assert.Contains(t, body, `<span id="cd-seconds">6</span>`)
	assert.Contains(t, body, "March 1, 2027 9:00 AM UTC")
	assert.Contains(t, body, `data-tz="Asia/Tokyo"`)
	assert.Equal(t, []string{"Asia/Tokyo"}, svc.gotTZ)
}

func TestPageController_Page_Reached(t *testing.T) {
	svc := &mockCountdownService{snapshot: domain.CountdownSnapshot{
		TimeRemaining: domain.TimeRemaining{IsReached: true},
		ReleaseDate:   "January 1, 2020 12:00 AM UTC",
		Timezone:      "UTC",
	}}
	ctrl := newTestPageController(t, svc, SiteInfo{AppName: "Coming Soon"})

	w := httptest.NewRecorder()
	ctrl.Page(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="launched"`)
	assert.NotContains(t, body, `<span id="cd-days">`)
	assert.NotContains(t, body, `rel="canonical"`)
	assert.Contains(t, body, `content="Coming Soon is launching soon."`)
}

func TestPageController_CountdownJSON(t *testing.T) {
	svc := &mockCountdownService{snapshot: pendingSnapshot()}
	ctrl := newTestPageController(t, svc, SiteInfo{AppName: "Kyro"})

	req := httptest.NewRequest(http.MethodGet, "/countdown?tz=Europe/Berlin", nil)
	w := httptest.NewRecorder()
	ctrl.CountdownJSON(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 12, got["days"])
	assert.EqualValues(t, 3, got["hours"])
	assert.EqualValues(t, 45, got["minutes"])
	assert.EqualValues(t, 6, got["seconds"])
	assert.Equal(t, false, got["is_reached"])
	assert.Equal(t, "March 1, 2027 9:00 AM UTC", got["release_date"])
	assert.Equal(t, "UTC", got["timezone"])
	assert.Equal(t, []string{"Europe/Berlin"}, svc.gotTZ)
}

func TestMetaDescription(t *testing.T) {
	assert.Equal(t, "Ship it. Fast.", metaDescription(SiteInfo{Description: "Ship it.\n\n  Fast."}))
	assert.Equal(t, "Kyro is launching soon.", metaDescription(SiteInfo{AppName: "Kyro"}))
}
