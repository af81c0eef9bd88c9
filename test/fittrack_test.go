//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/workouts"
)

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any, dst any) int {
	t := s.T()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if dst != nil && len(respBytes) > 0 {
		require.NoError(t, json.Unmarshal(respBytes, dst), string(respBytes))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) SetupTest() {
	status := s.do(context.Background(), "DELETE", "/data", nil, nil)
	s.Require().Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestLogAndDeleteWorkout() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	notes := gofakeit.Sentence(5)
	var logged app.WorkoutView
	status := s.do(ctx, "POST", "/workouts", workouts.LogParams{
		Type:     "gym",
		Split:    "Legs",
		Duration: 50,
		Notes:    "  " + notes + "  ",
	}, &logged)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, logged.ID)
	assert.Equal(t, "Legs", logged.Name)
	assert.Equal(t, notes, logged.Notes)
	assert.Equal(t, "Today", logged.When)

	var errResp api.ErrorResponse
	status = s.do(ctx, "POST", "/workouts", workouts.LogParams{Type: "gym"}, &errResp)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, workouts.ErrMissingSplit.Error(), errResp.Error)

	var dashboard app.Dashboard
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/dashboard", nil, &dashboard))
	assert.Equal(t, 1, dashboard.Summary.Streak)
	assert.Equal(t, 1, dashboard.Summary.TotalActiveDays)
	require.Len(t, dashboard.Breakdown, 1)
	assert.Equal(t, "gym", dashboard.Breakdown[0].Type)

	var removed api.RemoveWorkoutResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/workouts/"+logged.ID, nil, &removed))
	assert.True(t, removed.Removed)
	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/workouts/"+logged.ID, nil, &removed))
	assert.False(t, removed.Removed)

	var list []app.WorkoutView
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/workouts", nil, &list))
	assert.Empty(t, list)
}

func (s *IntegrationTestSuite) TestHistoryAndCalendar() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	for _, params := range []workouts.LogParams{
		{Type: "running", Date: "2024-02-10", Duration: 30},
		{Type: "yoga", Date: "2024-02-10"},
		{Type: "swimming", Date: "2024-02-29", Duration: 45},
	} {
		require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/workouts", params, nil))
	}

	var view app.HistoryView
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/history", nil, &view))
	assert.Equal(t, 3, view.TotalSessions)
	assert.Equal(t, 2, view.UniqueDays)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "2024-02-29", view.Groups[0].Date)

	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/history?type=running", nil, &view))
	assert.Equal(t, 1, view.TotalSessions)

	require.Equal(t, http.StatusBadRequest, s.do(ctx, "GET", "/history?time=decade", nil, nil))

	var cal app.CalendarView
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/calendar/2024/2", nil, &cal))
	assert.Equal(t, "February 2024", cal.Title)
	assert.Len(t, cal.Days, 32)
	assert.Equal(t, app.MonthRef{Year: 2024, Month: 1}, cal.Prev)
	assert.Equal(t, app.MonthRef{Year: 2024, Month: 3}, cal.Next)
	assert.Len(t, cal.Legend, 3)
}

func (s *IntegrationTestSuite) TestSettings() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var view app.SettingsView
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/settings", nil, &view))
	splitsBefore := len(view.GymSplits)
	assert.Empty(t, view.CustomActivities)

	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/settings/activities", api.NameRequest{Name: "Climbing"}, &view))
	require.Len(t, view.CustomActivities, 1)
	assert.Equal(t, "climbing", view.CustomActivities[0].ID)
	assert.Equal(t, "Climbing", view.CustomActivities[0].Label)

	require.Equal(t, http.StatusBadRequest, s.do(ctx, "POST", "/settings/activities", api.NameRequest{Name: "climbing"}, nil))
	require.Equal(t, http.StatusBadRequest, s.do(ctx, "POST", "/settings/activities", api.NameRequest{Name: "Running"}, nil))

	var opts app.LogOptions
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/log/options", nil, &opts))
	assert.Equal(t, "Climbing", opts.Activities[len(opts.Activities)-1].Label)

	var removeResp api.RemoveSettingResponse
	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/settings/splits/0", nil, &removeResp))
	assert.True(t, removeResp.Removed)
	assert.Len(t, removeResp.Settings.GymSplits, splitsBefore-1)

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", fmt.Sprintf("/settings/splits/%d", splitsBefore+10), nil, &removeResp))
	assert.False(t, removeResp.Removed)
	assert.Len(t, removeResp.Settings.GymSplits, splitsBefore-1)
}

func (s *IntegrationTestSuite) TestExportImport() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/workouts", workouts.LogParams{Type: "cycling", Duration: 75}, nil))
	require.Equal(t, http.StatusCreated, s.do(ctx, "POST", "/settings/splits", api.NameRequest{Name: "Core"}, nil))

	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/backup/export", nil)
	require.NoError(t, err)
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "fittrack-backup-")

	require.Equal(t, http.StatusOK, s.do(ctx, "DELETE", "/data", nil, nil))

	importReq, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/backup/import", bytes.NewReader(exported))
	require.NoError(t, err)
	resp, err = s.httpClient.Do(importReq)
	require.NoError(t, err)
	var res app.ImportResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, res.WorkoutsReplaced)
	assert.True(t, res.SettingsReplaced)
	assert.Equal(t, 1, res.WorkoutsCount)

	var list []app.WorkoutView
	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/workouts", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "cycling", list[0].Type)

	badReq, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/backup/import", bytes.NewReader([]byte(`"nope"`)))
	require.NoError(t, err)
	resp, err = s.httpClient.Do(badReq)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Equal(t, http.StatusOK, s.do(ctx, "GET", "/workouts", nil, &list))
	assert.Len(t, list, 1)
}
