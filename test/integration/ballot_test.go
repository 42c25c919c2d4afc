package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/voteportal/internal/core/domain"
)

func (app *TestApp) put(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, app.Server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// TestBallotFlow tests the JSON lifecycle: Voter Info -> Selections -> Submit -> Results -> Analytics
func TestBallotFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Step 1: Fill in the voter
	resp := app.put(t, "/api/ballot/voter", map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"district": "north",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Step 2: Answer two of the three categories
	resp = app.put(t, "/api/ballot/selections/president", map[string]string{"option_id": "candidate-a"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = app.put(t, "/api/ballot/selections/proposition", map[string]string{"option_id": "prop-yes"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Step 3: Submit
	resp, err := app.Client.Post(app.Server.URL+"/api/ballot/submit", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var records []domain.VoteRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	resp.Body.Close()

	require.Len(t, records, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	for _, record := range records {
		_, err := uuid.Parse(record.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", record.VoterInfo.Name)
		assert.Equal(t, "north", record.VoterInfo.District)
	}

	// Step 4: The form is reset and shows the confirmation
	resp, err = app.Client.Get(app.Server.URL + "/api/ballot")
	require.NoError(t, err)
	var ballot domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ballot))
	resp.Body.Close()
	assert.True(t, ballot.Submitted)
	assert.Empty(t, ballot.Selections)
	assert.Empty(t, ballot.VoterInfo.Name)

	// Step 5: Results
	resp, err = app.Client.Get(app.Server.URL + "/api/results/president")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var president domain.CategoryResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&president))
	resp.Body.Close()

	assert.Equal(t, 1, president.TotalVotes)
	require.NotNil(t, president.Leading)
	assert.Equal(t, "candidate-a", president.Leading.ID)
	assert.Equal(t, 100.0, president.Leading.Percentage)

	// Step 6: Analytics
	resp, err = app.Client.Get(app.Server.URL + "/api/analytics")
	require.NoError(t, err)
	var analytics domain.Analytics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analytics))
	resp.Body.Close()

	assert.Equal(t, 2, analytics.TotalRecords)
	assert.Equal(t, map[string]int{"north": 2}, analytics.Districts)
	assert.Equal(t, map[int]int{14: 2}, analytics.Hourly)
	require.NotNil(t, analytics.TopDistrict)
	assert.Equal(t, "north", analytics.TopDistrict.District)
	assert.Equal(t, 83, analytics.CompletionRate)
}

func TestSubmitValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp := app.put(t, "/api/ballot/selections/mayor", map[string]string{"option_id": "mayor-a"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.put(t, "/api/ballot/voter", map[string]string{"name": "Ada", "email": "ada@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := app.Client.Post(app.Server.URL+"/api/ballot/submit", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	count, err := app.Session.Votes.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	// The entered values survive the failed attempt
	resp, err = app.Client.Get(app.Server.URL + "/api/ballot")
	require.NoError(t, err)
	var ballot domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ballot))
	resp.Body.Close()
	assert.Equal(t, "mayor-a", ballot.Selections["mayor"])
	assert.Equal(t, "Ada", ballot.VoterInfo.Name)
}

func TestRejectsUnknownIdentifiers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tests := []struct {
		name    string
		path    string
		payload any
	}{
		{"unknown category", "/api/ballot/selections/governor", map[string]string{"option_id": "candidate-a"}},
		{"unknown option", "/api/ballot/selections/president", map[string]string{"option_id": "mayor-a"}},
		{"unknown district", "/api/ballot/voter", map[string]string{"name": "A", "email": "a@b.c", "district": "downtown"}},
		{"unknown view", "/api/view", map[string]string{"view": "settings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.put(t, tt.path, tt.payload)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	resp, err := app.Client.Get(fmt.Sprintf("%s/api/results/%s", app.Server.URL, "governor"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
