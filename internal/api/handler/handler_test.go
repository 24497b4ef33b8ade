package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-api/internal/api"
	"github.com/courtside/nba-api/internal/config"
	"github.com/courtside/nba-api/internal/nba"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	srv := httptest.NewServer(api.NewRouter(cfg))
	t.Cleanup(srv.Close)
	return srv
}

// get fetches a path and decodes the JSON body into out (if non-nil),
// returning the status code.
func get(t *testing.T, srv *httptest.Server, path string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	status := get(t, srv, "/", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome to NBA API", body.Message)
	assert.Contains(t, body.Endpoints, "/teams")
	assert.Contains(t, body.Endpoints, "/chat")
}

func TestListTeams(t *testing.T) {
	srv := newTestServer(t)

	var teams []nba.TeamSummary
	status := get(t, srv, "/teams", &teams)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, teams, len(nba.Teams))
	assert.Equal(t, nba.TeamSummary{ID: 1, Name: "Boston Celtics"}, teams[0])
}

func TestGetTeamByID(t *testing.T) {
	srv := newTestServer(t)

	var team nba.Team
	status := get(t, srv, "/teams/1", &team)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, team.ID)
	assert.Equal(t, "Boston Celtics", team.Name)
	assert.NotEmpty(t, team.Roster)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/teams/999", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/teams/celtics", nil))
}

func TestGetTeamByNameIsCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/teams/name/Los%20Angeles%20Lakers",
		"/teams/name/LOS%20ANGELES%20LAKERS",
		"/teams/name/los%20angeles%20lakers",
	} {
		var team nba.Team
		status := get(t, srv, path, &team)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, 6, team.ID, path)
	}

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/teams/name/Seattle%20SuperSonics", nil))
}

func TestRosterMatchesTeamDetail(t *testing.T) {
	srv := newTestServer(t)

	var team nba.Team
	require.Equal(t, http.StatusOK, get(t, srv, "/teams/3", &team))

	var roster []nba.Player
	require.Equal(t, http.StatusOK, get(t, srv, "/teams/3/roster", &roster))

	assert.Equal(t, team.Roster, roster)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/teams/999/roster", nil))
}

func TestStandings(t *testing.T) {
	srv := newTestServer(t)

	var eastern []nba.Standing
	require.Equal(t, http.StatusOK, get(t, srv, "/standings/eastern", &eastern))
	assert.Len(t, eastern, 15)

	var western []nba.Standing
	require.Equal(t, http.StatusOK, get(t, srv, "/standings/western", &western))
	assert.Len(t, western, 15)
}

func TestGetTeamStanding(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Team     string       `json:"team"`
		Standing nba.Standing `json:"standing"`
	}
	status := get(t, srv, "/teams/1/standing", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Boston Celtics", body.Team)
	assert.Equal(t, "Boston Celtics", body.Standing.Team)
	assert.Equal(t, 61, body.Standing.W)

	// The Lakers sit in the Western table, which the join never consults.
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/teams/6/standing", nil))
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/teams/999/standing", nil))
}

func TestSearchPlayers(t *testing.T) {
	srv := newTestServer(t)

	total := 0
	for _, team := range nba.Teams {
		total += len(team.Roster)
	}

	var body struct {
		Count   int                `json:"count"`
		Results []nba.PlayerResult `json:"results"`
	}
	status := get(t, srv, "/search/players", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, total, body.Count)
	assert.Len(t, body.Results, total)

	status = get(t, srv, "/search/players?name=tatum&position=f&country=usa", &body)
	assert.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Jayson Tatum", body.Results[0].Player.Name)

	// Zero matches is a 404, not an empty 200.
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/search/players?name=jordan&position=c&country=france", nil))
}

func TestListGames(t *testing.T) {
	srv := newTestServer(t)

	var games []nba.Game
	status := get(t, srv, "/games", &games)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, games, len(nba.Games))
}

func TestSearchGames(t *testing.T) {
	srv := newTestServer(t)

	var games []nba.Game
	status := get(t, srv, "/games/search?team=warriors", &games)
	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, games)
	for _, g := range games {
		assert.Contains(t, g.Team1+g.Team2, "Warriors")
	}

	status = get(t, srv, "/games/search?team=heat&date=2025-01-14", &games)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, games, 1)
	assert.Equal(t, "Miami Heat", games[0].Team1)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/games/search?team=supersonics", nil))
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/games/search?date=1999-01-01", nil))
}

func postChat(t *testing.T, srv *httptest.Server, payload string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/chat", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestChatRelaysToWatsonx(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "stub-token"})
	})
	mux.HandleFunc("/ml/v1/text/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"The Lakers won the 2020 finals."}}]}`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	t.Setenv("WATSONX_URL", upstream.URL)
	t.Setenv("WATSONX_API_KEY", "test-key")
	t.Setenv("WATSONX_PROJECT_ID", "test-project")
	t.Setenv("WATSONX_IAM_URL", upstream.URL+"/identity/token")

	srv := newTestServer(t)

	resp, body := postChat(t, srv, `{"messages":[
		{"role":"system","content":"You are an NBA expert"},
		{"role":"user","content":"Who won the 2020 finals?"}]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var chatResp struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(body, &chatResp))
	assert.Equal(t, "The Lakers won the 2020 finals.", chatResp.Response)
}

func TestChatFailureReturns500(t *testing.T) {
	t.Setenv("WATSONX_URL", "")
	t.Setenv("WATSONX_API_KEY", "")

	srv := newTestServer(t)

	resp, body := postChat(t, srv, `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "CHAT_ERROR", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Message, "Chat error: ")
}

func TestChatRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := postChat(t, srv, `{"messages":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
