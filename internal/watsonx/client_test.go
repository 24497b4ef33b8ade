package watsonx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateMessages(t *testing.T) {
	out := translateMessages([]ChatMessage{
		{Role: "system", Content: "You are an NBA expert"},
		{Role: "user", Content: "Who won the 2020 finals?"},
		{Role: "assistant", Content: "The Lakers."},
	})
	require.Len(t, out, 3)

	assert.Equal(t, "system", out[0].Role)
	assert.Equal(t, "You are an NBA expert", out[0].Content)

	assert.Equal(t, "user", out[1].Role)
	require.IsType(t, []textPart{}, out[1].Content)
	parts := out[1].Content.([]textPart)
	require.Len(t, parts, 1)
	assert.Equal(t, textPart{Type: "text", Text: "Who won the 2020 finals?"}, parts[0])

	assert.Equal(t, "assistant", out[2].Role)
	assert.Equal(t, "The Lakers.", out[2].Content)
}

func TestTranslateMessagesWireShapes(t *testing.T) {
	out := translateMessages([]ChatMessage{
		{Role: "system", Content: "sys"},
		{Role: "user", Content: "hi"},
	})
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"role":"system","content":"sys"},
		  {"role":"user","content":[{"type":"text","text":"hi"}]}]`,
		string(encoded))
}

func TestTranslateMessagesDropsUnknownRoles(t *testing.T) {
	out := translateMessages([]ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "tool", Content: "ignored"},
		{Role: "", Content: "also ignored"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "user", out[0].Role)
}

func TestExtractReplyTypedChoices(t *testing.T) {
	raw := []byte(`{"choices":[{"message":{"role":"assistant","content":"The Lakers won."}}]}`)
	assert.Equal(t, "The Lakers won.", ExtractReply(raw))
}

func TestExtractReplyMapWalk(t *testing.T) {
	// Content that is not a plain string misses the typed decode but is
	// still reachable through the generic map walk.
	raw := []byte(`{"choices":[{"message":{"content":[{"type":"text","text":"hi"}]}}]}`)
	got := ExtractReply(raw)
	assert.Contains(t, got, "text")
	assert.Contains(t, got, "hi")
}

func TestExtractReplyFallsBackToRawBody(t *testing.T) {
	raw := []byte(`{"generated_text":"something unexpected"}`)
	assert.Equal(t, string(raw), ExtractReply(raw))

	raw = []byte(`not json at all`)
	assert.Equal(t, "not json at all", ExtractReply(raw))
}

func TestExtractReplyEmptyChoices(t *testing.T) {
	raw := []byte(`{"choices":[]}`)
	assert.Equal(t, string(raw), ExtractReply(raw))
}

// newStubbedClient points every watsonx env var at a local test server.
func newStubbedClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("WATSONX_URL", srv.URL)
	t.Setenv("WATSONX_API_KEY", "test-key")
	t.Setenv("WATSONX_PROJECT_ID", "test-project")
	t.Setenv("WATSONX_IAM_URL", srv.URL+"/identity/token")

	client, err := NewClientFromEnv()
	require.NoError(t, err)
	return client
}

func TestChatRoundTrip(t *testing.T) {
	var gotBody chatRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.Form.Get("apikey"))
		assert.Equal(t, "urn:ibm:params:oauth:grant-type:apikey", r.Form.Get("grant_type"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "stub-token"})
	})
	mux.HandleFunc("/ml/v1/text/chat", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stub-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.URL.Query().Get("version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Lakers in six."}}]}`))
	})

	client := newStubbedClient(t, mux)

	reply, err := client.Chat([]ChatMessage{
		{Role: "system", Content: "You are an NBA expert"},
		{Role: "user", Content: "Who won the 2020 finals?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lakers in six.", reply)

	assert.Equal(t, modelID, gotBody.ModelID)
	assert.Equal(t, "test-project", gotBody.ProjectID)
	assert.Equal(t, maxTokens, gotBody.MaxTokens)
	assert.Equal(t, temperature, gotBody.Temperature)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestChatUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "stub-token"})
	})
	mux.HandleFunc("/ml/v1/text/chat", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	client := newStubbedClient(t, mux)

	_, err := client.Chat([]ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewClientFromEnvMissingCredentials(t *testing.T) {
	t.Setenv("WATSONX_URL", "")
	t.Setenv("WATSONX_API_KEY", "")

	_, err := NewClientFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WATSONX_URL")

	t.Setenv("WATSONX_URL", "https://example.invalid")
	_, err = NewClientFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WATSONX_API_KEY")
}

func TestFetchIAMTokenRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("WATSONX_IAM_URL", srv.URL)

	_, err := fetchIAMToken(srv.Client(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
