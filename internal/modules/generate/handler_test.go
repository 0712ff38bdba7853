package generate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Karimk94/translator-core/internal/modules/relay"
)

type upstreamRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

func newTestRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	client := relay.NewClient(relay.Config{URL: upstreamURL, Model: "test-model"}, log)
	r := gin.New()
	NewHandler(NewService(client, log)).RegisterRoutes(r.Group("/"))
	return r
}

func postGenerate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndToEnd(t *testing.T) {
	var captured upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"response":"مَرحبا"}` + "\n"))
		w.Write([]byte(`{"response":" بالعالم?","done":true}` + "\n"))
	}))
	defer srv.Close()

	w := postGenerate(t, newTestRouter(srv.URL), `{"text": "Hello world", "task": "translate"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	// Source detected as English, so the prompt targets Arabic and carries
	// the no-diacritics rule.
	assert.Equal(t, "test-model", captured.Model)
	assert.True(t, captured.Stream)
	assert.Contains(t, captured.Prompt, "Translate the provided English text to Arabic")
	assert.Contains(t, captured.Prompt, "MUST NOT contain any Arabic diacritics")

	assert.Equal(t, "data: مرحبا\n\ndata:  بالعالم\n\ndata: [END_OF_STREAM]\n\n", w.Body.String())
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	w := postGenerate(t, newTestRouter(url), `{"text": "Hello"}`)

	// Still 200: failure signaling happens inside the stream, as the only
	// event of the stream when nothing was relayed before the failure.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "data: [ERROR]\n\n", w.Body.String())
}

func TestGenerateDefaultsToTranslate(t *testing.T) {
	var captured upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"done":true}` + "\n"))
	}))
	defer srv.Close()

	postGenerate(t, newTestRouter(srv.URL), `{"text": "Hello"}`)
	assert.Contains(t, captured.Prompt, "direct translation engine")
}

func TestGenerateUnrecognizedTaskEchoesText(t *testing.T) {
	var captured upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"done":true}` + "\n"))
	}))
	defer srv.Close()

	postGenerate(t, newTestRouter(srv.URL), `{"text": "just this", "task": "summarize"}`)
	assert.Equal(t, "just this", captured.Prompt)
}

func TestGenerateMalformedBodyTolerated(t *testing.T) {
	var captured upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"done":true}` + "\n"))
	}))
	defer srv.Close()

	w := postGenerate(t, newTestRouter(srv.URL), `{not json`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, captured.Prompt, `English Text: ""`)
	assert.Equal(t, "data: [END_OF_STREAM]\n\n", w.Body.String())
}

func TestGenerateArabicInputTargetsEnglish(t *testing.T) {
	var captured upstreamRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"response":"Hello","done":true}` + "\n"))
	}))
	defer srv.Close()

	postGenerate(t, newTestRouter(srv.URL), `{"text": "مرحبا بالعالم", "task": "translate"}`)
	assert.Contains(t, captured.Prompt, "Translate the provided Arabic text to English")
	assert.NotContains(t, captured.Prompt, "diacritics")
}
