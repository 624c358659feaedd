package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiService_EligeModeloPorTarea(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Carteira "},{"text":"saudável."}]}}]}`))
	}))
	defer srv.Close()

	s := NewGeminiService("k", "flash", "pro")
	s.baseURL = srv.URL + "/models/%s:generateContent"

	out, err := s.GenerateText(context.Background(), ports.AITaskAnalysis, "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "Carteira saudável.", out)
	assert.Equal(t, "/models/pro:generateContent", gotPath)
	assert.Equal(t, "k", gotKey)
	assert.Equal(t, "sys", gotReq.SystemInstruction.Parts[0].Text)

	_, err = s.GenerateText(context.Background(), ports.AITaskSummary, "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "/models/flash:generateContent", gotPath)
}

func TestGeminiService_Errores(t *testing.T) {
	_, err := NewGeminiService("", "a", "b").GenerateText(context.Background(), ports.AITaskSummary, "s", "u")
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()
	s := NewGeminiService("k", "a", "b")
	s.baseURL = srv.URL + "/%s"
	_, err = s.GenerateText(context.Background(), ports.AITaskSummary, "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestAnthropicService_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		var req anthropicRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "modelo", req.Model)
		assert.Equal(t, "sys", req.System)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"  Recomendo o fornecedor ALFA. "}]}`))
	}))
	defer srv.Close()

	s := NewAnthropicService("k", "modelo")
	s.url = srv.URL
	out, err := s.GenerateText(context.Background(), ports.AITaskAnalysis, "sys", "mapa")
	require.NoError(t, err)
	assert.Equal(t, "Recomendo o fornecedor ALFA.", out)
}
