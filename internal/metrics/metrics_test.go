package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/sumario/internal/config"
)

func TestCountersAreExposed(t *testing.T) {
	m := New()

	m.ObserveDigest(config.ModeOffline, true)
	m.ObserveDigest(config.ModeOffline, true)
	m.ObserveDigest(config.ModeAI, false)
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveHighlight(true)
	m.ObserveRequest("POST /summarize", 200)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `sumario_digests_total{fallback="true",mode="offline"} 2`)
	assert.Contains(t, text, `sumario_digests_total{fallback="false",mode="ai"} 1`)
	assert.Contains(t, text, `sumario_digest_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, text, `sumario_digest_cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, text, `sumario_highlights_total{changed="true"} 1`)
	assert.Contains(t, text, `sumario_http_requests_total{code="200",route="POST /summarize"} 1`)
}

func TestRegistryIsPrivate(t *testing.T) {
	a, b := New(), New()
	a.ObserveCache(true)

	families, err := b.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.NotEqual(t, "sumario_digest_cache_lookups_total", mf.GetName())
	}
}
