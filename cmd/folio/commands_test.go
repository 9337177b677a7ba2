package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/btmxh/folio/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "", "resolve", "--kind", "video", "--parent", "me.example", "https://www.twitch.tv/somechannel")
	require.NoError(t, err)

	var resolved media.Resolved
	require.NoError(t, json.Unmarshal([]byte(out), &resolved))
	assert.Equal(t, media.IframeEmbed, resolved.Strategy)
	assert.Equal(t, "https://player.twitch.tv/?channel=somechannel&parent=me.example", resolved.EmbedURL)
	assert.NotContains(t, out, `\u0026`)

	out, err = run(t, "", "resolve", "--kind", "image", "--parent", "", "https://drive.google.com/file/d/ABC123/view?usp=sharing")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resolved))
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=ABC123", resolved.Candidates[0])

	_, err = run(t, "", "resolve", "--kind", "gif", "https://example.com/a.gif")
	assert.ErrorIs(t, err, media.ErrUnknownKind)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "", "hash-password", "hunter22")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("hunter22")))

	out, err = run(t, "from-stdin\n", "hash-password")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("from-stdin")))

	_, err = run(t, "\n", "hash-password")
	assert.ErrorIs(t, err, emptyPasswordError)
}

func TestProbeCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok.png" {
			w.Header().Set("Content-Type", "image/png")
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	out, err := run(t, "", "probe", "--concurrency", "2", server.URL+"/ok.png")
	require.NoError(t, err)
	assert.Contains(t, out, "ok\t"+server.URL+"/ok.png")

	out, err = run(t, "", "probe", server.URL+"/ok.png", server.URL+"/gone.png")
	assert.EqualError(t, err, "1 of 2 images failed to load")
	assert.Contains(t, out, "failed\t"+server.URL+"/gone.png\texhausted after 1 attempts")

	_, err = run(t, "", "probe")
	assert.ErrorIs(t, err, noImagesError)
}
