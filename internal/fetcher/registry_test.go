package fetcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"browser", "http"}, Names())
}

func TestNew_HTTP(t *testing.T) {
	f, err := New("HTTP", Options{})
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)
}

func TestNew_Browser(t *testing.T) {
	f, err := New("browser", Options{ShowUI: true, ProxyURL: "http://127.0.0.1:7890"})
	require.NoError(t, err)

	bf, ok := f.(*BrowserFetcher)
	require.True(t, ok)
	assert.False(t, bf.cfg.Headless)
	assert.Equal(t, "http://127.0.0.1:7890", bf.cfg.ProxyURL)
	assert.Equal(t, DefaultTimeout, bf.timeout)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("carrier-pigeon", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fetcher: carrier-pigeon")
}

func TestTransportError_Messages(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	netErr := networkError("https://example.org/wiki/X", cause)
	assert.Equal(t, "dial tcp: connection refused", netErr.Error())
	assert.ErrorIs(t, netErr, cause)
	assert.Equal(t, "network", netErr.Kind.String())

	statusErr := statusError("https://example.org/wiki/X", 500, "500 Internal Server Error")
	assert.Equal(t, "500 Internal Server Error for url: https://example.org/wiki/X", statusErr.Error())
	assert.Nil(t, statusErr.Unwrap())
	assert.Equal(t, "http-status", statusErr.Kind.String())
}
