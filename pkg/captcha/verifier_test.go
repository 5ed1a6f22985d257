package captcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-contact-backend/pkg/captcha"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySkippedWhenUnconfigured(t *testing.T) {
	// A hit on this server means the verifier made a network call it must not make.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unconfigured verifier must not call the provider")
	}))
	defer srv.Close()

	for _, v := range []*captcha.Verifier{
		captcha.NewVerifier("", srv.URL),
		captcha.NewVerifier("secret", ""),
		captcha.NewVerifier("", ""),
	} {
		result, err := v.Verify(context.Background(), "any-token", "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, v.IsConfigured())
	}
}

func TestVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-secret", r.PostForm.Get("secret"))
		assert.Equal(t, "test-token", r.PostForm.Get("response"))
		assert.Equal(t, "203.0.113.7", r.PostForm.Get("remoteip"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	v := captcha.NewVerifier("test-secret", srv.URL)
	result, err := v.Verify(context.Background(), "test-token", "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Reasons)
}

func TestVerifyProviderRejection(t *testing.T) {
	t.Run("Error codes are preserved in order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response", "timeout-or-duplicate"]}`))
		}))
		defer srv.Close()

		v := captcha.NewVerifier("test-secret", srv.URL)
		result, err := v.Verify(context.Background(), "bad-token", "203.0.113.7")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, []string{"invalid-input-response", "timeout-or-duplicate"}, result.Reasons)
	})

	t.Run("Missing success field counts as rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		v := captcha.NewVerifier("test-secret", srv.URL)
		result, err := v.Verify(context.Background(), "token", "203.0.113.7")
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestVerifyNetworkFailure(t *testing.T) {
	t.Run("Unreachable provider returns an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		v := captcha.NewVerifier("test-secret", srv.URL)
		_, err := v.Verify(context.Background(), "token", "203.0.113.7")
		assert.Error(t, err)
	})

	t.Run("Unparseable response returns an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		v := captcha.NewVerifier("test-secret", srv.URL)
		_, err := v.Verify(context.Background(), "token", "203.0.113.7")
		assert.Error(t, err)
	})
}
