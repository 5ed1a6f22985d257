package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-contact-backend/internal/domain"
)

// defaultTimeout bounds the provider call; the pipeline blocks on it and the
// provider guarantees no timeout of its own.
const defaultTimeout = 10 * time.Second

// Verifier performs third-party bot verification via a server-to-server
// token exchange. An unconfigured verifier (empty secret or verify URL)
// passes everything without touching the network.
type Verifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

// verifyResponse mirrors the provider's JSON verdict body.
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewVerifier(secret, verifyURL string) *Verifier {
	return &Verifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

// IsConfigured reports whether verification will actually be performed.
func (v *Verifier) IsConfigured() bool {
	return v.secret != "" && v.verifyURL != ""
}

// Verify checks the submitted token with the provider. A non-nil error means
// the provider could not be consulted (network failure or unparseable
// response); the caller treats that the same as failed verification. A nil
// error with Success=false means the provider rejected the token, with any
// provider error codes preserved in Reasons.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (domain.VerificationResult, error) {
	if !v.IsConfigured() {
		// Skip verification if CAPTCHA is not configured
		return domain.VerificationResult{Success: true}, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	form.Set("remoteip", remoteIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("captcha: building verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("captcha: verify call failed: %w", err)
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("captcha: decoding verify response: %w", err)
	}

	return domain.VerificationResult{
		Success: body.Success && len(body.ErrorCodes) == 0,
		Reasons: body.ErrorCodes,
	}, nil
}
