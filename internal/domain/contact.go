package domain

import "context"

// ContactRequest carries a raw contact form submission into the pipeline,
// together with the request metadata the pipeline needs (client IP for
// CAPTCHA, Host header for site-domain defaulting). All values are passed
// explicitly; the pipeline never reads ambient server state.
type ContactRequest struct {
	Email        string
	Message      string
	Name         string
	CaptchaToken string
	CsrfToken    string
	RemoteIP     string
	Host         string
}

// Submission holds the sanitized and validated user-supplied fields.
// It lives for a single request and is discarded once the two outbound
// messages have been composed.
type Submission struct {
	Email   string
	Message string
	Name    string
}

// OutboundMessage is one notification to be handed to the mail transport.
// Two are produced per successful submission: the owner notification and
// the submitter confirmation.
type OutboundMessage struct {
	From            string
	FromDisplayName string
	To              string
	Subject         string
	Body            string
	ReplyTo         string
}

// VerificationResult is the uniform verdict shape returned by the CAPTCHA
// and CSRF checks. Reasons preserves the provider's error codes in order.
type VerificationResult struct {
	Success bool
	Reasons []string
}

// Mailer is the message-transport contract. A failed send returns an error
// whose message is the transport's human-readable failure detail.
type Mailer interface {
	Send(ctx context.Context, msg OutboundMessage) error
}

// TokenValidator checks an opaque CSRF token against whatever session or
// store mechanism backs the deployment.
type TokenValidator interface {
	TokenIsValid(ctx context.Context, token string) bool
}

// CaptchaVerifier is the verify-or-skip bot check. A non-nil error means the
// provider could not be consulted; Success=false with Reasons means the
// provider rejected the token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (VerificationResult, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact runs the verification-and-dispatch pipeline for one
	// submission. A non-nil error is always an *apperror.AppError carrying
	// the HTTP status to report.
	SubmitContact(ctx context.Context, req *ContactRequest) error
}
