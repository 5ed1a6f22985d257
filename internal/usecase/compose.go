package usecase

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-wordwrap"
)

// bodyWrapColumn is where plain-text mail bodies are hard-wrapped for
// readability in plain-text mail clients.
const bodyWrapColumn = 70

const defaultSenderName = "somebody"

// illegalEmailChars matches everything outside the characters permitted in
// an email address; sanitization strips these before validation.
var illegalEmailChars = regexp.MustCompile("[^a-zA-Z0-9.!#$%&'*+\\-=?^_`{|}~@\\[\\]]")

var validate = validator.New()

// sanitizeSubmission extracts, sanitizes and validates the user-supplied
// fields. The missing-fields check runs before the email-syntax check so
// that an entirely empty form reports the missing fields, not a malformed
// address.
func sanitizeSubmission(req *domain.ContactRequest) (domain.Submission, error) {
	email := illegalEmailChars.ReplaceAllString(req.Email, "")
	message := html.EscapeString(req.Message)
	name := req.Name
	if name == "" {
		name = defaultSenderName
	}
	name = html.EscapeString(name)

	if email == "" || message == "" {
		return domain.Submission{}, apperror.Unprocessable("Error: Missing required fields.")
	}
	if validate.Var(email, "email") != nil {
		return domain.Submission{}, apperror.Unprocessable("Error: Invalid email address.")
	}

	return domain.Submission{
		Email:   email,
		Message: message,
		Name:    name,
	}, nil
}

// siteIdentity resolves the effective site domain and display name for one
// request. The configured values win; an unset domain falls back to the
// request's Host header, and an unset name is the capitalized first label
// of the effective domain.
func siteIdentity(cfg *config.Config, host string) (siteDomain, siteName string) {
	siteDomain = cfg.SiteDomain
	if siteDomain == "" {
		siteDomain = host
	}
	siteName = cfg.SiteName
	if siteName == "" {
		label, _, _ := strings.Cut(siteDomain, ".")
		siteName = capitalize(label)
	}
	return siteDomain, siteName
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// composeMessages builds the owner notification and the submitter
// confirmation from validated data. It is pure: same inputs, same messages.
func composeMessages(cfg *config.Config, host string, sub domain.Submission) (owner, confirmation domain.OutboundMessage) {
	siteDomain, siteName := siteIdentity(cfg, host)

	wrapped := wordwrap.WrapString(sub.Message, bodyWrapColumn)

	owner = domain.OutboundMessage{
		From:            cfg.FromEmail,
		FromDisplayName: siteName,
		To:              cfg.MailboxEmail,
		ReplyTo:         sub.Email,
		Subject:         fmt.Sprintf("Message from %s via %s", sub.Name, siteDomain),
		Body:            fmt.Sprintf("From: %s (%s)\n\nMessage:\n%s", sub.Name, sub.Email, wrapped),
	}

	confirmation = domain.OutboundMessage{
		From:            cfg.FromEmail,
		FromDisplayName: siteName,
		To:              sub.Email,
		ReplyTo:         cfg.ReplyToEmail,
		Subject:         fmt.Sprintf("Your message to %s has been received", siteName),
		Body: fmt.Sprintf(
			"Dear %s (%s),\n\nYour message to %s has been received. "+
				"If you did not submit this message, please disregard this email.\n\nYour message:\n%s",
			sub.Name, sub.Email, siteName, quote(wrapped)),
	}

	return owner, confirmation
}

// quote prefixes each line with "> " for the confirmation body.
func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
