package usecase

import (
	"context"
	"strings"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

type contactUsecase struct {
	cfg     *config.Config
	captcha domain.CaptchaVerifier
	csrf    domain.TokenValidator
	mailer  domain.Mailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(cfg *config.Config, captcha domain.CaptchaVerifier, csrf domain.TokenValidator, mailer domain.Mailer) domain.ContactUsecase {
	return &contactUsecase{
		cfg:     cfg,
		captcha: captcha,
		csrf:    csrf,
		mailer:  mailer,
	}
}

// SubmitContact runs the stages strictly in order and stops at the first
// failure: CAPTCHA, CSRF, sanitize/validate, compose, dispatch owner
// notification, dispatch confirmation. Nothing is retried or rolled back.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.verifyCaptcha(ctx, req.CaptchaToken, req.RemoteIP); err != nil {
		return err
	}

	if err := uc.verifyCsrf(ctx, req.CsrfToken); err != nil {
		return err
	}

	sub, err := sanitizeSubmission(req)
	if err != nil {
		return err
	}

	owner, confirmation := composeMessages(uc.cfg, req.Host, sub)

	// The owner notification is the submission of record: a transport
	// failure here is fatal and the confirmation is never attempted.
	if err := uc.mailer.Send(ctx, owner); err != nil {
		return apperror.Delivery(err)
	}

	// The confirmation is best-effort. The owner already has the message,
	// so a failure here is logged but does not fail the request.
	if err := uc.mailer.Send(ctx, confirmation); err != nil {
		logger.Log.Warn("Failed to send confirmation email", "to", sub.Email, "error", err)
	}

	return nil
}

func (uc *contactUsecase) verifyCaptcha(ctx context.Context, token, remoteIP string) error {
	result, err := uc.captcha.Verify(ctx, token, remoteIP)
	if err != nil {
		// A provider we cannot reach is treated the same as failed
		// verification; the detail stays server-side.
		logger.Log.Error("CAPTCHA provider unreachable", "error", err)
		return apperror.Forbidden("Error: CAPTCHA verification failed due to a network error.")
	}
	if len(result.Reasons) > 0 {
		appErr := apperror.Forbidden("CAPTCHA verification failed: " + strings.Join(result.Reasons, ", "))
		appErr.CaptchaErrors = result.Reasons
		return appErr
	}
	if !result.Success {
		return apperror.Forbidden("Error: CAPTCHA verification failed.")
	}
	return nil
}

func (uc *contactUsecase) verifyCsrf(ctx context.Context, token string) error {
	if !uc.cfg.CheckCsrf {
		return nil
	}
	// CSRF enabled but no token to check is an integration bug, not a
	// client error.
	if token == "" {
		return apperror.ServerConfig("Server error: CSRF checking is enabled but no token was supplied.")
	}
	if !uc.csrf.TokenIsValid(ctx, token) {
		return apperror.Forbidden("Error: There was an issue with your session. Please refresh the page and try again.")
	}
	return nil
}
