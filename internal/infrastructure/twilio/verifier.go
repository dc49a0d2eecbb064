package twilio

import (
	"context"
	"errors"
	"fmt"

	"github.com/course-reviews-api/internal/config"
	"github.com/course-reviews-api/internal/domain"
	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

// verifyAPI is the slice of the Twilio SDK the verifier needs; satisfied by
// the SDK's VerifyV2 service and by test doubles.
type verifyAPI interface {
	CreateVerification(serviceSid string, params *verify.CreateVerificationParams) (*verify.VerifyV2Verification, error)
	CreateVerificationCheck(serviceSid string, params *verify.CreateVerificationCheckParams) (*verify.VerifyV2VerificationCheck, error)
}

// Provider error codes mapped to classified send outcomes. Any code outside
// this table propagates as an unclassified error.
// https://www.twilio.com/docs/api/errors/60200
// https://www.twilio.com/docs/api/errors/60203
var sendOutcomeByCode = map[int]domain.SendOutcome{
	60200: domain.SendInvalidRecipient,
	60203: domain.SendRateLimited,
}

// Verifier wraps Twilio Verify v2 behind the closed SendOutcome/CheckOutcome
// sets so nothing outside this package inspects provider error types. The
// pending verification state (codes, expiry, attempt counters) lives entirely
// on the provider side.
type Verifier struct {
	api         verifyAPI
	serviceSID  string
	emailDomain string
}

func NewVerifier(cfg *config.Config) *Verifier {
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &Verifier{
		api:         rc.VerifyV2,
		serviceSID:  cfg.TwilioVerifyServiceSID,
		emailDomain: cfg.InstitutionDomain,
	}
}

// recipient derives the institutional email address for a username.
func (v *Verifier) recipient(username string) string {
	return username + "@" + v.emailDomain
}

// SendCode asks the provider to email a one-time code to the claimed
// identity. The SDK's generated API takes no context; the call runs on the
// transport's defaults.
func (v *Verifier) SendCode(_ context.Context, username string) (domain.SendOutcome, error) {
	params := &verify.CreateVerificationParams{}
	params.SetTo(v.recipient(username))
	params.SetChannel("email")

	if _, err := v.api.CreateVerification(v.serviceSID, params); err != nil {
		var restErr *twclient.TwilioRestError
		if errors.As(err, &restErr) {
			if outcome, ok := sendOutcomeByCode[restErr.Code]; ok {
				return outcome, nil
			}
		}
		return 0, fmt.Errorf("create verification: %w", err)
	}
	return domain.SendAccepted, nil
}

// CheckCode checks a submitted code against the pending verification for the
// derived email. The provider consumes the pending verification regardless of
// outcome; a 404 means no active verification exists for this recipient.
func (v *Verifier) CheckCode(_ context.Context, username, code string) (domain.CheckOutcome, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(v.recipient(username))
	params.SetCode(code)

	out, err := v.api.CreateVerificationCheck(v.serviceSID, params)
	if err != nil {
		var restErr *twclient.TwilioRestError
		if errors.As(err, &restErr) && restErr.Status == 404 {
			return domain.CheckNotFound, nil
		}
		return 0, fmt.Errorf("check verification: %w", err)
	}

	// Status is "pending", "approved", or "canceled"; only "approved"
	// proves control of the mailbox.
	if out.Status != nil && *out.Status == "approved" {
		return domain.CheckApproved, nil
	}
	return domain.CheckMismatch, nil
}
