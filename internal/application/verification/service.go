package verification

import (
	"context"
	"fmt"

	"github.com/course-reviews-api/internal/domain"
)

// Client-facing rejection reasons for code issuance.
const (
	msgRateLimited = "Too many send attempts. Please try again later."
)

type codeSender interface {
	SendCode(ctx context.Context, username string) (domain.SendOutcome, error)
}

// IssueResult is the tagged outcome of a code-issuance request. Rejection is
// a value, not an error; only unclassified provider failures surface as
// errors from IssueCode.
type IssueResult struct {
	Accepted bool
	Reason   string // client-facing, set when not accepted
}

type Service interface {
	IssueCode(ctx context.Context, username string) (IssueResult, error)
}

type service struct {
	sender codeSender
}

func NewService(sender codeSender) Service {
	return &service{sender: sender}
}

// IssueCode asks the verification provider to email a one-time code to the
// claimed institutional identity. Exactly one provider call per request; no
// retries — the provider enforces expiry and send limits.
func (s *service) IssueCode(ctx context.Context, username string) (IssueResult, error) {
	outcome, err := s.sender.SendCode(ctx, username)
	if err != nil {
		return IssueResult{}, err
	}
	switch outcome {
	case domain.SendAccepted:
		return IssueResult{Accepted: true}, nil
	case domain.SendInvalidRecipient:
		return IssueResult{Reason: fmt.Sprintf("%s is not valid. Please try again.", username)}, nil
	case domain.SendRateLimited:
		return IssueResult{Reason: msgRateLimited}, nil
	default:
		return IssueResult{}, fmt.Errorf("unexpected send outcome %d", outcome)
	}
}
