package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/course-reviews-api/internal/application/verification"
	"github.com/course-reviews-api/internal/domain"
)

// --- mocks ---

type mockCodeSender struct{ mock.Mock }

func (m *mockCodeSender) SendCode(ctx context.Context, username string) (domain.SendOutcome, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.SendOutcome), args.Error(1)
}

func postVerification(h *VerificationHandler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/verifications", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	return rr
}

// --- tests ---

func TestVerificationCreate_Accepted(t *testing.T) {
	sender := &mockCodeSender{}
	sender.On("SendCode", mock.Anything, "jdoe").Return(domain.SendAccepted, nil)
	h := NewVerificationHandler(verification.NewService(sender))

	rr := postVerification(h, `{"username":"jdoe"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
	sender.AssertExpectations(t)
}

func TestVerificationCreate_InvalidRecipient(t *testing.T) {
	sender := &mockCodeSender{}
	sender.On("SendCode", mock.Anything, "bad user!").Return(domain.SendInvalidRecipient, nil)
	h := NewVerificationHandler(verification.NewService(sender))

	rr := postVerification(h, `{"username":"bad user!"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"bad user! is not valid. Please try again."}`, rr.Body.String())
}

func TestVerificationCreate_RateLimited(t *testing.T) {
	sender := &mockCodeSender{}
	sender.On("SendCode", mock.Anything, "jdoe").Return(domain.SendRateLimited, nil)
	h := NewVerificationHandler(verification.NewService(sender))

	rr := postVerification(h, `{"username":"jdoe"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Too many send attempts. Please try again later."}`, rr.Body.String())
}

func TestVerificationCreate_MissingUsername(t *testing.T) {
	sender := &mockCodeSender{}
	h := NewVerificationHandler(verification.NewService(sender))

	for _, body := range []string{`{}`, `{"username":""}`, `not-json`} {
		rr := postVerification(h, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.JSONEq(t, `{"error":"Username required."}`, rr.Body.String(), body)
	}
	sender.AssertNotCalled(t, "SendCode")
}

func TestVerificationCreate_ProviderError(t *testing.T) {
	sender := &mockCodeSender{}
	sender.On("SendCode", mock.Anything, "jdoe").Return(domain.SendAccepted, errors.New("twilio down"))
	h := NewVerificationHandler(verification.NewService(sender))

	rr := postVerification(h, `{"username":"jdoe"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "twilio")
}
