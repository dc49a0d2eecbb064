package domain

// SendOutcome is the classified result of requesting a one-time code for a
// claimed institutional identity. Anything the provider reports outside this
// set propagates as a plain error instead.
type SendOutcome int

const (
	SendAccepted SendOutcome = iota
	SendInvalidRecipient
	SendRateLimited
)

// CheckOutcome is the classified result of checking a submitted code against
// a prior issuance. The provider consumes or invalidates the pending
// verification on its side regardless of outcome.
type CheckOutcome int

const (
	CheckApproved CheckOutcome = iota
	CheckNotFound
	CheckMismatch
)
