package domain

// BankOutcome classifies a single call to the acquiring bank.
type BankOutcome int

const (
	// BankUnreachable covers transport failures, timeouts and unreadable responses.
	BankUnreachable BankOutcome = iota
	// BankApproved means the bank answered with authorized=true.
	BankApproved
	// BankDeclined means the bank answered but did not authorize.
	BankDeclined
)

func (o BankOutcome) String() string {
	switch o {
	case BankApproved:
		return "approved"
	case BankDeclined:
		return "declined"
	default:
		return "unreachable"
	}
}

// ResolveStatus maps validation and bank outcome to the final payment status.
// When valid is false the bank outcome is ignored.
func ResolveStatus(valid bool, outcome BankOutcome) PaymentStatus {
	if !valid {
		return StatusRejected
	}

	switch outcome {
	case BankApproved:
		return StatusAuthorized
	case BankDeclined:
		return StatusDeclined
	default:
		return StatusRejected
	}
}
