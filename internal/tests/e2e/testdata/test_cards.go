package testdata

// TestCard is a submission body used across the scenarios. The bank
// simulator decides by the last digit of the card number: odd authorizes,
// even declines, zero answers 503.
type TestCard struct {
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	AuthorizedCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "123",
		ExpiryMonth: 4,
		ExpiryYear:  2025,
		Description: "Odd last digit, bank authorizes",
	}

	DeclinedCard = TestCard{
		CardNumber:  "2222405343248112",
		CVV:         "456",
		ExpiryMonth: 1,
		ExpiryYear:  2026,
		Description: "Even last digit, bank declines",
	}

	BankErrorCard = TestCard{
		CardNumber:  "2222405343248110",
		CVV:         "789",
		ExpiryMonth: 1,
		ExpiryYear:  2026,
		Description: "Zero last digit, bank answers 503",
	}

	MalformedCard = TestCard{
		CardNumber:  "4444444444444444a",
		CVV:         "123",
		ExpiryMonth: 4,
		ExpiryYear:  2025,
		Description: "Trailing letter, never reaches the bank",
	}

	ExpiredCard = TestCard{
		CardNumber:  "2222405343248877",
		CVV:         "123",
		ExpiryMonth: 3,
		ExpiryYear:  2025,
		Description: "Expired the month before the test clock",
	}
)
