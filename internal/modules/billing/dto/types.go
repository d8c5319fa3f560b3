package dto

type CreatePaymentInput struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	UserID      string  `json:"userId"`
	Plan        string  `json:"plan"`
}

type Confirmation struct {
	Type            string `json:"type"`
	ConfirmationURL string `json:"confirmation_url"`
}

type PaymentOutput struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Confirmation Confirmation `json:"confirmation"`
}

type ProcessInput struct {
	PaymentID string `json:"paymentId"`
	UserID    string `json:"userId"`
}

type ProcessOutput struct {
	Success bool `json:"success"`
}

type TestMethodOutput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type SimulateInput struct {
	Action string `json:"action"`
	UserID string `json:"userId"`
}

type SimulateOutput struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty"`
}
