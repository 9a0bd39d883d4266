package domain

import "github.com/shopspring/decimal"

type OperationKind string

const (
	OperationDeposit              OperationKind = "deposit"
	OperationWithdraw             OperationKind = "withdraw"
	OperationSend                 OperationKind = "send"
	OperationTransfer             OperationKind = "transfer"
	OperationInvest               OperationKind = "invest"
	OperationLiquidateInvestments OperationKind = "liquidate_investments"
)

// TransferDirection uses the ledger's wire values directly.
type TransferDirection string

const (
	SavingsToInvestment TransferDirection = "SAVINGS_TO_INVESTMENT"
	InvestmentToSavings TransferDirection = "INVESTMENT_TO_SAVINGS"
)

// Label is the user-facing rendering of a direction.
func (d TransferDirection) Label() string {
	switch d {
	case SavingsToInvestment:
		return "Savings → Investment"
	case InvestmentToSavings:
		return "Investment → Savings"
	default:
		return string(d)
	}
}

func (d TransferDirection) Valid() bool {
	return d == SavingsToInvestment || d == InvestmentToSavings
}

// OperationRequest is a tagged variant over the six money-movement kinds.
// Only the fields relevant to Kind are set.
type OperationRequest struct {
	Kind      OperationKind
	Amount    decimal.Decimal
	Recipient Identity
	Direction TransferDirection
	Fund      string
}

func NewDeposit(amount decimal.Decimal) OperationRequest {
	return OperationRequest{Kind: OperationDeposit, Amount: amount}
}

func NewWithdraw(amount decimal.Decimal) OperationRequest {
	return OperationRequest{Kind: OperationWithdraw, Amount: amount}
}

func NewSend(recipient Identity, amount decimal.Decimal) OperationRequest {
	return OperationRequest{Kind: OperationSend, Recipient: recipient, Amount: amount}
}

func NewTransfer(direction TransferDirection, amount decimal.Decimal) OperationRequest {
	return OperationRequest{Kind: OperationTransfer, Direction: direction, Amount: amount}
}

func NewInvest(fund string, amount decimal.Decimal) OperationRequest {
	return OperationRequest{Kind: OperationInvest, Fund: fund, Amount: amount}
}

func NewLiquidateInvestments() OperationRequest {
	return OperationRequest{Kind: OperationLiquidateInvestments}
}

// Validate applies the purely local rules. It runs before any network call;
// a non-nil result is always a *ValidationError.
func (r OperationRequest) Validate(current Identity) error {
	switch r.Kind {
	case OperationSend:
		if r.Recipient.IsZero() {
			return &ValidationError{Reason: "Please select a recipient"}
		}
		if err := r.validateAmount(); err != nil {
			return err
		}
		if r.Recipient == current {
			return &ValidationError{Reason: "Cannot send money to yourself"}
		}
		return nil
	case OperationTransfer:
		if !r.Direction.Valid() {
			return &ValidationError{Reason: "Please select a direction"}
		}
		return r.validateAmount()
	case OperationInvest:
		if r.Fund == "" {
			return &ValidationError{Reason: "Please select a fund"}
		}
		return r.validateAmount()
	case OperationLiquidateInvestments:
		return nil
	default:
		return r.validateAmount()
	}
}

func (r OperationRequest) validateAmount() error {
	if !r.Amount.IsPositive() {
		return &ValidationError{Reason: "Amount must be positive"}
	}
	return nil
}

// Amounts outside this scale are junk input, not money. The parser itself
// accepts arbitrary exponents ("1e999999999" is a valid decimal), and
// formatting such a value would expand every digit.
const (
	maxAmountExponent = 12
	minAmountExponent = -8
)

// ParseAmount turns raw form input into a decimal amount. Any input that is
// not a number of plausible magnitude maps to the same user-facing rejection.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.Exponent() > maxAmountExponent || amount.Exponent() < minAmountExponent {
		return decimal.Decimal{}, &ValidationError{Reason: "Amount must be positive"}
	}
	return amount, nil
}
