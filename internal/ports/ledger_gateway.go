package ports

import (
	"context"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerGateway is the outbound contract with the remote ledger service.
// Every call is a single attempt; callers decide whether to re-invoke.
// Failures surface as *domain.RequestError.
type LedgerGateway interface {
	ListUsers(ctx context.Context) ([]domain.Identity, error)
	GetBalance(ctx context.Context, user domain.Identity) (domain.BalanceSnapshot, error)
	Deposit(ctx context.Context, user domain.Identity, amount decimal.Decimal) error
	Withdraw(ctx context.Context, user domain.Identity, amount decimal.Decimal) error
	Send(ctx context.Context, from, to domain.Identity, amount decimal.Decimal) error
	Transfer(ctx context.Context, user domain.Identity, direction domain.TransferDirection, amount decimal.Decimal) error
	Invest(ctx context.Context, user domain.Identity, fund string, amount decimal.Decimal) error
	WithdrawInvestments(ctx context.Context, user domain.Identity) error
	Health(ctx context.Context) (string, error)
}
