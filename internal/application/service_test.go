package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRecordsActivityAndFetchesBalance(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)

	require.NoError(t, svc.Login(context.Background(), "alice"))

	assert.Equal(t, domain.Identity("alice"), svc.Identity())
	assert.Equal(t, 1, gateway.balanceCalls())

	snapshot, ok := svc.Snapshot()
	require.True(t, ok)
	assert.True(t, snapshot.Cash.Equal(decimal.NewFromInt(100)))

	head, ok := headEntry(svc)
	require.True(t, ok)
	assert.Equal(t, "Logged in", head.Message)
	assert.Equal(t, domain.ActivityInfo, head.Kind)
}

func TestLoginSurvivesBalanceFetchFailure(t *testing.T) {
	gateway := newFakeGateway()
	gateway.balanceErr = domain.NewRequestError("ledger unreachable")
	svc := NewService(gateway, newTestClock(), nil)

	require.NoError(t, svc.Login(context.Background(), "alice"))

	assert.Equal(t, domain.Identity("alice"), svc.Identity())
	_, ok := svc.Snapshot()
	assert.False(t, ok)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Failed to load balance: ledger unreachable", notification.Message)
	assert.Equal(t, domain.ActivityError, notification.Kind)
}

func TestSubmitRequiresLogin(t *testing.T) {
	svc := NewService(newFakeGateway(), newTestClock(), nil)

	err := svc.Submit(context.Background(), domain.NewDeposit(decimal.NewFromInt(10)))
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestSubmitValidationFailureMakesNoNetworkCall(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	err := svc.Submit(context.Background(), domain.NewDeposit(decimal.Zero))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Amount must be positive", validationErr.Reason)

	// no mutation hit the wire, no reconcile refresh ran
	assert.Empty(t, gateway.mutationLog())
	assert.Equal(t, 1, gateway.balanceCalls())

	// local failures are surfaced as a notification only
	head, ok := headEntry(svc)
	require.True(t, ok)
	assert.Equal(t, "Logged in", head.Message)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Amount must be positive", notification.Message)
}

func TestSubmitSendToSelfRejectedLocally(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	err := svc.Submit(context.Background(), domain.NewSend("alice", decimal.NewFromInt(20)))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Cannot send money to yourself", validationErr.Reason)
	assert.Empty(t, gateway.mutationLog())
	assert.Len(t, svc.Activity(), 1)
}

func TestSubmitDepositSuccess(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	err := svc.Submit(context.Background(), domain.NewDeposit(decimal.RequireFromString("50.00")))
	require.NoError(t, err)

	head, ok := headEntry(svc)
	require.True(t, ok)
	assert.Equal(t, "Deposited $50.00 to savings", head.Message)
	assert.Equal(t, domain.ActivitySuccess, head.Kind)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Deposited $50.00 to savings", notification.Message)

	// exactly one reconcile refresh after the mutation (plus the login fetch)
	assert.Equal(t, []string{"deposit alice 50"}, gateway.mutationLog())
	assert.Equal(t, 2, gateway.balanceCalls())
}

func TestSubmitSuccessMessagesPerKind(t *testing.T) {
	amount := decimal.RequireFromString("25.50")
	tests := []struct {
		name             string
		request          domain.OperationRequest
		wantActivity     string
		wantNotification string
	}{
		{
			name:             "withdraw",
			request:          domain.NewWithdraw(amount),
			wantActivity:     "Withdrew $25.50 from savings",
			wantNotification: "Withdrew $25.50 from savings",
		},
		{
			name:             "send",
			request:          domain.NewSend("bob", amount),
			wantActivity:     "Sent $25.50 to bob",
			wantNotification: "Sent $25.50 to bob",
		},
		{
			name:             "transfer savings to investment",
			request:          domain.NewTransfer(domain.SavingsToInvestment, amount),
			wantActivity:     "Transferred $25.50 (Savings → Investment)",
			wantNotification: "Transferred $25.50 (Savings → Investment)",
		},
		{
			name:             "transfer investment to savings",
			request:          domain.NewTransfer(domain.InvestmentToSavings, amount),
			wantActivity:     "Transferred $25.50 (Investment → Savings)",
			wantNotification: "Transferred $25.50 (Investment → Savings)",
		},
		{
			name:             "invest",
			request:          domain.NewInvest("HIGH_RISK", amount),
			wantActivity:     "Invested $25.50 in HIGH_RISK",
			wantNotification: "Invested $25.50 in HIGH_RISK",
		},
		{
			name:             "liquidate investments",
			request:          domain.NewLiquidateInvestments(),
			wantActivity:     "Withdrew all investments",
			wantNotification: "All investments withdrawn successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newFakeGateway()
			svc := NewService(gateway, newTestClock(), nil)
			require.NoError(t, svc.Login(context.Background(), "alice"))

			require.NoError(t, svc.Submit(context.Background(), tt.request))

			head, ok := headEntry(svc)
			require.True(t, ok)
			assert.Equal(t, tt.wantActivity, head.Message)
			assert.Equal(t, domain.ActivitySuccess, head.Kind)

			notification, ok := svc.Notification()
			require.True(t, ok)
			assert.Equal(t, tt.wantNotification, notification.Message)

			assert.Equal(t, 2, gateway.balanceCalls())
		})
	}
}

func TestSubmitRemoteRejectionRecordsErrorEntry(t *testing.T) {
	gateway := newFakeGateway()
	gateway.mutationErr = domain.NewRequestError("Insufficient funds")
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	err := svc.Submit(context.Background(), domain.NewWithdraw(decimal.NewFromInt(10000)))

	var requestErr *domain.RequestError
	require.ErrorAs(t, err, &requestErr)

	head, ok := headEntry(svc)
	require.True(t, ok)
	assert.Equal(t, "Withdrawal failed: Insufficient funds", head.Message)
	assert.Equal(t, domain.ActivityError, head.Kind)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Withdrawal failed: Insufficient funds", notification.Message)

	// a failed mutation never triggers a balance refresh
	assert.Equal(t, 1, gateway.balanceCalls())
}

func TestSubmitFailurePrefixesPerKind(t *testing.T) {
	amount := decimal.NewFromInt(5)
	tests := []struct {
		name    string
		request domain.OperationRequest
		want    string
	}{
		{name: "deposit", request: domain.NewDeposit(amount), want: "Deposit failed: boom"},
		{name: "send", request: domain.NewSend("bob", amount), want: "Send failed: boom"},
		{name: "transfer", request: domain.NewTransfer(domain.InvestmentToSavings, amount), want: "Transfer failed: boom"},
		{name: "invest", request: domain.NewInvest("LOW_RISK", amount), want: "Investment failed: boom"},
		{name: "liquidate", request: domain.NewLiquidateInvestments(), want: "Withdrawal failed: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newFakeGateway()
			gateway.mutationErr = domain.NewRequestError("boom")
			svc := NewService(gateway, newTestClock(), nil)
			require.NoError(t, svc.Login(context.Background(), "alice"))

			require.Error(t, svc.Submit(context.Background(), tt.request))

			head, ok := headEntry(svc)
			require.True(t, ok)
			assert.Equal(t, tt.want, head.Message)
		})
	}
}

func TestActivityHistoryStaysBounded(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	for i := 1; i <= 21; i++ {
		amount := decimal.NewFromInt(int64(i))
		require.NoError(t, svc.Submit(context.Background(), domain.NewDeposit(amount)))
	}

	entries := svc.Activity()
	require.Len(t, entries, domain.ActivityLedgerCapacity)

	// newest first; the "Logged in" entry and the first deposit were evicted
	assert.Equal(t, "Deposited $21.00 to savings", entries[0].Message)
	assert.Equal(t, "Deposited $2.00 to savings", entries[len(entries)-1].Message)
}

func TestLogoutClearsSessionAndHistory(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))
	require.NoError(t, svc.Submit(context.Background(), domain.NewDeposit(decimal.NewFromInt(5))))

	svc.Logout()

	assert.True(t, svc.Identity().IsZero())
	_, ok := svc.Snapshot()
	assert.False(t, ok)
	assert.Empty(t, svc.Activity())

	err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestResponseAfterLogoutIsDiscarded(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))
	balanceCallsBefore := gateway.balanceCalls()

	// the session ends while the deposit is still on the wire
	gateway.beforeMutationReturn = func() { svc.Logout() }

	err := svc.Submit(context.Background(), domain.NewDeposit(decimal.NewFromInt(5)))
	require.NoError(t, err)

	assert.Empty(t, svc.Activity())
	_, ok := svc.Notification()
	assert.False(t, ok)
	assert.Equal(t, balanceCallsBefore, gateway.balanceCalls())
}

func TestResponseForSupersededIdentityIsDiscarded(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	// alice's deposit resolves only after bob has logged in
	gateway.beforeMutationReturn = func() {
		svc.Logout()
		require.NoError(t, svc.Login(context.Background(), "bob"))
	}

	err := svc.Submit(context.Background(), domain.NewDeposit(decimal.NewFromInt(5)))
	require.NoError(t, err)

	assert.Equal(t, domain.Identity("bob"), svc.Identity())

	entries := svc.Activity()
	require.Len(t, entries, 1)
	assert.Equal(t, "Logged in", entries[0].Message)
}

func TestRefreshRecordsInfoEntry(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))

	gateway.setBalance(domain.BalanceSnapshot{Cash: decimal.NewFromInt(250)})
	require.NoError(t, svc.Refresh(context.Background()))

	snapshot, ok := svc.Snapshot()
	require.True(t, ok)
	assert.True(t, snapshot.Cash.Equal(decimal.NewFromInt(250)))

	head, ok := headEntry(svc)
	require.True(t, ok)
	assert.Equal(t, "Balance refreshed", head.Message)
	assert.Equal(t, domain.ActivityInfo, head.Kind)
}

func TestRefreshFailureKeepsOldSnapshot(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewService(gateway, newTestClock(), nil)
	require.NoError(t, svc.Login(context.Background(), "alice"))
	entriesBefore := len(svc.Activity())

	gateway.balanceErr = domain.NewRequestError("timeout")
	require.Error(t, svc.Refresh(context.Background()))

	// snapshot is replaced wholesale or not at all
	snapshot, ok := svc.Snapshot()
	require.True(t, ok)
	assert.True(t, snapshot.Cash.Equal(decimal.NewFromInt(100)))

	assert.Len(t, svc.Activity(), entriesBefore)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Failed to load balance: timeout", notification.Message)
}

func TestIdentitiesFailureNotifies(t *testing.T) {
	gateway := newFakeGateway()
	gateway.usersErr = domain.NewRequestError("service down")
	svc := NewService(gateway, newTestClock(), nil)

	_, err := svc.Identities(context.Background())
	require.Error(t, err)

	notification, ok := svc.Notification()
	require.True(t, ok)
	assert.Equal(t, "Failed to load users: service down", notification.Message)
}

func headEntry(svc *Service) (domain.ActivityEntry, bool) {
	entries := svc.Activity()
	if len(entries) == 0 {
		return domain.ActivityEntry{}, false
	}
	return entries[0], true
}

// testClock advances by a second on every read so recorded entries get
// distinct timestamps.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeGateway struct {
	mu                   sync.Mutex
	users                []domain.Identity
	usersErr             error
	balance              domain.BalanceSnapshot
	balanceErr           error
	mutationErr          error
	balanceCallCount     int
	mutations            []string
	beforeMutationReturn func()
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		users:   []domain.Identity{"alice", "bob"},
		balance: domain.BalanceSnapshot{Cash: decimal.NewFromInt(100)},
	}
}

func (g *fakeGateway) setBalance(snapshot domain.BalanceSnapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balance = snapshot
}

func (g *fakeGateway) balanceCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balanceCallCount
}

func (g *fakeGateway) mutationLog() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.mutations))
	copy(out, g.mutations)
	return out
}

func (g *fakeGateway) ListUsers(context.Context) ([]domain.Identity, error) {
	if g.usersErr != nil {
		return nil, g.usersErr
	}
	return g.users, nil
}

func (g *fakeGateway) GetBalance(context.Context, domain.Identity) (domain.BalanceSnapshot, error) {
	g.mu.Lock()
	g.balanceCallCount++
	balance, err := g.balance, g.balanceErr
	g.mu.Unlock()

	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	return balance, nil
}

func (g *fakeGateway) mutate(record string) error {
	g.mu.Lock()
	err := g.mutationErr
	if err == nil {
		g.mutations = append(g.mutations, record)
	}
	hook := g.beforeMutationReturn
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
	return err
}

func (g *fakeGateway) Deposit(_ context.Context, user domain.Identity, amount decimal.Decimal) error {
	return g.mutate(fmt.Sprintf("deposit %s %s", user, amount))
}

func (g *fakeGateway) Withdraw(_ context.Context, user domain.Identity, amount decimal.Decimal) error {
	return g.mutate(fmt.Sprintf("withdraw %s %s", user, amount))
}

func (g *fakeGateway) Send(_ context.Context, from, to domain.Identity, amount decimal.Decimal) error {
	return g.mutate(fmt.Sprintf("send %s %s %s", from, to, amount))
}

func (g *fakeGateway) Transfer(_ context.Context, user domain.Identity, direction domain.TransferDirection, amount decimal.Decimal) error {
	return g.mutate(fmt.Sprintf("transfer %s %s %s", user, direction, amount))
}

func (g *fakeGateway) Invest(_ context.Context, user domain.Identity, fund string, amount decimal.Decimal) error {
	return g.mutate(fmt.Sprintf("invest %s %s %s", user, fund, amount))
}

func (g *fakeGateway) WithdrawInvestments(_ context.Context, user domain.Identity) error {
	return g.mutate(fmt.Sprintf("liquidate %s", user))
}

func (g *fakeGateway) Health(context.Context) (string, error) {
	return "ok", nil
}
