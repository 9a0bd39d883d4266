package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/greendaybank/greenday-cli/internal/ports"
	"go.uber.org/zap"
)

// Service is the transaction orchestrator: it owns the session (current
// identity + last-known balance snapshot), the bounded activity history and
// the notification slot, and is the single writer for all three.
//
// Operations issued before a logout or re-login may still be in flight when
// the session changes; the generation counter makes their late responses
// no-ops instead of letting them corrupt the fresh session.
type Service struct {
	gateway       ports.LedgerGateway
	clock         ports.Clock
	logger        *zap.Logger
	notifications *NotificationCenter

	mu         sync.Mutex
	identity   domain.Identity
	snapshot   *domain.BalanceSnapshot
	generation uint64
	activity   *domain.ActivityLedger
}

func NewService(gateway ports.LedgerGateway, clock ports.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		gateway:       gateway,
		clock:         clock,
		logger:        logger,
		notifications: NewNotificationCenter(DefaultNotificationTTL),
		activity:      domain.NewActivityLedger(),
	}
}

// Identities lists the selectable users. A failure is surfaced as a
// notification as well as returned, since it can happen before any session
// exists.
func (s *Service) Identities(ctx context.Context) ([]domain.Identity, error) {
	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		s.notifications.Notify("Failed to load users: "+requestMessage(err), domain.ActivityError, s.clock.Now())
		return nil, err
	}

	return users, nil
}

// Login starts a fresh session for identity and triggers a balance fetch.
// A failed fetch leaves the session logged in with no snapshot; the failure
// is surfaced as a notification only.
func (s *Service) Login(ctx context.Context, identity domain.Identity) error {
	if identity.IsZero() {
		return errors.New("identity is required")
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.identity = identity
	s.snapshot = nil
	s.activity.Clear()
	s.activity.Record("Logged in", domain.ActivityInfo, s.clock.Now())
	s.mu.Unlock()

	s.logger.Debug("session started", zap.String("user", identity.String()))
	_ = s.refreshSnapshot(ctx, identity, gen, false)

	return nil
}

// Logout ends the session: identity, snapshot and activity history are
// cleared immediately. In-flight requests are not aborted; their responses
// fail the generation check and are discarded. The current notification is
// left to expire on its own.
func (s *Service) Logout() {
	s.mu.Lock()
	s.generation++
	s.identity = ""
	s.snapshot = nil
	s.activity.Clear()
	s.mu.Unlock()

	s.logger.Debug("session ended")
}

// Refresh re-fetches the balance at the user's request and records the
// outcome in the activity history.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	identity, gen := s.identity, s.generation
	s.mu.Unlock()

	if identity.IsZero() {
		return domain.ErrNotLoggedIn
	}

	return s.refreshSnapshot(ctx, identity, gen, true)
}

// Submit runs one operation through validate → submit → reconcile.
// Validation failures never reach the wire and never enter the activity
// history. Reconciliation runs exactly once, after the gateway call settles,
// and only if the session that issued the request is still current.
func (s *Service) Submit(ctx context.Context, req domain.OperationRequest) error {
	s.mu.Lock()
	identity, gen := s.identity, s.generation
	s.mu.Unlock()

	if identity.IsZero() {
		return domain.ErrNotLoggedIn
	}

	if err := req.Validate(identity); err != nil {
		s.notifications.Notify(err.Error(), domain.ActivityError, s.clock.Now())
		return err
	}

	s.logger.Debug("submitting operation", zap.String("kind", string(req.Kind)), zap.String("user", identity.String()))
	err := s.dispatch(ctx, identity, req)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding response for superseded session", zap.String("kind", string(req.Kind)))
		return nil
	}

	now := s.clock.Now()
	if err != nil {
		message := failureMessage(req.Kind, requestMessage(err))
		s.activity.Record(message, domain.ActivityError, now)
		s.notifications.Notify(message, domain.ActivityError, now)
		s.mu.Unlock()
		return err
	}

	s.activity.Record(successActivity(req), domain.ActivitySuccess, now)
	s.notifications.Notify(successNotification(req), domain.ActivitySuccess, now)
	s.mu.Unlock()

	// The post-mutation fetch is reconciliation, not a user action, so it
	// does not add a "Balance refreshed" entry.
	_ = s.refreshSnapshot(ctx, identity, gen, false)

	return nil
}

// Identity returns the logged-in identity, empty when logged out.
func (s *Service) Identity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Snapshot returns the last-known balance, if one has been fetched.
func (s *Service) Snapshot() (domain.BalanceSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return domain.BalanceSnapshot{}, false
	}
	return *s.snapshot, true
}

// Activity returns the history newest-first, at most
// domain.ActivityLedgerCapacity entries.
func (s *Service) Activity() []domain.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity.Entries()
}

// Notification returns the currently visible notification, if any.
func (s *Service) Notification() (Notification, bool) {
	return s.notifications.Current(s.clock.Now())
}

func (s *Service) refreshSnapshot(ctx context.Context, identity domain.Identity, gen uint64, userInitiated bool) error {
	snapshot, err := s.gateway.GetBalance(ctx, identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding balance response for superseded session")
		return nil
	}

	now := s.clock.Now()
	if err != nil {
		s.notifications.Notify("Failed to load balance: "+requestMessage(err), domain.ActivityError, now)
		return err
	}

	s.snapshot = &snapshot
	if userInitiated {
		s.activity.Record("Balance refreshed", domain.ActivityInfo, now)
	}

	return nil
}

// dispatch maps one request kind to exactly one gateway call. Atomicity of
// the underlying movement of funds belongs to the remote ledger.
func (s *Service) dispatch(ctx context.Context, identity domain.Identity, req domain.OperationRequest) error {
	switch req.Kind {
	case domain.OperationDeposit:
		return s.gateway.Deposit(ctx, identity, req.Amount)
	case domain.OperationWithdraw:
		return s.gateway.Withdraw(ctx, identity, req.Amount)
	case domain.OperationSend:
		return s.gateway.Send(ctx, identity, req.Recipient, req.Amount)
	case domain.OperationTransfer:
		return s.gateway.Transfer(ctx, identity, req.Direction, req.Amount)
	case domain.OperationInvest:
		return s.gateway.Invest(ctx, identity, req.Fund, req.Amount)
	case domain.OperationLiquidateInvestments:
		return s.gateway.WithdrawInvestments(ctx, identity)
	default:
		return fmt.Errorf("unsupported operation kind %q", req.Kind)
	}
}

func successActivity(req domain.OperationRequest) string {
	amount := domain.FormatAmount(req.Amount)
	switch req.Kind {
	case domain.OperationDeposit:
		return fmt.Sprintf("Deposited %s to savings", amount)
	case domain.OperationWithdraw:
		return fmt.Sprintf("Withdrew %s from savings", amount)
	case domain.OperationSend:
		return fmt.Sprintf("Sent %s to %s", amount, req.Recipient)
	case domain.OperationTransfer:
		return fmt.Sprintf("Transferred %s (%s)", amount, req.Direction.Label())
	case domain.OperationInvest:
		return fmt.Sprintf("Invested %s in %s", amount, req.Fund)
	case domain.OperationLiquidateInvestments:
		return "Withdrew all investments"
	default:
		return string(req.Kind)
	}
}

func successNotification(req domain.OperationRequest) string {
	if req.Kind == domain.OperationLiquidateInvestments {
		return "All investments withdrawn successfully"
	}
	return successActivity(req)
}

// SuccessMessage is the user-facing confirmation for a completed request.
// Callers that outlive the notification slot (a follow-up refresh may replace
// it) can compose the confirmation themselves.
func SuccessMessage(req domain.OperationRequest) string {
	return successNotification(req)
}

func failureMessage(kind domain.OperationKind, reason string) string {
	switch kind {
	case domain.OperationDeposit:
		return "Deposit failed: " + reason
	case domain.OperationWithdraw, domain.OperationLiquidateInvestments:
		return "Withdrawal failed: " + reason
	case domain.OperationSend:
		return "Send failed: " + reason
	case domain.OperationTransfer:
		return "Transfer failed: " + reason
	case domain.OperationInvest:
		return "Investment failed: " + reason
	default:
		return reason
	}
}

func requestMessage(err error) string {
	var requestErr *domain.RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Message
	}
	return err.Error()
}
