// Package resthttp is the JSON/HTTP gateway to the remote ledger service.
// Every call is a single attempt with no retry; failures carry the ledger's
// error-envelope message when one is present.
package resthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/greendaybank/greenday-cli/internal/ports"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ ports.LedgerGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type usersResponse struct {
	Users []domain.Identity `json:"users"`
}

type balanceResponse struct {
	Cash              decimal.Decimal            `json:"cash"`
	SavingsBalance    decimal.Decimal            `json:"savingsBalance"`
	InvestmentBalance decimal.Decimal            `json:"investmentBalance"`
	Funds             map[string]decimal.Decimal `json:"funds"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type userRequest struct {
	User domain.Identity `json:"user"`
}

type amountRequest struct {
	User   domain.Identity `json:"user"`
	Amount json.Number     `json:"amount"`
}

type sendRequest struct {
	From   domain.Identity `json:"from"`
	To     domain.Identity `json:"to"`
	Amount json.Number     `json:"amount"`
}

type transferRequest struct {
	User      domain.Identity `json:"user"`
	Direction string          `json:"direction"`
	Amount    json.Number     `json:"amount"`
}

type investRequest struct {
	User   domain.Identity `json:"user"`
	Fund   string          `json:"fund"`
	Amount json.Number     `json:"amount"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.Identity, error) {
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) GetBalance(ctx context.Context, user domain.Identity) (domain.BalanceSnapshot, error) {
	var out balanceResponse
	if err := c.do(ctx, http.MethodPost, "/api/balance", userRequest{User: user}, &out); err != nil {
		return domain.BalanceSnapshot{}, err
	}

	return domain.BalanceSnapshot{
		Cash:       out.Cash,
		Savings:    out.SavingsBalance,
		Investment: out.InvestmentBalance,
		Funds:      out.Funds,
	}, nil
}

func (c *Client) Deposit(ctx context.Context, user domain.Identity, amount decimal.Decimal) error {
	return c.do(ctx, http.MethodPost, "/api/deposit", amountRequest{User: user, Amount: wireAmount(amount)}, nil)
}

func (c *Client) Withdraw(ctx context.Context, user domain.Identity, amount decimal.Decimal) error {
	return c.do(ctx, http.MethodPost, "/api/withdraw", amountRequest{User: user, Amount: wireAmount(amount)}, nil)
}

func (c *Client) Send(ctx context.Context, from, to domain.Identity, amount decimal.Decimal) error {
	return c.do(ctx, http.MethodPost, "/api/send", sendRequest{From: from, To: to, Amount: wireAmount(amount)}, nil)
}

func (c *Client) Transfer(ctx context.Context, user domain.Identity, direction domain.TransferDirection, amount decimal.Decimal) error {
	body := transferRequest{User: user, Direction: string(direction), Amount: wireAmount(amount)}
	return c.do(ctx, http.MethodPost, "/api/transfer", body, nil)
}

func (c *Client) Invest(ctx context.Context, user domain.Identity, fund string, amount decimal.Decimal) error {
	body := investRequest{User: user, Fund: fund, Amount: wireAmount(amount)}
	return c.do(ctx, http.MethodPost, "/api/invest", body, nil)
}

func (c *Client) WithdrawInvestments(ctx context.Context, user domain.Identity) error {
	return c.do(ctx, http.MethodPost, "/api/withdraw-investments", userRequest{User: user}, nil)
}

func (c *Client) Health(ctx context.Context) (string, error) {
	var out healthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// wireAmount keeps the decimal exact on the wire as a raw JSON number.
func wireAmount(amount decimal.Decimal) json.Number {
	return json.Number(amount.String())
}

// do performs one request. Non-2xx responses and undecodable success bodies
// both come back as *domain.RequestError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return domain.NewRequestError(err.Error())
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.NewRequestError(err.Error())
	}
	request.Header.Set("Content-Type", "application/json")

	c.logger.Debug("ledger request", zap.String("method", method), zap.String("path", path))

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("ledger request error", zap.String("path", path), zap.Error(err))
		return domain.NewRequestError(err.Error())
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return domain.NewRequestError(err.Error())
	}

	c.logger.Debug("ledger response", zap.String("path", path), zap.Int("status", response.StatusCode))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return domain.NewRequestError(envelopeMessage(payload))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return domain.NewRequestError("")
	}

	return nil
}

// envelopeMessage extracts error.message from the ledger's error envelope,
// falling back to the generic message when absent or unparsable.
func envelopeMessage(payload []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return ""
	}
	return envelope.Error.Message
}
