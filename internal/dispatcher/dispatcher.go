// Package dispatcher routes parsed commands to the trading-automation API
// and normalizes every outcome into a domain.Result.
package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tradeconsole/internal/domain"
	"github.com/vadiminshakov/tradeconsole/internal/session"
)

// transport is the slice of the API client the dispatcher needs.
type transport interface {
	Post(ctx context.Context, path string, header http.Header, body any, timeout time.Duration) (json.RawMessage, error)
}

// Timeouts bound each kind of remote call. Prompt calls run long because the
// remote side may invoke multi-step automated reasoning.
type Timeouts struct {
	Prompt   time.Duration
	Leverage time.Duration
}

// Dispatcher executes commands against the API using the session for auth.
type Dispatcher struct {
	api      transport
	timeouts Timeouts
	logger   *zap.Logger
}

// New creates a dispatcher over the given transport.
func New(api transport, timeouts Timeouts, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{api: api, timeouts: timeouts, logger: logger}
}

// HelpText is the static command summary returned for the help command and
// printed once at startup.
const HelpText = `available commands:
  token <your_token>              set authentication token
  leverage <asset_id> <leverage>  direct leverage update (0=BTC, 1=ETH)
  help                            show this message
  quit / exit / q                 leave the console
  <any other text>                sent as a trading prompt to the automation engine

example prompts:
  Set BTC leverage to 25x
  Buy 0.1 ETH at market price
  Sell 0.05 BTC at 95000`

// Dispatch executes one command and produces exactly one Result. Quit never
// reaches this path, the session loop treats it as a termination signal.
// Transport failures are converted into failed Results here and never
// propagate out of dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.Command, sess *session.Session) domain.Result {
	switch cmd.Kind {
	case domain.KindSetToken:
		sess.SetToken(cmd.Token)
		return domain.Result{OK: true, Message: "token set successfully"}

	case domain.KindHelp:
		return domain.Result{OK: true, Message: HelpText}

	case domain.KindLeverage:
		body := map[string]int{"assetId": cmd.AssetID, "leverage": cmd.Leverage}
		return d.post(ctx, sess, "/api/update_leverage", body, d.timeouts.Leverage)

	case domain.KindPrompt:
		body := map[string]string{"prompt": cmd.Prompt}
		return d.post(ctx, sess, "/api/prompt", body, d.timeouts.Prompt)

	case domain.KindUnrecognized:
		return domain.Result{OK: false, ErrorDetail: cmd.Reason}

	default:
		return domain.Result{OK: false, ErrorDetail: fmt.Sprintf("unsupported command kind %d", cmd.Kind)}
	}
}

// post issues an authenticated POST. The auth check happens locally before
// any network call is made.
func (d *Dispatcher) post(ctx context.Context, sess *session.Session, path string, body any, timeout time.Duration) domain.Result {
	authValue, err := sess.AuthHeaderValue()
	if err != nil {
		return domain.Result{OK: false, ErrorDetail: err.Error()}
	}

	header := http.Header{}
	header.Set("Authorization", authValue)

	raw, err := d.api.Post(ctx, path, header, body, timeout)
	if err != nil {
		d.logger.Warn("api call failed", zap.String("path", path), zap.Error(err))
		return domain.Result{OK: false, ErrorDetail: err.Error()}
	}

	return domain.DecodeResult(raw)
}
