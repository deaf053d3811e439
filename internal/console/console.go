// Package console implements the interactive session loop: startup health
// probe, banner, then a read/parse/dispatch/render cycle until quit,
// interrupt or end of input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tradeconsole/internal/dispatcher"
	"github.com/vadiminshakov/tradeconsole/internal/domain"
	"github.com/vadiminshakov/tradeconsole/internal/render"
	"github.com/vadiminshakov/tradeconsole/internal/session"
	"github.com/vadiminshakov/tradeconsole/internal/storage/transcript"
	"github.com/vadiminshakov/tradeconsole/pkg/retrier"
)

const farewell = "goodbye!"

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

type prober interface {
	Health(ctx context.Context, timeout time.Duration) error
}

type commandDispatcher interface {
	Dispatch(ctx context.Context, cmd domain.Command, sess *session.Session) domain.Result
}

type transcriptWriter interface {
	Save(entry transcript.Entry) error
}

// Console owns one interactive session. One command is parsed, dispatched
// and rendered fully before the next line is read; the only goroutine is
// the stdin reader feeding the loop.
type Console struct {
	api           prober
	dispatcher    commandDispatcher
	sess          *session.Session
	transcript    transcriptWriter
	probe         *retrier.Retrier
	healthTimeout time.Duration
	logger        *zap.Logger
	in            io.Reader
	out           io.Writer
}

// New wires a console together. The transcript writer may be nil to disable
// history recording.
func New(
	api prober,
	disp commandDispatcher,
	sess *session.Session,
	transcriptStore transcriptWriter,
	probe *retrier.Retrier,
	healthTimeout time.Duration,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		api:           api,
		dispatcher:    disp,
		sess:          sess,
		transcript:    transcriptStore,
		probe:         probe,
		healthTimeout: healthTimeout,
		logger:        logger,
		in:            in,
		out:           out,
	}
}

// Run probes the API and then processes commands until a quit command, end
// of input or context cancellation. A probe failure is returned to the
// caller; per-command errors never end the loop.
func (c *Console) Run(ctx context.Context) error {
	err := c.probe.Do(ctx, func(ctx context.Context) error {
		return c.api.Health(ctx, c.healthTimeout)
	})
	if err != nil {
		return errors.Wrapf(err, "trading API at %s is unreachable", c.sess.BaseURL())
	}

	fmt.Fprintln(c.out, bannerStyle.Render("trading console"))
	fmt.Fprintf(c.out, "connected to %s\n\n", c.sess.BaseURL())
	fmt.Fprintln(c.out, dispatcher.HelpText)
	fmt.Fprintln(c.out)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Warn("input read failed", zap.Error(err))
		}
	}()

	for {
		fmt.Fprint(c.out, "> ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, farewell)
			return nil

		case line, open := <-lines:
			if !open {
				fmt.Fprintln(c.out, farewell)
				return nil
			}

			cmd, ok := domain.Parse(line)
			if !ok {
				continue
			}
			if cmd.Kind == domain.KindQuit {
				fmt.Fprintln(c.out, farewell)
				return nil
			}

			result := c.dispatcher.Dispatch(ctx, cmd, c.sess)
			for _, displayLine := range render.Render(result) {
				fmt.Fprintln(c.out, displayLine)
			}
			c.record(line, result)
		}
	}
}

// record appends the command and its outcome to the transcript,
// best-effort.
func (c *Console) record(input string, result domain.Result) {
	if c.transcript == nil {
		return
	}
	entry := transcript.Entry{
		Input:       input,
		OK:          result.OK,
		Message:     result.Message,
		ErrorDetail: result.ErrorDetail,
	}
	if err := c.transcript.Save(entry); err != nil {
		c.logger.Warn("failed to record transcript entry", zap.Error(err))
	}
}
