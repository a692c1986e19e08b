// Package lineui runs a quiz over plain line-oriented input and output.
package lineui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/kanaquiz/internal/model"
	"github.com/verte-zerg/kanaquiz/internal/quiz"
	"github.com/verte-zerg/kanaquiz/internal/stats"
)

// PoolBuilder produces the question pool for a session.
type PoolBuilder interface {
	BuildPool(cfg model.Config) ([]model.Question, error)
}

// Runner drives a controller from r, writing prompts and results to w.
// Every result advances as soon as it is printed.
type Runner struct {
	cfg     model.Config
	ctrl    *quiz.Controller
	builder PoolBuilder
	in      *bufio.Scanner
	out     io.Writer
}

// NewRunner constructs a line-mode runner.
func NewRunner(cfg model.Config, ctrl *quiz.Controller, builder PoolBuilder, r io.Reader, w io.Writer) *Runner {
	return &Runner{
		cfg:     cfg,
		ctrl:    ctrl,
		builder: builder,
		in:      bufio.NewScanner(r),
		out:     w,
	}
}

// Run plays sessions until the input ends, the user declines a restart or ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	for {
		pool, err := r.builder.BuildPool(r.cfg)
		if err != nil {
			return fmt.Errorf("failed to build questions: %w", err)
		}
		if err := r.ctrl.Start(pool); err != nil {
			return fmt.Errorf("failed to start quiz: %w", err)
		}
		done, err := r.play(ctx)
		if err != nil || !done {
			return err
		}
		if err := r.report(); err != nil {
			return err
		}
		again, err := r.askRestart()
		if err != nil || !again {
			return err
		}
	}
}

// play returns false when the input ended before the session completed.
func (r *Runner) play(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		status := r.ctrl.Status()
		if status.State == quiz.StateComplete {
			return true, nil
		}
		if status.Current == nil {
			return false, errors.New("quiz has no current question")
		}
		q := *status.Current
		if err := r.printf("[%d left] %s > ", status.Remaining, q.Character); err != nil {
			return false, err
		}
		line, ok := r.readLine()
		if !ok {
			return false, r.in.Err()
		}
		outcome, err := r.ctrl.Submit(line)
		if errors.Is(err, quiz.ErrBlankAnswer) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to submit answer: %w", err)
		}
		if outcome == quiz.OutcomeCorrect {
			err = r.printf("  correct\n")
		} else {
			err = r.printf("  incorrect, answer: %s\n", q.Answer)
		}
		if err != nil {
			return false, err
		}
		if err := r.ctrl.Advance(); err != nil {
			return false, fmt.Errorf("failed to advance: %w", err)
		}
	}
}

func (r *Runner) report() error {
	snap := r.ctrl.Status().Stats
	if err := r.printf("\nQuiz complete!\n"); err != nil {
		return err
	}
	if err := stats.RenderSummary(r.out, snap); err != nil {
		return err
	}
	if err := r.printf("\n"); err != nil {
		return err
	}
	return stats.RenderMistakeTable(r.out, snap)
}

func (r *Runner) askRestart() (bool, error) {
	for {
		if err := r.printf("\n[r]estart or [q]uit? "); err != nil {
			return false, err
		}
		line, ok := r.readLine()
		if !ok {
			return false, r.in.Err()
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "r", "restart":
			return true, nil
		case "q", "quit", "":
			return false, nil
		}
	}
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}
