// Package app drives interactive quiz and exam runs on the terminal. It is
// thin presentation glue over the session controller; all gating, grading,
// and persistence decisions live below it.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nebrasmahmood/dutch-learning-app/internal/catalog"
	"github.com/nebrasmahmood/dutch-learning-app/internal/i18n"
	"github.com/nebrasmahmood/dutch-learning-app/internal/progress"
	"github.com/nebrasmahmood/dutch-learning-app/internal/session"
)

// Options wires the app's collaborators.
type Options struct {
	Catalog    *catalog.Catalog
	Controller *session.Controller
	Store      *progress.Store
	Translator *i18n.Translator

	In  io.Reader
	Out io.Writer
}

// App runs interactive sessions.
type App struct {
	opts Options
	in   *bufio.Scanner
}

// New creates an App from options.
func New(opts Options) *App {
	return &App{
		opts: opts,
		in:   bufio.NewScanner(opts.In),
	}
}

// RunQuiz drives a section quiz to completion and prints the summary.
func (a *App) RunQuiz(ctx context.Context, sectionID string) error {
	tr := a.opts.Translator
	run, err := a.opts.Controller.StartQuiz(ctx, sectionID)
	if err != nil {
		return err
	}

	sec, err := a.opts.Catalog.Section(sectionID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.opts.Out, styleTitle.Render(sec.Title))
	if run.Resumed {
		fmt.Fprintln(a.opts.Out, styleDim.Render(tr.T("run.resumed", run.Index+1)))
	}

	for run.Phase != session.PhaseFinished {
		q := run.Current()
		fmt.Fprintln(a.opts.Out)
		fmt.Fprintln(a.opts.Out, styleDim.Render(tr.T("quiz.progress", run.Index+1, run.Len())))
		fmt.Fprintln(a.opts.Out, stylePrompt.Render(tr.T("quiz.prompt", q.Prompt)))
		for i, opt := range q.Options {
			fmt.Fprintf(a.opts.Out, "  %d) %s\n", i+1, opt)
		}

		answer, ok := a.readChoice(q.Options)
		if !ok {
			return io.EOF
		}

		result, err := a.opts.Controller.Submit(ctx, run, answer)
		if err != nil {
			return err
		}
		if result == nil {
			continue
		}
		a.printFeedback(result)

		summary, err := a.opts.Controller.Advance(ctx, run)
		if err != nil {
			return err
		}
		if summary != nil {
			a.printQuizSummary(summary)
			return nil
		}
	}
	return nil
}

// RunExam drives the final exam to completion and prints the summary.
func (a *App) RunExam(ctx context.Context) error {
	tr := a.opts.Translator
	run := a.opts.Controller.StartExam()
	if run.Len() == 0 {
		return fmt.Errorf("no vocabulary available for the exam")
	}

	fmt.Fprintln(a.opts.Out, styleTitle.Render("Final Exam"))

	for run.Phase != session.PhaseFinished {
		q := run.CurrentExam()
		fmt.Fprintln(a.opts.Out)
		fmt.Fprintln(a.opts.Out, styleDim.Render(tr.T("quiz.progress", run.Index+1, run.Len())))
		fmt.Fprintln(a.opts.Out, stylePrompt.Render(tr.T("exam.prompt", q.Prompt)))

		answer, ok := a.readLine("> ")
		if !ok {
			return io.EOF
		}

		result, err := a.opts.Controller.Submit(ctx, run, answer)
		if err != nil {
			return err
		}
		if result == nil {
			continue
		}
		a.printFeedback(result)

		summary, err := a.opts.Controller.Advance(ctx, run)
		if err != nil {
			return err
		}
		if summary != nil {
			a.printExamSummary(summary)
			return nil
		}
	}
	return nil
}

// readChoice reads a numbered option or a literal answer.
func (a *App) readChoice(options []string) (string, bool) {
	for {
		line, ok := a.readLine("> ")
		if !ok {
			return "", false
		}
		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(options) {
				return options[n-1], true
			}
			fmt.Fprintln(a.opts.Out, styleDim.Render(fmt.Sprintf("pick 1-%d", len(options))))
			continue
		}
		return line, true
	}
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.opts.Out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) printFeedback(result *session.AnswerResult) {
	tr := a.opts.Translator
	if result.Correct {
		fmt.Fprintln(a.opts.Out, styleCorrect.Render(tr.T("answer.correct", result.XPAwarded)))
		return
	}
	fmt.Fprintln(a.opts.Out, styleWrong.Render(tr.T("answer.incorrect", result.CorrectAnswer)))
}

func (a *App) printQuizSummary(s *session.Summary) {
	tr := a.opts.Translator
	fmt.Fprintln(a.opts.Out)
	if s.Passed {
		fmt.Fprintln(a.opts.Out, styleXP.Render(tr.T("summary.passed", s.CorrectCount, s.QuestionCount, s.XPGained)))
		return
	}
	threshold := session.MinimumCorrectToPass
	if s.QuestionCount < threshold {
		threshold = s.QuestionCount
	}
	fmt.Fprintln(a.opts.Out, styleWrong.Render(tr.T("summary.failed", s.CorrectCount, s.QuestionCount, threshold)))
}

func (a *App) printExamSummary(s *session.Summary) {
	tr := a.opts.Translator
	fmt.Fprintln(a.opts.Out)
	fmt.Fprintln(a.opts.Out, styleXP.Render(tr.T("summary.exam", s.CorrectCount, s.QuestionCount, s.Score*100)))
	if s.Passed {
		fmt.Fprintln(a.opts.Out, styleCorrect.Render(tr.T("summary.exampassed")))
	}
}
