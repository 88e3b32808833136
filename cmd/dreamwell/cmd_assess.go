package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/service"
)

var (
	answerFlags []string
	noPrompt    bool
)

// assessCmd records one questionnaire completion
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Answer the sleep questionnaire and store the result",
	Long: `Asks each question in order. Answers given with --answer are not asked
again. Press enter to skip a question and keep its default.`,
	Args: cobra.NoArgs,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringArrayVarP(&answerFlags, "answer", "a", nil, "pre-filled answer as id=value (repeatable)")
	assessCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "do not ask for answers missing from --answer")
}

func runAssess(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	questions, err := questionnaire.Load()
	if err != nil {
		return err
	}

	answers, err := parseAnswerFlags(answerFlags, questions)
	if err != nil {
		return err
	}
	if !noPrompt {
		if err := promptAnswers(cmd.InOrStdin(), cmd.ErrOrStderr(), questions, answers); err != nil {
			return err
		}
	}

	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	a, err := service.SubmitAssessment(ctx, sess.store, answers, service.SubmitOptions{Strict: sess.cfg.StrictValidation})
	if err != nil {
		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s\n", f.Field, f.Message)
			}
		}
		return err
	}
	sess.logger.Infof("stored assessment %s", a.ID)

	return render(cmd.OutOrStdout(), outputFormat, service.Scored(*a), writeScoredText)
}

// parseAnswerFlags turns id=value pairs into a raw answer map. Unknown ids
// are rejected so typos do not silently fall back to defaults.
func parseAnswerFlags(flags []string, questions []questionnaire.Question) (map[string]any, error) {
	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	answers := make(map[string]any, len(flags))
	for _, f := range flags {
		id, value, ok := strings.Cut(f, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --answer %q, expected id=value", f)
		}
		if !known[id] {
			return nil, fmt.Errorf("unknown question id %q", id)
		}
		answers[id] = strings.TrimSpace(value)
	}
	return answers, nil
}

func promptAnswers(in io.Reader, out io.Writer, questions []questionnaire.Question, answers map[string]any) error {
	scanner := bufio.NewScanner(in)
	for i, q := range questions {
		if _, done := answers[q.ID]; done {
			continue
		}

		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(questions), q.Prompt)
		if hint := questionHint(q); hint != "" {
			fmt.Fprintf(out, "      %s\n", hint)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		}
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			answers[q.ID] = line
		}
	}
	return nil
}

func questionHint(q questionnaire.Question) string {
	switch q.Type {
	case questionnaire.TypeSelect:
		parts := make([]string, len(q.Options))
		for i, o := range q.Options {
			parts[i] = o.Value + " = " + o.Label
		}
		return strings.Join(parts, ", ")
	case questionnaire.TypeScale:
		if q.Min != nil && q.Max != nil && len(q.ScaleLabels) == 2 {
			return fmt.Sprintf("%g (%s) to %g (%s)", *q.Min, q.ScaleLabels[0], *q.Max, q.ScaleLabels[1])
		}
	case questionnaire.TypeNumber:
		if q.Min != nil && q.Max != nil {
			return fmt.Sprintf("%g to %g", *q.Min, *q.Max)
		}
	case questionnaire.TypeTime:
		return "HH:MM"
	}
	return ""
}
