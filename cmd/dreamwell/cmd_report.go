package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/service"
)

// historyCmd lists stored assessments, newest first
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored assessments with their scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(commandContext(cmd))
		if err != nil {
			return err
		}
		defer sess.Close()

		history := service.ScoredHistory(sess.store.List())
		return render(cmd.OutOrStdout(), outputFormat, history, func(w io.Writer, v any) error {
			return writeHistoryText(w, v.([]service.ScoredAssessment))
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show averages across all stored assessments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(commandContext(cmd))
		if err != nil {
			return err
		}
		defer sess.Close()

		return render(cmd.OutOrStdout(), outputFormat, service.CalculateStats(sess.store.List()), writeStatsText)
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyse your history and suggest improvements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(commandContext(cmd))
		if err != nil {
			return err
		}
		defer sess.Close()

		return render(cmd.OutOrStdout(), outputFormat, service.BuildInsights(sess.store.List()), writeInsightsText)
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := questionnaire.Load()
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), outputFormat, qs, func(w io.Writer, v any) error {
			for i, q := range v.([]questionnaire.Question) {
				fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, q.Prompt, q.ID)
				if hint := questionHint(q); hint != "" {
					fmt.Fprintf(w, "    %s\n", hint)
				}
			}
			return nil
		})
	},
}

func writeHistoryText(w io.Writer, history []service.ScoredAssessment) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No assessments recorded yet. Run `dreamwell assess` to add one.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSCORE\tLABEL\tMOOD\tQUALITY\tDURATION\tSCHEDULE\tLATENCY\tAWAKENINGS")
	for _, h := range history {
		fmt.Fprintf(tw, "%s\t%d%%\t%s\t%s\t%d/10\t%gh\t%s-%s\t%dmin\t%d\n",
			h.Date.Local().Format("2006-01-02 15:04"), h.Score, h.Label, h.MoodEmoji,
			h.SleepQuality, h.SleepDuration, h.Bedtime, h.WakeTime, h.SleepLatency, h.NightAwakenings)
	}
	return tw.Flush()
}

func writeScoredText(w io.Writer, v any) error {
	s := v.(service.ScoredAssessment)
	_, err := fmt.Fprintf(w, "Saved assessment %s\nSleep score: %d%% (%s) %s\n", s.ID, s.Score, s.Label, s.MoodEmoji)
	return err
}

func writeStatsText(w io.Writer, v any) error {
	s := v.(service.StatsReport)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Assessments\t%d\n", s.Count)
	fmt.Fprintf(tw, "Average quality\t%g/10\n", s.AvgQuality)
	fmt.Fprintf(tw, "Average duration\t%gh\n", s.AvgDuration)
	fmt.Fprintf(tw, "Average latency\t%dmin\n", s.AvgLatency)
	fmt.Fprintf(tw, "Caffeine\t%g cups\n", s.Lifestyle.AvgCaffeine)
	fmt.Fprintf(tw, "Stress\t%g/10\n", s.Lifestyle.AvgStress)
	fmt.Fprintf(tw, "Exercise\t%gh\n", s.Lifestyle.AvgExercise)
	return tw.Flush()
}

func writeInsightsText(w io.Writer, v any) error {
	in := v.(service.Insights)
	if !in.Ready {
		_, err := fmt.Fprintf(w, "Insights need at least %d assessments (you have %d).\n", in.Required, in.Count)
		return err
	}
	fmt.Fprintf(w, "Quality:  %s\n", in.QualityInsight)
	fmt.Fprintf(w, "Duration: %s\n", in.DurationInsight)
	fmt.Fprintln(w, "Recommendations:")
	for i, r := range in.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}
	return nil
}
