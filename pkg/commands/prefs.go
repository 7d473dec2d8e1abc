package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/timeutil"
)

func addPrefs(topLevel *cobra.Command) {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change week preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			start := "today"
			if svc.Prefs.StartDay != schedule.StartDayToday {
				start = timeutil.DayName(svc.Prefs.StartDay)
			}
			fmt.Printf("start day:   %s\nweek format: %s\n", start, svc.Prefs.WeekFormat)
			return nil
		},
	}

	addPrefsStartDay(prefsCmd)
	addPrefsFormat(prefsCmd)
	topLevel.AddCommand(prefsCmd)
}

func addPrefsStartDay(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start-day <day|today>",
		Short: "Set the day the week view starts on",
		Example: `
weekly prefs start-day mon
weekly prefs start-day today
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			p := svc.Prefs
			if args[0] == "today" {
				// stored as the dynamic marker, resolved on every read
				p.StartDay = schedule.StartDayToday
			} else {
				day, err := timeutil.ParseDay(args[0])
				if err != nil {
					return err
				}
				p.StartDay = day
			}
			svc.SetPreferences(p)
			fmt.Println("start day updated")
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addPrefsFormat(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "format <7-day|5-day>",
		Short:     "Set how many days the week view shows",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(schedule.SevenDay), string(schedule.FiveDay)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			format := schedule.WeekFormat(args[0])
			if format != schedule.SevenDay && format != schedule.FiveDay {
				return fmt.Errorf("unknown week format %q", args[0])
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			p := svc.Prefs
			p.WeekFormat = format
			svc.SetPreferences(p)
			fmt.Println("week format updated")
			return nil
		},
	}
	parent.AddCommand(cmd)
}
