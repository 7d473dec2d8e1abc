package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/timeutil"
)

func addPlan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "plan <day> <id>",
		Short: "Schedule an item on a day",
		Example: `
weekly plan mon 5f3a...
weekly plan today 5f3a...
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			day, err := timeutil.ParseDay(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			it, err := svc.Plan(day, args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("%s planned on %s\n", it.Title, timeutil.DayName(day))
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addUnplan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "unplan <day> <id>",
		Short: "Remove the first occurrence of an item from a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			day, err := timeutil.ParseDay(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			svc.Unplan(day, args[1])
			fmt.Printf("unplanned from %s\n", timeutil.DayName(day))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <from-day> <to-day> <id>",
		Short: "Move a scheduled item to another day",
		Example: `
weekly move mon fri 5f3a...
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			from, err := timeutil.ParseDay(args[0])
			if err != nil {
				return err
			}
			to, err := timeutil.ParseDay(args[1])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			if err := svc.MoveItem(from, to, args[2]); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("moved %s → %s\n", timeutil.DayName(from), timeutil.DayName(to))
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addReorder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reorder <day> <id> [id...]",
		Short: "Rearrange a day to the given id order",
		Example: `
weekly reorder tue 5f3a... 9c1b...
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			day, err := timeutil.ParseDay(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			if err := svc.ReorderDay(day, args[1:]); err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.Week(svc.Schedule.Week(), []int{day}, int(time.Now().Weekday()))
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the planned week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}

			now := time.Now()
			pp := printers.PrettyPrint{}
			pp.Week(svc.Schedule.Week(), schedule.DisplayOrder(svc.Prefs, now), int(now.Weekday()))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
