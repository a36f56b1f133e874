package habits

import (
	"fmt"

	"github.com/mkbrennan/ritual/internal/cli"
	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/models"
)

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

// Run marks the habit complete for the day by writing progress equal to the
// current target. The day's prior entry, if any, is overwritten.
func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	day, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	key := day.Format(constants.DateFormat)
	if err := ctx.Store.SetProgress(habit.ID, key, habit.ProgressTotal); err != nil {
		return err
	}

	fmt.Printf("Marked habit %q for %s\n", c.Name, key)
	return nil
}

type HabitLogCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Progress int    `arg:"" help:"Accumulated progress for the day (count units or seconds)."`
	Date     string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

// Run records an absolute progress value for the day. The value replaces
// whatever was recorded before; it is not added to it.
func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	if habit.Type == models.TypeCheck {
		return fmt.Errorf("habit %q is a check habit, use 'ritual habit done'", c.Name)
	}
	if c.Progress < 0 {
		return fmt.Errorf("progress must not be negative")
	}
	day, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	key := day.Format(constants.DateFormat)
	if err := ctx.Store.SetProgress(habit.ID, key, c.Progress); err != nil {
		return err
	}

	unit := "units"
	if habit.Type == models.TypeTimer {
		unit = "seconds"
	}
	fmt.Printf("Logged %d %s for habit %q on %s\n", c.Progress, unit, c.Name, key)
	return nil
}
