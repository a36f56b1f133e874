// Package habits implements the habit management commands.
package habits

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/mkbrennan/ritual/internal/cli"
	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/models"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Add a new habit."`
	Edit     HabitEditCmd     `cmd:"" help:"Edit an existing habit."`
	List     HabitListCmd     `cmd:"" help:"List habits."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Delete a habit permanently."`
	Reset    HabitResetCmd    `cmd:"" help:"Clear a habit's progress history."`
	Done     HabitDoneCmd     `cmd:"" help:"Mark a habit complete for a day."`
	Log      HabitLogCmd      `cmd:"" help:"Record progress for a day."`
	Stats    HabitStatsCmd    `cmd:"" help:"Show streaks and completion rate."`
	Calendar HabitCalendarCmd `cmd:"" help:"Show a month calendar for a habit."`
	Week     HabitWeekCmd     `cmd:"" help:"Show the rolling 7-day strip."`
	Year     HabitYearCmd     `cmd:"" help:"Show the rolling 365-day history."`
}

type HabitAddCmd struct {
	Name     string `arg:"" optional:"" help:"Habit name. Omit for an interactive prompt."`
	Type     string `help:"Habit type: check, count or timer." default:"count"`
	Target   int    `help:"Daily target (count units or seconds)." default:"1"`
	Days     string `help:"Schedule: everyday, weekdays, weekend or e.g. mon,wed,fri." default:"everyday"`
	Icon     string `help:"Icon name in the icon catalog."`
	Family   string `help:"Icon family." default:"feather"`
	Gradient string `help:"Colour scheme key."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	if _, err := ctx.Store.HabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	schedule, err := cli.ParseScheduleDays(c.Days)
	if err != nil {
		return err
	}

	gradient := models.Gradient(c.Gradient)
	if c.Gradient == "" {
		gradient = models.Gradient(ctx.Config.Habits.DefaultGradient)
	}

	habit := models.Habit{
		ID:            uuid.New().String(),
		Name:          c.Name,
		Icon:          models.Icon{Family: c.Family, Name: c.Icon},
		Gradient:      gradient,
		Type:          models.HabitType(c.Type),
		ProgressTotal: c.Target,
		Schedule:      schedule,
		CreatedAt:     time.Now().UTC(),
	}
	if habit.Type == models.TypeCheck {
		habit.ProgressTotal = constants.DefaultTarget
	}

	if err := ctx.Store.Create(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, target %d, %s)\n",
		c.Name, habit.Type, habit.ProgressTotal, cli.FormatSchedule(schedule))
	return nil
}

// prompt collects the habit fields interactively when no name was given.
func (c *HabitAddCmd) prompt() error {
	targetStr := strconv.Itoa(c.Target)
	var days []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions("count", "timer", "check")...).
				Value(&c.Type),
			huh.NewInput().
				Title("Daily target").
				Value(&targetStr),
			huh.NewMultiSelect[string]().
				Title("Scheduled days").
				Options(huh.NewOptions("mon", "tue", "wed", "thu", "fri", "sat", "sun")...).
				Value(&days),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	target, err := strconv.Atoi(targetStr)
	if err != nil {
		return fmt.Errorf("invalid target: %s", targetStr)
	}
	c.Target = target

	if len(days) > 0 {
		c.Days = ""
		for i, d := range days {
			if i > 0 {
				c.Days += ","
			}
			c.Days += d
		}
	}
	return nil
}

type HabitEditCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Rename   string `help:"New display name."`
	Type     string `help:"Habit type: check, count or timer."`
	Target   int    `help:"Daily target." default:"-1"`
	Days     string `help:"Schedule: everyday, weekdays, weekend or e.g. mon,wed,fri."`
	Icon     string `help:"Icon name."`
	Family   string `help:"Icon family."`
	Gradient string `help:"Colour scheme key."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}

	if c.Rename != "" {
		habit.Name = c.Rename
	}
	if c.Type != "" {
		habit.Type = models.HabitType(c.Type)
	}
	if c.Target >= 0 {
		habit.ProgressTotal = c.Target
	}
	if c.Days != "" {
		schedule, err := cli.ParseScheduleDays(c.Days)
		if err != nil {
			return err
		}
		habit.Schedule = schedule
	}
	if c.Icon != "" {
		habit.Icon.Name = c.Icon
	}
	if c.Family != "" {
		habit.Icon.Family = c.Family
	}
	if c.Gradient != "" {
		habit.Gradient = models.Gradient(c.Gradient)
	}

	// Editing the target only changes the habit's current target. Historical
	// days keep the snapshot they were recorded under.
	if err := ctx.Store.Update(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	for _, habit := range habits {
		name := cli.GradientStyle(habit.Gradient).Render(habit.Name)
		status := " "
		if dp, ok := habit.Dates[today.Format(constants.DateFormat)]; ok && dp.Complete() {
			status = "x"
		}
		fmt.Printf("[%s] %s  (%s, target %d, %s)\n",
			status, name, habit.Type, habit.ProgressTotal, cli.FormatSchedule(habit.Schedule))
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.Delete(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitResetCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitResetCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.ResetDates(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Cleared history for habit: %s\n", c.Name)
	return nil
}
