package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkbrennan/ritual/internal/cli"
	"github.com/mkbrennan/ritual/internal/constants"
	"github.com/mkbrennan/ritual/internal/engine"
)

type HabitStatsCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	today, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	marked := engine.FullHistoryMarkedDates(habit, today)

	fmt.Printf("%s\n", cli.GradientStyle(habit.Gradient).Render(habit.Name))
	fmt.Printf("  Current streak:  %d\n", engine.CurrentStreak(habit, today))
	fmt.Printf("  Highest streak:  %d\n", engine.HighestStreak(habit, today))
	fmt.Printf("  Completion rate: %.1f%%\n", engine.CompletionRate(habit, today))
	fmt.Printf("  Completed days:  %d\n", engine.CompletedDays(marked))
	return nil
}

type HabitCalendarCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Month string `help:"Month to show in YYYY-MM format (default: current month)." default:""`
}

func (c *HabitCalendarCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}

	today := ctx.Today()
	month := today
	if c.Month != "" {
		month, err = time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
	}

	cells := engine.MarkedDates(habit, month, today)

	fmt.Printf("%s — %s\n", habit.Name, month.Format("January 2006"))
	fmt.Println("Mo Tu We Th Fr Sa Su")

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Pad to the first Monday column.
	offset := (int(first.Weekday()) + 6) % 7
	line := strings.Repeat("   ", offset)

	style := cli.GradientStyle(habit.Gradient)
	for d := first; d.Month() == month.Month(); d = d.AddDate(0, 0, 1) {
		cell := cells[d.Format(constants.DateFormat)]
		text := fmt.Sprintf("%2d", d.Day())
		switch {
		case cell.Selected:
			text = style.Render(text)
		case cell.Disabled:
			text = cli.DimStyle.Render(text)
		}
		if cell.Marked {
			text += "*"
			line += text
		} else {
			line += text + " "
		}
		if d.Weekday() == time.Sunday {
			fmt.Println(strings.TrimRight(line, " "))
			line = ""
		}
	}
	if line != "" {
		fmt.Println(strings.TrimRight(line, " "))
	}
	return nil
}

type HabitWeekCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

// Run prints the rolling 7-day strip ending today, with per-habit
// completion marks for each day.
func (c *HabitWeekCmd) Run(ctx *cli.Context) error {
	today, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	strip := engine.WeekStrip(today)
	days := engine.LastNDates(today, 7)

	header := "              "
	for _, wd := range strip {
		header += fmt.Sprintf("%s ", wd.String()[:2])
	}
	fmt.Println(strings.TrimRight(header, " "))

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		row := fmt.Sprintf("%-14.14s", habit.Name)
		for _, key := range days {
			mark := "·"
			if dp, ok := habit.Dates[key]; ok && dp.Complete() {
				mark = cli.GradientStyle(habit.Gradient).Render("●")
			}
			row += mark + "  "
		}
		fmt.Println(strings.TrimRight(row, " "))
	}
	return nil
}

type HabitYearCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

// Run prints the rolling 365-day heat strip, four weeks per line.
func (c *HabitYearCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.HabitByName(c.Name)
	if err != nil {
		return err
	}
	today, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	style := cli.GradientStyle(habit.Gradient)
	dates := engine.YearDates(today)

	fmt.Printf("%s — last %d days\n", habit.Name, len(dates))
	var line strings.Builder
	for i, key := range dates {
		d, _ := time.Parse(constants.DateFormat, key)
		dp, ok := habit.Dates[key]
		switch {
		case ok && dp.Complete():
			line.WriteString(style.Render("■"))
		case !habit.Schedule.DueOn(d.Weekday()):
			line.WriteString(cli.DimStyle.Render("·"))
		default:
			line.WriteString("□")
		}
		if (i+1)%28 == 0 {
			fmt.Println(line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Println(line.String())
	}
	return nil
}
