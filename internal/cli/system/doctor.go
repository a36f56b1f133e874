package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/mkbrennan/ritual/internal/cli"
	"github.com/mkbrennan/ritual/internal/constants"
)

type DoctorCmd struct{}

// Run checks storage health and the single-writer assumption: the record
// store serializes writes through one in-memory copy, so a second running
// process can silently lose data.
func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ Storage readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage readable: OK (%d habits)\n", len(ctx.Store.Habits()))
	}

	if err := checkRecords(ctx); err != nil {
		fmt.Printf("⚠ Records valid: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Records valid: OK\n")
	}

	if n, err := otherInstances(); err != nil {
		fmt.Printf("⊘ Single writer: SKIPPED (%v)\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Single writer: WARNING\n")
		fmt.Printf("   %d other %s process(es) running; concurrent writes can be lost\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println()
	fmt.Println("All checks passed.")
	return nil
}

func checkStorage(ctx *cli.Context) error {
	return ctx.Store.Load()
}

// checkRecords flags record shapes the engine tolerates but a user would
// want to know about: zero targets and empty schedules from interrupted
// edits.
func checkRecords(ctx *cli.Context) error {
	var problems []string
	for _, h := range ctx.Store.Habits() {
		if h.ProgressTotal < 1 {
			problems = append(problems, fmt.Sprintf("habit %q has no daily target assigned", h.Name))
		}
		if h.Schedule.Empty() {
			problems = append(problems, fmt.Sprintf("habit %q has an empty schedule", h.Name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

func otherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == name {
			count++
		}
	}
	return count, nil
}
