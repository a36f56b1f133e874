package cli

import (
	"testing"
	"time"

	"github.com/mkbrennan/ritual/internal/models"
)

func TestParseScheduleDays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    models.Schedule
		wantErr bool
	}{
		{name: "empty defaults to everyday", in: "", want: models.Everyday()},
		{name: "everyday preset", in: "everyday", want: models.Everyday()},
		{name: "weekdays preset", in: "weekdays", want: models.Weekdays()},
		{name: "weekend preset", in: "weekend", want: models.Weekend()},
		{name: "explicit list", in: "mon,wed,fri", want: models.Schedule{Mon: true, Wed: true, Fri: true}},
		{name: "full names and spaces", in: "Monday, sunday", want: models.Schedule{Mon: true, Sun: true}},
		{name: "invalid day", in: "mon,funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheduleDays(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheduleDays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseScheduleDays() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		name string
		in   models.Schedule
		want string
	}{
		{"everyday", models.Everyday(), "everyday"},
		{"weekdays", models.Weekdays(), "weekdays"},
		{"weekend", models.Weekend(), "weekend"},
		{"custom", models.Schedule{Mon: true, Thu: true}, "Mon,Thu"},
		{"empty", models.Schedule{}, "never"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSchedule(tt.in); got != tt.want {
				t.Errorf("FormatSchedule() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextParseDate(t *testing.T) {
	ctx := &Context{
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
		},
	}

	got, err := ctx.ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate(\"\") error = %v", err)
	}
	if want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseDate(\"\") = %v, want %v", got, want)
	}

	got, err = ctx.ParseDate("2024-01-31")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Format("2006-01-02") != "2024-01-31" {
		t.Errorf("ParseDate() = %v", got)
	}

	if _, err := ctx.ParseDate("31/01/2024"); err == nil {
		t.Error("ParseDate() accepted a non-ISO date")
	}
}
