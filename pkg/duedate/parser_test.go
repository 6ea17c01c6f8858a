package duedate_test

import (
	"errors"
	"testing"
	"time"

	"todo-manager/pkg/duedate"
)

func TestNewParser(t *testing.T) {
	if _, err := duedate.NewParser("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := duedate.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := duedate.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfNow := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "RFC3339", input: "2025-07-08T14:30:00+02:00", want: time.Date(2025, 7, 8, 12, 30, 0, 0, time.UTC)},
		{name: "datetime-local", input: "2025-07-08T14:30", want: time.Date(2025, 7, 8, 14, 30, 0, 0, time.UTC)},
		{name: "Space separated", input: "2025-07-08 14:30", want: time.Date(2025, 7, 8, 14, 30, 0, 0, time.UTC)},
		{name: "Date only", input: "2025-07-08", want: time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)},
		{name: "Today", input: "today", want: startOfNow},
		{name: "Tomorrow mixed case", input: "  Tomorrow ", want: startOfNow.AddDate(0, 0, 1)},
		{name: "Yesterday", input: "yesterday", want: startOfNow.AddDate(0, 0, -1)},
		{name: "In 3 days", input: "in 3 days", want: startOfNow.AddDate(0, 0, 3)},
		{name: "In 2 weeks", input: "in 2 weeks", want: startOfNow.AddDate(0, 0, 14)},
		{name: "In 1 month", input: "in 1 month", want: startOfNow.AddDate(0, 1, 0)},
		{name: "Next Monday", input: "next monday", want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{name: "Next Wednesday is a week away", input: "next wednesday", want: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)},
		{name: "Empty", input: "   ", wantErr: duedate.ErrEmptyInput},
		{name: "Garbage", input: "whenever", wantErr: duedate.ErrUnrecognized},
		{name: "Bad duration", input: "in many days", wantErr: duedate.ErrUnrecognized},
		{name: "Bad weekday", input: "next someday", wantErr: duedate.ErrUnrecognized},
		{name: "Past year 9999", input: "in 100000 months", wantErr: duedate.ErrUnrecognized},
		{name: "Huge day count", input: "in 9999999 days", wantErr: duedate.ErrUnrecognized},
		{name: "Last storable day", input: "9999-12-31", want: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
