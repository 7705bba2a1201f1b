package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/tracker"
)

// capture redirects the color output stream for one render.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	oldOut := color.Output
	oldNoColor := color.NoColor
	var buf bytes.Buffer
	color.Output = &buf
	color.NoColor = true
	defer func() {
		color.Output = oldOut
		color.NoColor = oldNoColor
	}()
	fn()
	return buf.String()
}

func TestRowsColumns(t *testing.T) {
	rows := []tracker.Row{
		{Habit: habit.New(1, "11시 전에 자기", []string{"수면·환경"}, habit.TypeCheck), Done: true},
		{Habit: habit.New(2, "기분 일기", nil, habit.TypeLog), Done: false},
	}

	pp := PrettyPrint{ShowType: true}
	out := capture(t, func() { pp.Rows(rows...) })

	for _, want := range []string{markDone, markPending, "#1", "#2", "check", "log", "11시 전에 자기", "수면·환경"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rows output missing %q:\n%s", want, out)
		}
	}
}

func TestRowsEmpty(t *testing.T) {
	pp := PrettyPrint{}
	out := capture(t, func() { pp.Rows() })
	if !strings.Contains(out, "none") {
		t.Fatalf("empty rows output = %q, want the none placeholder", out)
	}
}

func TestTitleWithCount(t *testing.T) {
	pp := PrettyPrint{}

	out := capture(t, func() { pp.TitleWithCount("today", 1) })
	if !strings.Contains(out, "1 habit\n") || strings.Contains(out, "habits") {
		t.Fatalf("singular count rendered wrong: %q", out)
	}

	out = capture(t, func() { pp.TitleWithCount("today", 3) })
	if !strings.Contains(out, "3 habits") {
		t.Fatalf("plural count rendered wrong: %q", out)
	}
}

func TestReportLines(t *testing.T) {
	at := entry.At(time.Date(2026, 3, 1, 7, 30, 0, 0, time.Local))
	report := tracker.Report{
		Day: "2026-03-01",
		Lines: []tracker.Line{
			{Habit: habit.New(1, "11시 전에 자기", nil, habit.TypeCheck), Checked: true},
			{Habit: habit.New(3, "기분 일기", nil, habit.TypeLog), Text: "컨디션 좋음", At: at},
		},
	}

	pp := PrettyPrint{}
	out := capture(t, func() { pp.Report(report) })

	if !strings.Contains(out, "[x] #1 11시 전에 자기") {
		t.Fatalf("checked line missing:\n%s", out)
	}
	if !strings.Contains(out, "#3 기분 일기: 컨디션 좋음") {
		t.Fatalf("log line missing:\n%s", out)
	}
	if !strings.Contains(out, "(07:30:00)") {
		t.Fatalf("timestamp missing:\n%s", out)
	}
}

func TestReportEmpty(t *testing.T) {
	pp := PrettyPrint{}
	out := capture(t, func() { pp.Report(tracker.Report{Day: "2026-03-01"}) })
	if !strings.Contains(out, "nothing recorded") {
		t.Fatalf("empty report output = %q", out)
	}
}

func TestThemesMarksActive(t *testing.T) {
	pp := PrettyPrint{}
	out := capture(t, func() { pp.Themes([]string{"수면·환경", "몸·에너지"}, "몸·에너지") })

	if !strings.Contains(out, "* 몸·에너지") {
		t.Fatalf("active theme not marked:\n%s", out)
	}
	if !strings.Contains(out, "  수면·환경") {
		t.Fatalf("inactive theme rendered wrong:\n%s", out)
	}
}
