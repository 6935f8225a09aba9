package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestFormatDrift_Golden(t *testing.T) {
	report := &app.DriftReport{
		GroupID: "g-1",
		Warnings: []domain.DriftWarning{
			{GroupID: "g-1", Path: "end_date", Persisted: "2025-05-02", Expected: "2025-05-09"},
			{GroupID: "g-1", Path: "modules[1].end_date", Persisted: "2025-05-02", Expected: "2025-05-09"},
		},
	}
	goldenTest(t, "drift_report", FormatDrift(report))
}

func TestFormatGenerate_Golden(t *testing.T) {
	session := func(date time.Time, label string) domain.Session {
		return domain.Session{
			GroupID: "g-1", Date: date, StartTime: "09:00", EndTime: "12:00",
			Venue: "Lecture Room", ModuleLabel: label, Notes: "lecture",
		}
	}
	resp := &app.GenerateSessionsResponse{
		GroupID: "g-1",
		Created: []domain.Session{
			session(day(2025, time.March, 17), "M1 Foundations"),
			session(day(2025, time.April, 7), "M2 Practice"),
		},
		Conflicts: []domain.ConflictError{
			{Date: "2025-03-24", StartTime: "09:00", Venue: "Lecture Room", GroupID: "g-1", ConflictingGroupID: "g-2"},
		},
	}
	goldenTest(t, "generate_sessions", FormatGenerate(resp))
}
