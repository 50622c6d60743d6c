package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/config"
	"github.com/dferrell/cadence/internal/importer"
	"github.com/dferrell/cadence/internal/repository"
	"github.com/dferrell/cadence/internal/service"
	"github.com/dferrell/cadence/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	hours := []string{"8:00 to 18:00"}
	cfg := &config.Config{
		GranularityMin:        30,
		HorizonDays:           7,
		DefaultDurationMin:    60,
		DefaultPriority:       1,
		DefaultWeeklySessions: 1,
		WorkingHours: map[string][]string{
			"monday": hours, "tuesday": hours, "wednesday": hours,
			"thursday": hours, "friday": hours,
		},
	}

	clients := repository.NewSQLiteClientRepo(database)
	requests := repository.NewSQLiteRequestRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Config:    cfg,
		Plan:      service.NewPlanService(cfg, clients, requests, nil, uow),
		Import:    service.NewImportService(importer.Defaults{}, nil, uow),
		Clients:   service.NewClientService(clients, requests, uow),
		Schedules: service.NewScheduleService(repository.NewSQLiteScheduleRepo(database)),
	}
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestClientAddListShowRemove(t *testing.T) {
	a := newTestApp(t)

	out, err := execute(t, a, "client", "add", "Ana",
		"--email", "ana@example.com",
		"--location", "remote",
		"--days", "Monday, Wednesday",
		"--times", "morning",
		"--weekly", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Added client")

	out, err = execute(t, a, "client", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "remote")

	out, err = execute(t, a, "client", "show", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "Mon/Wed")
	assert.Contains(t, out, "09:00-12:00")
	assert.Contains(t, out, "2 x 1h per week")

	_, err = execute(t, a, "client", "rm", "Ana")
	require.NoError(t, err)

	out, err = execute(t, a, "client", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No clients")
}

func TestClientAdd_BadDays(t *testing.T) {
	a := newTestApp(t)
	_, err := execute(t, a, "client", "add", "Ana", "--days", "Blursday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weekday")
}

func TestPlanCommand_DryRun(t *testing.T) {
	a := newTestApp(t)
	_, err := execute(t, a, "client", "add", "Ana")
	require.NoError(t, err)

	out, err := execute(t, a, "plan", "--dry-run", "--from", "2025-03-03", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Dry run, nothing saved.")

	_, err = execute(t, a, "schedule")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanThenScheduleAndStats(t *testing.T) {
	a := newTestApp(t)
	_, err := execute(t, a, "client", "add", "Ana", "--weekly", "2")
	require.NoError(t, err)

	out, err := execute(t, a, "plan", "--from", "2025-03-03", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "sessions scheduled")

	out, err = execute(t, a, "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Monday, Mar 3")

	out, err = execute(t, a, "schedule", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions")

	out, err = execute(t, a, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTALS")
	assert.Contains(t, out, "PER CLIENT")
}

func TestPlanCommand_UnknownClientScope(t *testing.T) {
	a := newTestApp(t)
	_, err := execute(t, a, "plan", "--client", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `client "nobody"`)
}

func TestImportCommand(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "clients.csv")
	csv := "Name,Email,Preferred Days\nAna,ana@example.com,Friday\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out, err := execute(t, a, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	out, err = execute(t, a, "client", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
}

func TestAvailCommand(t *testing.T) {
	a := newTestApp(t)
	out, err := execute(t, a, "avail", "--from", "2025-03-03", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon Mar 03 08:00-18:00")
	assert.Contains(t, out, "50h free in total")
}

func TestDateFlag(t *testing.T) {
	var d time.Time
	v := newDateValue(&d)
	require.NoError(t, v.Set("2025-03-03"))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-03-03", v.String())
	assert.Error(t, v.Set("03/03/2025"))
}
