package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/report"
	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
	gormstore "github.com/doodlesbykumbi/cms-in-go/pkg/store/gorm"
	"github.com/doodlesbykumbi/cms-in-go/pkg/testutil"
)

func TestRunPrintsEverySection(t *testing.T) {
	ctx := context.Background()
	database := testutil.OpenSQLite(t)
	require.NoError(t, schema.Sync(ctx, database))
	stores := gormstore.NewStores(database)

	fixtures, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.New(stores, nil).Seed(ctx, fixtures)
	require.NoError(t, err)

	var buf bytes.Buffer
	printer, err := report.NewPrinter(&buf, report.Options{})
	require.NoError(t, err)

	r := New(stores, printer, Options{})
	require.NoError(t, r.Run(ctx))
	require.NoError(t, printer.Flush())

	out := buf.String()
	last := -1
	for _, step := range r.Steps() {
		banner := report.Banner(step.Title, report.DefaultFill, report.DefaultWidth)
		idx := strings.Index(out, banner+"\n")
		require.GreaterOrEqual(t, idx, 0, step.Title)
		assert.Greater(t, idx, last, step.Title)
		last = idx
	}

	assert.Contains(t, out, `"email": "johnny@example.com"`)
	assert.Contains(t, out, `"permission_name": "Moderate Comment"`)
	assert.Contains(t, out, `"contributor": null`)
	assert.Contains(t, out, `"comment": "Nice Pick"`)
	assert.NotContains(t, out, "Johnny_hashed_pw")
	assert.NotContains(t, out, "source_id")
}

func TestRunStopsAtFirstError(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	boom := errors.New("connection reset")

	users := &MockUsersStore{}
	users.On("ListUsers", mock.Anything).Return([]model.User{{UserID: 1, UserName: "Johnny", Email: "johnny@example.com"}}, nil)
	secrets := &MockSecretsStore{}
	secrets.On("ListSecretsExpiringBefore", mock.Anything, cutoff).Return([]model.Secret(nil), boom)

	var buf bytes.Buffer
	printer, err := report.NewPrinter(&buf, report.Options{Width: 20})
	require.NoError(t, err)

	// Roles is left nil: reaching the third step would panic.
	r := New(store.Stores{Users: users, Secrets: secrets}, printer, Options{Cutoff: cutoff})
	err = r.Run(ctx)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Eager Association: Fetch Secret based on expiry_date")
	users.AssertExpectations(t)
	secrets.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Johnny")
}

func TestNewDefaultsCutoff(t *testing.T) {
	r := New(store.Stores{}, nil, Options{})
	assert.Equal(t, DefaultCutoff, r.cutoff)
	assert.Len(t, r.Steps(), 7)
}
