package portfolio_test

import (
	"testing"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPortfolio(t *testing.T) {
	t.Run("creates_active_portfolio", func(t *testing.T) {
		p, err := portfolio.NewPortfolio(kernel.NewUUID(), kernel.NewUUID(), "Hillside HOA units", 42)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Hillside HOA units", p.Name())
		assert.Equal(t, 42, p.PropertyCount())
		assert.False(t, p.IsArchived())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := portfolio.NewPortfolio(kernel.NewUUID(), kernel.NewUUID(), "", 1)

		require.ErrorIs(t, err, portfolio.ErrNameIsRequired)
	})

	t.Run("rejects_negative_property_count", func(t *testing.T) {
		_, err := portfolio.NewPortfolio(kernel.NewUUID(), kernel.NewUUID(), "Hillside", -1)

		require.ErrorIs(t, err, portfolio.ErrPropertyCountIsInvalid)
	})
}

func TestPortfolio_Archive(t *testing.T) {
	t.Run("archives_once", func(t *testing.T) {
		p, err := portfolio.NewPortfolio(kernel.NewUUID(), kernel.NewUUID(), "Hillside", 1)
		require.NoError(t, err)

		require.NoError(t, p.Archive())
		assert.True(t, p.IsArchived())
	})

	t.Run("second_archive_is_a_conflict", func(t *testing.T) {
		p, err := portfolio.NewPortfolio(kernel.NewUUID(), kernel.NewUUID(), "Hillside", 1)
		require.NoError(t, err)
		require.NoError(t, p.Archive())

		err = p.Archive()

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRestorePortfolio(t *testing.T) {
	t.Run("restores_archived_flag", func(t *testing.T) {
		p, err := portfolio.RestorePortfolio(kernel.NewUUID(), kernel.NewUUID(), "Hillside", 3, true)

		require.NoError(t, err)
		assert.True(t, p.IsArchived())
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var p portfolio.Portfolio

		require.ErrorIs(t, p.Validate(), portfolio.ErrPortfolioIsNotConstructed)
	})
}
