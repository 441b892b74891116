package extcontext_test

import (
	"testing"

	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendorContext(t *testing.T) {
	t.Run("creates_vendor_context", func(t *testing.T) {
		v, err := extcontext.NewVendorContext(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"vendor-acme", []string{"fencing", "carpentry"}, "ops@acme.example", "preferred vendor")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "vendor-acme", v.VendorRef())
		assert.Equal(t, []string{"fencing", "carpentry"}, v.Trades())
	})

	t.Run("rejects_missing_vendor_ref", func(t *testing.T) {
		_, err := extcontext.NewVendorContext(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", nil, "", "")

		require.ErrorIs(t, err, extcontext.ErrVendorRefIsRequired)
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := extcontext.NewVendorContext(kernel.NewUUID(), zero, kernel.NewUUID(),
			"vendor-acme", nil, "", "")

		require.Error(t, err)
	})
}

func TestNewHOAContext(t *testing.T) {
	t.Run("creates_hoa_context", func(t *testing.T) {
		h, err := extcontext.NewHOAContext(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"hoa-hillside", "Summit Management", true, "")

		require.NoError(t, err)
		require.NoError(t, h.Validate())
		assert.Equal(t, "hoa-hillside", h.HOARef())
		assert.True(t, h.ApprovalRequired())
	})

	t.Run("rejects_missing_hoa_ref", func(t *testing.T) {
		_, err := extcontext.NewHOAContext(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "", false, "")

		require.ErrorIs(t, err, extcontext.ErrHOARefIsRequired)
	})

	t.Run("zero_values_are_rejected", func(t *testing.T) {
		var v extcontext.VendorContext
		var h extcontext.HOAContext

		require.ErrorIs(t, v.Validate(), extcontext.ErrVendorContextIsNotConstructed)
		require.ErrorIs(t, h.Validate(), extcontext.ErrHOAContextIsNotConstructed)
	})
}
