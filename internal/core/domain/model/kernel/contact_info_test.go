package kernel_test

import (
	"testing"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactInfo(t *testing.T) {
	t.Run("valid contact info", func(t *testing.T) {
		info, err := kernel.NewContactInfo("0912345678", "alice@example.com")

		require.NoError(t, err)
		require.NoError(t, info.Validate())
		assert.Equal(t, "0912345678", info.MobilePhone())
		assert.Equal(t, "alice@example.com", info.Email())
	})

	t.Run("invalid phone numbers", func(t *testing.T) {
		for _, phone := range []string{"", "12345", "0812345678", "09123456789", "09-12345678"} {
			_, err := kernel.NewContactInfo(phone, "alice@example.com")
			require.Error(t, err, "phone %q", phone)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "two@@example.com ", "name@nodot"} {
			_, err := kernel.NewContactInfo("0912345678", email)
			require.Error(t, err, "email %q", email)
		}
	})

	t.Run("all errors joined", func(t *testing.T) {
		_, err := kernel.NewContactInfo("", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestContactInfo_IsEqual(t *testing.T) {
	a, _ := kernel.NewContactInfo("0912345678", "alice@example.com")
	b, _ := kernel.NewContactInfo("0912345678", "alice@example.com")
	c, _ := kernel.NewContactInfo("0987654321", "alice@example.com")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestContactInfo_Validate_ZeroValue(t *testing.T) {
	var info kernel.ContactInfo
	require.ErrorIs(t, info.Validate(), kernel.ErrContactInfoIsNotConstructed)
}
