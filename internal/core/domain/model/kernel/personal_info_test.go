package kernel_test

import (
	"testing"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersonalInfo(t *testing.T) {
	birthDate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid info", func(t *testing.T) {
		info, err := kernel.NewPersonalInfo("Alice Chen", kernel.GenderFemale, birthDate)

		require.NoError(t, err)
		require.NoError(t, info.Validate())
		assert.Equal(t, "Alice Chen", info.Name())
		assert.Equal(t, kernel.GenderFemale, info.Gender())
		assert.True(t, info.BirthDate().Equal(birthDate))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := kernel.NewPersonalInfo("", kernel.GenderMale, birthDate)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown gender", func(t *testing.T) {
		_, err := kernel.NewPersonalInfo("Bob", kernel.GenderUnknown, birthDate)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero birth date", func(t *testing.T) {
		_, err := kernel.NewPersonalInfo("Bob", kernel.GenderMale, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("future birth date", func(t *testing.T) {
		_, err := kernel.NewPersonalInfo("Bob", kernel.GenderMale, time.Now().AddDate(1, 0, 0))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPersonalInfo_IsEqual(t *testing.T) {
	birthDate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	a, _ := kernel.NewPersonalInfo("Alice", kernel.GenderFemale, birthDate)
	b, _ := kernel.NewPersonalInfo("Alice", kernel.GenderFemale, birthDate)
	c, _ := kernel.NewPersonalInfo("Carol", kernel.GenderFemale, birthDate)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGenderFromString(t *testing.T) {
	t.Run("round-trips valid genders", func(t *testing.T) {
		for _, gender := range []kernel.Gender{kernel.GenderMale, kernel.GenderFemale, kernel.GenderOther} {
			parsed, err := kernel.GenderFromString(gender.String())
			require.NoError(t, err)
			assert.Equal(t, gender, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := kernel.GenderFromString("N/A")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPersonalInfo_Validate_ZeroValue(t *testing.T) {
	var info kernel.PersonalInfo
	require.ErrorIs(t, info.Validate(), kernel.ErrPersonalInfoIsNotConstructed)
}
