package courier_test

import (
	"testing"

	"onboarding/internal/core/domain/model/courier"
	"onboarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  courier.Status
		wantErr bool
	}{
		{"pending_is_valid", courier.Pending, false},
		{"approved_is_valid", courier.Approved, false},
		{"rejected_is_valid", courier.Rejected, false},
		{"unknown_is_invalid", courier.Unknown, true},
		{"out_of_range_is_invalid", courier.Status(42), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", courier.Pending.String())
	assert.Equal(t, "Approved", courier.Approved.String())
	assert.Equal(t, "Rejected", courier.Rejected.String())
	assert.Equal(t, "Unknown", courier.Unknown.String())
	assert.Equal(t, "Unknown", courier.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		for _, s := range []courier.Status{courier.Pending, courier.Approved, courier.Rejected} {
			parsed, err := courier.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := courier.StatusFromString("InReview")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = courier.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatus_ValidateDecide(t *testing.T) {
	t.Run("pending_allows_decision", func(t *testing.T) {
		require.NoError(t, courier.Pending.ValidateDecide())
	})

	t.Run("final_states_forbid_decision", func(t *testing.T) {
		for _, s := range []courier.Status{courier.Approved, courier.Rejected, courier.Unknown} {
			err := s.ValidateDecide()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}
