package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTelegramID(t *testing.T) {
	tests := []struct {
		in      string
		want    TelegramID
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: " 7 ", want: 7},
		{in: "9007199254740993", want: 9007199254740993},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTelegramID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTelegramID)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), fmt.Sprint(got.Int64()))
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("1000")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(1000)))

	big, err := ParseAmount("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", big.String())

	for _, bad := range []string{"0", "-1", "1.5", "ten"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestParseDelta(t *testing.T) {
	delta, err := ParseDelta("-250")
	require.NoError(t, err)
	assert.True(t, delta.Equal(decimal.NewFromInt(-250)))

	_, err = ParseDelta("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseDelta("2.50")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrUserNotFound, KindNotFound},
		{fmt.Errorf("get code: %w", ErrCodeNotFound), KindNotFound},
		{ErrAlreadyRedeemed, KindConflict},
		{ErrAlreadyReferred, KindConflict},
		{ErrEventTerminal, KindConflict},
		{ErrInsufficientBalance, KindInsufficientFunds},
		{ErrInvalidQuantity, KindInvalidInput},
		{ErrNotifierUnavailable, KindExternalDependency},
		{ErrTxRetriesExhausted, KindInternal},
		{errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), tt.err.Error())
	}
}

func TestParseEnums(t *testing.T) {
	st, err := ParseStakeType("stars")
	require.NoError(t, err)
	assert.Equal(t, StakeStars, st)
	_, err = ParseStakeType("TON")
	assert.ErrorIs(t, err, ErrInvalidStakeType)

	pt, err := ParsePaymentType("POINTS")
	require.NoError(t, err)
	assert.Equal(t, PaymentPoints, pt)
	_, err = ParsePaymentType("card")
	assert.ErrorIs(t, err, ErrInvalidPaymentType)

	res, err := ParseResolution("draw")
	require.NoError(t, err)
	assert.Equal(t, EventDraw, res)
	_, err = ParseResolution("EXPIRED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseResolution("SCHEDULED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestEvent_OpenForStaking(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	scheduled := &Event{Status: EventScheduled, FightDate: now.Add(time.Hour)}
	assert.True(t, scheduled.OpenForStaking(now))

	overdue := &Event{Status: EventScheduled, FightDate: now.Add(-time.Minute)}
	assert.False(t, overdue.OpenForStaking(now))

	expired := &Event{Status: EventExpired, FightDate: now.Add(time.Hour)}
	assert.False(t, expired.OpenForStaking(now))
	assert.True(t, EventExpired.IsTerminal())
	assert.False(t, EventScheduled.IsTerminal())
}
