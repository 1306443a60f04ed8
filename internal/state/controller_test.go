package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_StartsIdle(t *testing.T) {
	c := NewController()

	st := c.State()
	assert.Equal(t, Idle, st.Status)
	assert.True(t, st.IsLoading(), "idle renders as loading")
	assert.False(t, c.Loading())
	assert.Equal(t, RequestID(0), c.Latest())
}

func TestController_Transitions(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name       string
		value      string
		err        error
		wantStatus Status
		wantValue  string
	}{
		{name: "success", value: "X", wantStatus: Loaded, wantValue: "X"},
		{name: "failure", err: boom, wantStatus: Failed},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			id := c.Begin()
			require.True(t, c.Loading())

			applied := c.Settle(id, tt.value, tt.err)

			require.True(t, applied)
			st := c.State()
			assert.Equal(t, tt.wantStatus, st.Status)
			assert.Equal(t, tt.wantValue, st.Value)
			assert.Equal(t, tt.err, st.Err)
			assert.False(t, c.Loading(), "loading must clear on every settle")
		})
	}
}

func TestController_FailurePreservesLastGood(t *testing.T) {
	c := NewController()
	c.Settle(c.Begin(), "first", nil)

	c.Settle(c.Begin(), "", errors.New("500"))

	st := c.State()
	assert.Equal(t, Failed, st.Status)
	assert.Empty(t, st.Value)
	assert.Equal(t, "first", st.LastGood)
}

func TestController_BeginFromEveryState(t *testing.T) {
	c := NewController()

	for i, settle := range []error{nil, errors.New("x"), nil} {
		id := c.Begin()
		assert.Equal(t, Loading, c.State().Status, "round %d", i)
		assert.Nil(t, c.State().Err)
		c.Settle(id, "v", settle)
	}
	assert.Equal(t, 3, c.Stats().Attempts)
	assert.Equal(t, 2, c.Stats().Successes)
	assert.Equal(t, 1, c.Stats().Failures)
}

func TestController_StaleResultDropped(t *testing.T) {
	c := NewController()

	first := c.Begin()
	second := c.Begin()
	require.Greater(t, uint64(second), uint64(first))

	// Newer request settles first.
	assert.True(t, c.Settle(second, "new", nil))
	// Older response arrives late and must not overwrite.
	assert.False(t, c.Settle(first, "old", nil))

	assert.Equal(t, "new", c.State().Value)
	assert.Equal(t, 1, c.Stats().Stale)
}

func TestController_StaleResultWhileNewerInFlight(t *testing.T) {
	c := NewController()

	first := c.Begin()
	_ = c.Begin()

	assert.False(t, c.Settle(first, "", errors.New("late failure")))
	assert.True(t, c.Loading(), "newer request still in flight")
	assert.Nil(t, c.State().Err)
}

func TestController_DuplicateSettleIgnored(t *testing.T) {
	c := NewController()
	id := c.Begin()

	require.True(t, c.Settle(id, "once", nil))
	assert.False(t, c.Settle(id, "twice", nil))
	assert.Equal(t, "once", c.State().Value)
}

func TestController_UnknownIDIgnored(t *testing.T) {
	c := NewController()
	assert.False(t, c.Settle(0, "x", nil))
	assert.False(t, c.Settle(42, "x", nil))
	assert.Equal(t, Idle, c.State().Status)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(99).String())
}
