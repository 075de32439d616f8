package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Publish(t *testing.T) {
	now := time.Now().UTC()
	e := &Event{State: EventStatePending}

	require.NoError(t, e.Publish(now))
	assert.Equal(t, EventStatePublished, e.State)
	require.NotNil(t, e.PublishedOn)
	assert.Equal(t, now, *e.PublishedOn)
}

func TestEvent_Publish_NotPending(t *testing.T) {
	for _, state := range []EventState{EventStatePublished, EventStateCanceled} {
		e := &Event{State: state}
		err := e.Publish(time.Now().UTC())
		assert.ErrorIs(t, err, ErrEventNotPending, "state %s", state)
		assert.Equal(t, state, e.State)
		assert.Nil(t, e.PublishedOn)
	}
}

func TestEvent_Reject(t *testing.T) {
	e := &Event{State: EventStatePending}
	require.NoError(t, e.Reject())
	assert.Equal(t, EventStateCanceled, e.State)
}

func TestEvent_Reject_Published(t *testing.T) {
	e := &Event{State: EventStatePublished}
	assert.ErrorIs(t, e.Reject(), ErrEventPublished)
	assert.Equal(t, EventStatePublished, e.State)
}

func TestEvent_SendToReview(t *testing.T) {
	e := &Event{State: EventStateCanceled}
	require.NoError(t, e.SendToReview())
	assert.Equal(t, EventStatePending, e.State)
}

func TestEvent_SendToReview_Published(t *testing.T) {
	e := &Event{State: EventStatePublished}
	assert.ErrorIs(t, e.SendToReview(), ErrEventPublished)
}

func TestEvent_CancelReview(t *testing.T) {
	e := &Event{State: EventStatePending}
	require.NoError(t, e.CancelReview())
	assert.Equal(t, EventStateCanceled, e.State)
}

func TestEvent_CancelReview_Published(t *testing.T) {
	e := &Event{State: EventStatePublished}
	assert.ErrorIs(t, e.CancelReview(), ErrEventPublished)
}
