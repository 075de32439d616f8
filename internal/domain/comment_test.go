package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_Publish(t *testing.T) {
	now := time.Now().UTC()
	c := &Comment{State: CommentStatePending}

	c.Publish(now)

	assert.Equal(t, CommentStatePublished, c.State)
	require.NotNil(t, c.Published)
	assert.Equal(t, now, *c.Published)
}

func TestComment_ApplyEdit_Unpublished(t *testing.T) {
	c := &Comment{State: CommentStateRejected, Text: "old"}

	require.NoError(t, c.ApplyEdit("new", time.Now().UTC()))
	assert.Equal(t, "new", c.Text)
	assert.Equal(t, CommentStatePending, c.State)
	assert.Nil(t, c.Published)
}

func TestComment_ApplyEdit_WithinWindow(t *testing.T) {
	published := time.Now().UTC().Add(-CommentEditWindow + time.Minute)
	c := &Comment{State: CommentStatePublished, Text: "old", Published: &published}

	require.NoError(t, c.ApplyEdit("new", time.Now().UTC()))
	assert.Equal(t, "new", c.Text)
	assert.Equal(t, CommentStatePending, c.State)
	assert.Nil(t, c.Published)
}

func TestComment_ApplyEdit_ExactBoundary(t *testing.T) {
	now := time.Now().UTC()
	published := now.Add(-CommentEditWindow)
	c := &Comment{State: CommentStatePublished, Text: "old", Published: &published}

	// Ровно 24 часа после публикации — еще успевает.
	require.NoError(t, c.ApplyEdit("new", now))
	assert.Equal(t, "new", c.Text)
}

func TestComment_ApplyEdit_Expired(t *testing.T) {
	now := time.Now().UTC()
	published := now.Add(-CommentEditWindow - time.Second)
	c := &Comment{State: CommentStatePublished, Text: "old", Published: &published}

	err := c.ApplyEdit("new", now)

	assert.ErrorIs(t, err, ErrCommentEditExpired)
	assert.Equal(t, "old", c.Text)
	assert.Equal(t, CommentStatePublished, c.State)
}
