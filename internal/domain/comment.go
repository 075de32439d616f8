package domain

import "time"

type CommentState string

const (
	CommentStatePending   CommentState = "PENDING"
	CommentStatePublished CommentState = "PUBLISHED"
	CommentStateRejected  CommentState = "REJECTED"
)

type AdminCommentAction string

const (
	AdminPublishComment AdminCommentAction = "PUBLISH_COMMENT"
	AdminRejectComment  AdminCommentAction = "REJECT_COMMENT"
)

// CommentEditWindow — срок, в течение которого опубликованный комментарий
// еще можно отредактировать.
const CommentEditWindow = 24 * time.Hour

type Comment struct {
	ID        int64        `json:"id"`
	EventID   int64        `json:"event_id"`
	AuthorID  int64        `json:"author_id"`
	Text      string       `json:"text"`
	State     CommentState `json:"state"`
	Created   time.Time    `json:"created"`
	Published *time.Time   `json:"published"`
}

func (c *Comment) Publish(now time.Time) {
	c.State = CommentStatePublished
	c.Published = &now
}

func (c *Comment) Reject() {
	c.State = CommentStateRejected
}

// ApplyEdit заменяет текст и возвращает комментарий на модерацию.
// После публикации правка доступна не дольше CommentEditWindow.
func (c *Comment) ApplyEdit(text string, now time.Time) error {
	if c.Published != nil && now.Sub(*c.Published) > CommentEditWindow {
		return ErrCommentEditExpired
	}
	c.Text = text
	c.State = CommentStatePending
	c.Published = nil
	return nil
}
