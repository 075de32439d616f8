package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRequestNotFound  = errors.New("participation request not found")
	ErrCommentNotFound  = errors.New("comment not found")
)

var (
	ErrEventNotPending         = errors.New("event is not in pending state")
	ErrEventPublished          = errors.New("event is already published")
	ErrEventNotPublished       = errors.New("event is not published")
	ErrSelfParticipation       = errors.New("initiator cannot request participation in own event")
	ErrParticipantLimitReached = errors.New("participant limit reached")
	ErrDuplicateRequest        = errors.New("participation request already exists")
	ErrModerationNotRequired   = errors.New("request moderation is not required for this event")
	ErrInvalidModerationStatus = errors.New("moderation target status must be CONFIRMED or REJECTED")
	ErrRequestNotPending       = errors.New("request is not in pending status")
	ErrCommentEditExpired      = errors.New("comment edit window has expired")
	ErrCategoryNotEmpty        = errors.New("category is referenced by events")
	ErrCategoryNameTaken       = errors.New("category name is already taken")
	ErrEmailTaken              = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
