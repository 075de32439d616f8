package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequests(ids ...int64) []*Request {
	res := make([]*Request, 0, len(ids))
	for _, id := range ids {
		res = append(res, &Request{ID: id, Status: ParticipationStatusPending})
	}
	return res
}

func requestIDs(requests []*Request) []int64 {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestOrderForModeration_CallerOrder(t *testing.T) {
	// Порядок чтения из хранилища не важен — результат следует порядку ids.
	requests := pendingRequests(3, 1, 2)

	ordered, err := OrderForModeration(requests, []int64{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, requestIDs(ordered))
}

func TestOrderForModeration_MissingRequest(t *testing.T) {
	requests := pendingRequests(1, 2)

	_, err := OrderForModeration(requests, []int64{1, 2, 99})

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestOrderForModeration_NonPendingAbortsBatch(t *testing.T) {
	requests := pendingRequests(1, 2, 3)
	requests[1].Status = ParticipationStatusConfirmed

	// Одна не-PENDING заявка отменяет весь пакет.
	_, err := OrderForModeration(requests, []int64{1, 2, 3})

	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestModerationVacancies_Available(t *testing.T) {
	vacancies, err := ModerationVacancies(10, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), vacancies)
}

func TestModerationVacancies_Exhausted(t *testing.T) {
	_, err := ModerationVacancies(10, 10)

	assert.ErrorIs(t, err, ErrParticipantLimitReached)
}

func TestAllocateVacancies_ConfirmsInCallerOrder(t *testing.T) {
	requests := pendingRequests(1, 2, 3)

	res := AllocateVacancies(requests, ParticipationStatusConfirmed, 2)

	assert.Equal(t, []int64{1, 2}, requestIDs(res.Confirmed))
	assert.Equal(t, []int64{3}, requestIDs(res.Rejected))
	assert.Equal(t, ParticipationStatusConfirmed, requests[0].Status)
	assert.Equal(t, ParticipationStatusConfirmed, requests[1].Status)
	assert.Equal(t, ParticipationStatusRejected, requests[2].Status)
}

func TestAllocateVacancies_EnoughVacancies(t *testing.T) {
	requests := pendingRequests(5, 6)

	res := AllocateVacancies(requests, ParticipationStatusConfirmed, 10)

	assert.Equal(t, []int64{5, 6}, requestIDs(res.Confirmed))
	assert.Empty(t, res.Rejected)
}

func TestAllocateVacancies_NoVacancies(t *testing.T) {
	requests := pendingRequests(1, 2)

	res := AllocateVacancies(requests, ParticipationStatusConfirmed, 0)

	assert.Empty(t, res.Confirmed)
	assert.Equal(t, []int64{1, 2}, requestIDs(res.Rejected))
}

func TestAllocateVacancies_RejectTarget(t *testing.T) {
	requests := pendingRequests(1, 2, 3)

	// При целевом статусе REJECTED вакансии не расходуются.
	res := AllocateVacancies(requests, ParticipationStatusRejected, 100)

	assert.Empty(t, res.Confirmed)
	assert.Equal(t, []int64{1, 2, 3}, requestIDs(res.Rejected))
	for _, r := range requests {
		assert.Equal(t, ParticipationStatusRejected, r.Status)
	}
}

func TestAllocateVacancies_Empty(t *testing.T) {
	res := AllocateVacancies(nil, ParticipationStatusConfirmed, 5)

	require.NotNil(t, res)
	assert.Empty(t, res.Confirmed)
	assert.Empty(t, res.Rejected)
}
