package domain

import "time"

type ParticipationStatus string

const (
	ParticipationStatusPending   ParticipationStatus = "PENDING"
	ParticipationStatusConfirmed ParticipationStatus = "CONFIRMED"
	ParticipationStatusRejected  ParticipationStatus = "REJECTED"
	ParticipationStatusCanceled  ParticipationStatus = "CANCELED"
)

type Request struct {
	ID          int64               `json:"id"`
	EventID     int64               `json:"event_id"`
	RequesterID int64               `json:"requester_id"`
	Status      ParticipationStatus `json:"status"`
	Created     time.Time           `json:"created"`
}

// ModerationInput — пакетное решение инициатора по заявкам его события.
type ModerationInput struct {
	RequestIDs []int64
	Status     ParticipationStatus
}

type ModerationResult struct {
	Confirmed []*Request `json:"confirmed_requests"`
	Rejected  []*Request `json:"rejected_requests"`
}

// OrderForModeration выстраивает прочитанные заявки строго в порядке ids —
// этот порядок определяет приоритет при распределении мест. Отсутствующая
// заявка или заявка не в статусе PENDING отменяет весь пакет.
func OrderForModeration(requests []*Request, ids []int64) ([]*Request, error) {
	byID := make(map[int64]*Request, len(requests))
	for _, r := range requests {
		byID[r.ID] = r
	}

	ordered := make([]*Request, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, ErrRequestNotFound
		}
		if r.Status != ParticipationStatusPending {
			return nil, ErrRequestNotPending
		}
		ordered = append(ordered, r)
	}

	return ordered, nil
}

// ModerationVacancies возвращает число свободных мест перед пакетной
// модерацией. Уже исчерпанная вместимость — конфликт до обработки пакета.
func ModerationVacancies(limit int, confirmed int64) (int64, error) {
	if confirmed >= int64(limit) {
		return 0, ErrParticipantLimitReached
	}
	return int64(limit) - confirmed, nil
}

// AllocateVacancies распределяет свободные места по заявкам строго в порядке,
// заданном вызывающей стороной. Пока есть вакансии и целевой статус CONFIRMED,
// заявки подтверждаются; остаток всегда отклоняется. Все заявки должны быть
// PENDING — это проверяется до вызова.
func AllocateVacancies(requests []*Request, target ParticipationStatus, vacancies int64) *ModerationResult {
	res := &ModerationResult{}
	for _, r := range requests {
		if target == ParticipationStatusConfirmed && vacancies > 0 {
			r.Status = ParticipationStatusConfirmed
			res.Confirmed = append(res.Confirmed, r)
			vacancies--
			continue
		}
		r.Status = ParticipationStatusRejected
		res.Rejected = append(res.Rejected, r)
	}
	return res
}
