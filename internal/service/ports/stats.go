package ports

import "context"

// StatsClient — клиент внешнего сервиса статистики. Счетчики просмотров
// используются только для отображения и никогда — для решений о допуске.
type StatsClient interface {
	// RecordHit отправляет факт обращения, ошибки не возвращает (fire-and-forget).
	RecordHit(ctx context.Context, uri, ip string)
	ViewCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}
