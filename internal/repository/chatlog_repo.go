package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fanhub-backend/internal/models"
)

type ChatLogRepo struct {
	pool *pgxpool.Pool
}

func NewChatLogRepo(pool *pgxpool.Pool) *ChatLogRepo {
	return &ChatLogRepo{pool: pool}
}

func (r *ChatLogRepo) Record(ctx context.Context, ex *models.ChatExchange) error {
	if ex.SessionID == "" {
		ex.SessionID = "shared"
	}

	query := `
		INSERT INTO chat_exchanges (session_id, intent, source, message, reply)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.pool.QueryRow(ctx, query,
		ex.SessionID, ex.Intent, ex.Source, ex.Message, ex.Reply,
	).Scan(&ex.ID, &ex.CreatedAt)
}

func (r *ChatLogRepo) TotalExchanges(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM chat_exchanges").Scan(&count)
	return count, err
}

func (r *ChatLogRepo) CountByIntent(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT intent, COUNT(*)
		FROM chat_exchanges
		GROUP BY intent
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var intent string
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return nil, err
		}
		counts[intent] = count
	}
	return counts, rows.Err()
}

func (r *ChatLogRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM chat_exchanges WHERE created_at >= $1", since,
	).Scan(&count)
	return count, err
}

func (r *ChatLogRepo) DistinctSessions(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT session_id) FROM chat_exchanges",
	).Scan(&count)
	return count, err
}
