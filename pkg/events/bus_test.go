package events

import (
	"database/sql"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
)

var (
	_ watermillsql.Beginner        = (*sql.DB)(nil)
	_ watermillsql.ContextExecutor = (*sql.Tx)(nil)
)

// sql.Open is lazy, so construction must succeed without a reachable server.
func TestSQLConstructors_AcceptStdlibHandles(t *testing.T) {
	db, err := sql.Open("pgx", "postgres://127.0.0.1:1/unreachable")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tests := []struct {
		name       string
		initSchema bool
	}{
		{"startup publisher", true},
		{"outbox publisher", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, err := newSQLPublisher(db, tt.initSchema, watermill.NopLogger{})
			if err != nil {
				t.Fatalf("newSQLPublisher: %v", err)
			}
			_ = pub.Close()
		})
	}

	sub, err := newSQLSubscriber(db, "sales-consumer", watermill.NopLogger{})
	if err != nil {
		t.Fatalf("newSQLSubscriber: %v", err)
	}
	_ = sub.Close()
}
