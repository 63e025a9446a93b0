package audit

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) Log(uid int64, action string, metadata string) {
	_, err := s.db.Exec(`
	INSERT INTO audit_logs(uid, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, uid, action, metadata, time.Now().Unix())

	if err != nil {
		s.log.Error("audit write failed",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
