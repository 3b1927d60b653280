package streak

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Repository loads and saves the single streak record.
type Repository interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
}

// Service serializes read-modify-write of the streak record.
type Service struct {
	repo Repository
	log  logrus.FieldLogger
	now  func() time.Time

	mu sync.Mutex
}

// NewService returns a Service backed by repo. A nil logger discards output.
func NewService(repo Repository, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Current returns the stored record. A failed read yields Default.
func (s *Service) Current(ctx context.Context) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Touch records activity for today and returns the resulting record.
// The record is only written when it changes.
func (s *Service) Touch(ctx context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, changed := Update(s.load(ctx), s.now())
	if !changed {
		return rec, nil
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return rec, fmt.Errorf("save streak: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"streak": rec.Streak,
		"day":    *rec.LastActiveDay,
	}).Debug("streak updated")
	return rec, nil
}

func (s *Service) load(ctx context.Context) Record {
	rec, err := s.repo.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("streak record unreadable, starting over")
		return Default()
	}
	if rec.Streak < 0 {
		s.log.WithField("streak", rec.Streak).Warn("negative streak in record, starting over")
		return Default()
	}
	return rec
}
