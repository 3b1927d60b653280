package streak

import (
	"context"
	"errors"
	"testing"
	"time"
)

func day(s string) *string { return &s }

func TestUpdate(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local)

	tests := []struct {
		name        string
		rec         Record
		wantStreak  int
		wantChanged bool
	}{
		{"first run", Default(), 1, true},
		{"same day", Record{Streak: 4, LastActiveDay: day("2026-03-10")}, 4, false},
		{"yesterday", Record{Streak: 4, LastActiveDay: day("2026-03-09")}, 5, true},
		{"three days ago", Record{Streak: 4, LastActiveDay: day("2026-03-07")}, 1, true},
		{"future day", Record{Streak: 4, LastActiveDay: day("2026-03-11")}, 1, true},
		{"garbled day", Record{Streak: 4, LastActiveDay: day("tuesday")}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Update(tt.rec, now)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if got.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", got.Streak, tt.wantStreak)
			}
			if got.LastActiveDay == nil || *got.LastActiveDay != "2026-03-10" {
				t.Errorf("LastActiveDay = %v, want 2026-03-10", got.LastActiveDay)
			}
		})
	}
}

func TestUpdate_AcrossMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 5, 0, 0, time.Local)
	got, _ := Update(Record{Streak: 2, LastActiveDay: day("2026-02-28")}, now)
	if got.Streak != 3 {
		t.Errorf("Streak = %d, want 3", got.Streak)
	}
}

func TestUpdate_DoesNotAliasInput(t *testing.T) {
	rec := Record{Streak: 1, LastActiveDay: day("2026-03-09")}
	Update(rec, time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local))
	if *rec.LastActiveDay != "2026-03-09" {
		t.Errorf("input record modified: %s", *rec.LastActiveDay)
	}
}

type memRepo struct {
	rec     Record
	loadErr error
	saveErr error
	saves   int
}

func (m *memRepo) Load(context.Context) (Record, error) {
	return m.rec, m.loadErr
}

func (m *memRepo) Save(_ context.Context, rec Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rec = rec
	m.saves++
	return nil
}

func TestService_Touch(t *testing.T) {
	repo := &memRepo{rec: Record{Streak: 2, LastActiveDay: day("2026-03-09")}}
	svc := NewService(repo, nil)
	svc.SetClock(func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local) })

	rec, err := svc.Touch(context.Background())
	if err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if rec.Streak != 3 || repo.saves != 1 {
		t.Errorf("after first touch streak=%d saves=%d, want 3 and 1", rec.Streak, repo.saves)
	}

	rec, err = svc.Touch(context.Background())
	if err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if rec.Streak != 3 || repo.saves != 1 {
		t.Errorf("after second touch streak=%d saves=%d, want 3 and 1", rec.Streak, repo.saves)
	}
}

func TestService_ReadFailureUsesDefault(t *testing.T) {
	repo := &memRepo{loadErr: errors.New("corrupt")}
	svc := NewService(repo, nil)

	if got := svc.Current(context.Background()); got.Streak != 0 || got.LastActiveDay != nil {
		t.Errorf("Current() = %+v, want default", got)
	}

	rec, err := svc.Touch(context.Background())
	if err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if rec.Streak != 1 {
		t.Errorf("Streak = %d, want 1", rec.Streak)
	}
}

func TestService_SaveFailure(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	svc := NewService(repo, nil)
	if _, err := svc.Touch(context.Background()); err == nil {
		t.Fatal("expected save error")
	}
}
