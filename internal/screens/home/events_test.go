package home

import (
	"context"

	"github.com/erininge/Time-Game/internal/store"
)

type nopEvents struct{}

func (nopEvents) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (nopEvents) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (nopEvents) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}
func (nopEvents) AnswerStats(context.Context) ([]store.KindStats, error) { return nil, nil }
