package mock

import (
	"context"

	"github.com/fwojciec/salience"
)

var _ salience.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of salience.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, r *salience.Report) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, r *salience.Report) error {
	return s.SaveFn(ctx, r)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}
