package sync

import (
	"fmt"

	"preorder-sync/internal/domain"
)

// RowOutcome is one row's terminal state, kept for the report.
type RowOutcome struct {
	Line   int
	SKU    string
	Name   string
	Result domain.SyncResult
}

// Summary owns the per-row results and is the only place that decides the
// process exit status.
type Summary struct {
	Created int
	Updated int
	Skipped int
	Failed  int

	Rows []RowOutcome
}

func (s *Summary) Add(line int, sku, name string, res domain.SyncResult) {
	switch res.Status {
	case domain.StatusCreated:
		s.Created++
	case domain.StatusUpdated:
		s.Updated++
	case domain.StatusSkipped:
		s.Skipped++
	case domain.StatusFailed:
		s.Failed++
	}
	s.Rows = append(s.Rows, RowOutcome{Line: line, SKU: sku, Name: name, Result: res})
}

// ExitCode: 0 when at least one row converged, 2 otherwise (same contract as
// a structurally broken input file).
func (s *Summary) ExitCode() int {
	if s.Created+s.Updated > 0 {
		return 0
	}
	return 2
}

func (s *Summary) String() string {
	return fmt.Sprintf("created=%d updated=%d skipped=%d failed=%d", s.Created, s.Updated, s.Skipped, s.Failed)
}
