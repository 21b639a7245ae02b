package domain

// Status is the terminal state of one row.
type Status string

const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// SyncResult is the per-row outcome. ProductID is set for created/updated,
// Reason for skipped/failed.
type SyncResult struct {
	Status    Status
	ProductID string
	Reason    string
}

func Created(id string) SyncResult { return SyncResult{Status: StatusCreated, ProductID: id} }

func Updated(id string) SyncResult { return SyncResult{Status: StatusUpdated, ProductID: id} }

func Skipped(reason string) SyncResult { return SyncResult{Status: StatusSkipped, Reason: reason} }

func Failed(reason string) SyncResult { return SyncResult{Status: StatusFailed, Reason: reason} }
