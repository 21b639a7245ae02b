package domain

import "errors"

// ErrDuplicateSKU signals that a create hit an already-taken natural key.
// The store client maps the platform's message onto this sentinel; the
// orchestrator answers with exactly one re-locate.
var ErrDuplicateSKU = errors.New("duplicate sku")
