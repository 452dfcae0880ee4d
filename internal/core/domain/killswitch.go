package domain

import "time"

// KillSwitchState is the process-wide incident gate. It is persisted so a
// restart cannot lose an active gate; every financial entry point consults
// it before mutating the ledger. In-flight settlement keeps running while
// the switch is active so already-committed obligations are honored.
type KillSwitchState struct {
	Active      bool       `json:"active"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	ActivatedBy string     `json:"activated_by,omitempty"`
}
