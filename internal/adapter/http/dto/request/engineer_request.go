package request

type SetupChecklistRequest struct {
	Items []string `json:"items" binding:"required"`
}

type ChecklistItemRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type StartJobRequest struct {
	Notes string `json:"notes"`
}

// SignOffRequest requires an explicit confirmation flag alongside the
// signer; both are checked in the usecase before anything is written.
type SignOffRequest struct {
	Confirmed bool   `json:"confirmed"`
	Signer    string `json:"signer"`
	Notes     string `json:"notes"`
}

type ReopenRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type EvidenceRequest struct {
	Category string   `json:"category" binding:"required"`
	Refs     []string `json:"refs" binding:"required"`
	Replace  bool     `json:"replace"`
}
