package dtos

import "github.com/google/uuid"

type BatchImportResult struct {
	Row         int        `json:"row"`
	Address     string     `json:"address"`
	Success     bool       `json:"success"`
	Reason      string     `json:"reason,omitempty"`
	CodeCheckID *uuid.UUID `json:"codeCheckId,omitempty"`
}

type BatchImportSummary struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []BatchImportResult `json:"results"`
}

// AddressRow is a non blank address cell with its 1-based spreadsheet row.
type AddressRow struct {
	Row     int
	Address string
}
