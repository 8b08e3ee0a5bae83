package dto

import "github.com/adilhusain01/aadil-rasheed-server/internal/model"

// UploadFailureDTO names a file that could not be processed; the rest
// of the batch is unaffected.
type UploadFailureDTO struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// UploadBatchDTO is the per-batch outcome: successes and, when present,
// named failures. A multi-file batch never gets an all-or-nothing
// verdict.
type UploadBatchDTO struct {
	Uploaded []*model.Upload     `json:"uploaded"`
	Failed   []*UploadFailureDTO `json:"failed,omitempty"`
}
