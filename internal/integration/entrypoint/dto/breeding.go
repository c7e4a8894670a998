package dto

import (
	"github.com/goat-farm/backend/internal/application/usecase/breeding"
)

// CreateBreedingRecordRequest represents the request body for breeding record
// creation.
type CreateBreedingRecordRequest struct {
	DoeID      uint   `json:"doe_id" binding:"required"`
	BuckID     uint   `json:"buck_id" binding:"required"`
	MatingDate string `json:"mating_date" binding:"required"`
	Notes      string `json:"notes"`
}

// BreedingRecordResponse represents a breeding record in API responses.
type BreedingRecordResponse struct {
	ID                  uint   `json:"id"`
	DoeID               uint   `json:"doe_id"`
	BuckID              uint   `json:"buck_id"`
	MatingDate          string `json:"mating_date"`
	ExpectedKiddingDate string `json:"expected_kidding_date"`
	Status              string `json:"status"`
	Notes               string `json:"notes"`
}

// BreedingRecordListResponse represents a list of breeding records.
type BreedingRecordListResponse struct {
	Records []BreedingRecordResponse `json:"records"`
	Count   int                      `json:"count"`
}

// ToBreedingRecordResponse converts a use case output to its response DTO.
func ToBreedingRecordResponse(output *breeding.BreedingRecordOutput) BreedingRecordResponse {
	return BreedingRecordResponse{
		ID:                  output.ID,
		DoeID:               output.DoeID,
		BuckID:              output.BuckID,
		MatingDate:          formatDateValue(output.MatingDate),
		ExpectedKiddingDate: formatDateValue(output.ExpectedKiddingDate),
		Status:              output.Status,
		Notes:               output.Notes,
	}
}

// ToBreedingRecordListResponse converts a slice of outputs to a list response.
func ToBreedingRecordListResponse(outputs []*breeding.BreedingRecordOutput) BreedingRecordListResponse {
	records := make([]BreedingRecordResponse, 0, len(outputs))
	for _, o := range outputs {
		records = append(records, ToBreedingRecordResponse(o))
	}
	return BreedingRecordListResponse{Records: records, Count: len(records)}
}
