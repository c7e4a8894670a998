package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/usecase/treatment"
)

// CreateTreatmentRequest represents the request body for treatment creation.
// CustomType carries the concrete type when TreatmentType is "Other".
type CreateTreatmentRequest struct {
	AnimalID      uint             `json:"animal_id" binding:"required"`
	TreatmentType string           `json:"treatment_type" binding:"required"`
	CustomType    string           `json:"custom_type"`
	Medication    string           `json:"medication"`
	Dosage        string           `json:"dosage"`
	TreatmentDate *string          `json:"treatment_date"`
	NextDueDate   *string          `json:"next_due_date"`
	Outcome       string           `json:"outcome"`
	Cost          *decimal.Decimal `json:"cost"`
	Notes         string           `json:"notes"`
}

// UpdateTreatmentRequest represents the request body for treatment update.
type UpdateTreatmentRequest struct {
	TreatmentType *string          `json:"treatment_type"`
	CustomType    string           `json:"custom_type"`
	Medication    *string          `json:"medication"`
	Dosage        *string          `json:"dosage"`
	TreatmentDate *string          `json:"treatment_date"`
	NextDueDate   *string          `json:"next_due_date"`
	Outcome       *string          `json:"outcome"`
	Cost          *decimal.Decimal `json:"cost"`
	Notes         *string          `json:"notes"`
}

// TreatmentResponse represents a treatment in API responses.
type TreatmentResponse struct {
	ID            uint    `json:"id"`
	AnimalID      uint    `json:"animal_id"`
	TreatmentType string  `json:"treatment_type"`
	Medication    string  `json:"medication"`
	Dosage        string  `json:"dosage"`
	TreatmentDate string  `json:"treatment_date"`
	NextDueDate   *string `json:"next_due_date"`
	Outcome       string  `json:"outcome"`
	Cost          *string `json:"cost"`
	Notes         string  `json:"notes"`
}

// CreateTreatmentResponse represents the response for treatment creation.
type CreateTreatmentResponse struct {
	Treatment      TreatmentResponse `json:"treatment"`
	ExpenseCreated bool              `json:"expense_created"`
}

// TreatmentListResponse represents a list of treatments.
type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Count      int                 `json:"count"`
}

// ToTreatmentResponse converts a use case output to its response DTO.
func ToTreatmentResponse(output *treatment.TreatmentOutput) TreatmentResponse {
	response := TreatmentResponse{
		ID:            output.ID,
		AnimalID:      output.AnimalID,
		TreatmentType: output.TreatmentType,
		Medication:    output.Medication,
		Dosage:        output.Dosage,
		TreatmentDate: formatDateValue(output.TreatmentDate),
		NextDueDate:   FormatDate(output.NextDueDate),
		Outcome:       output.Outcome,
		Notes:         output.Notes,
	}
	if output.Cost != nil {
		cost := output.Cost.StringFixed(2)
		response.Cost = &cost
	}
	return response
}

// ToTreatmentListResponse converts a slice of outputs to a list response.
func ToTreatmentListResponse(outputs []*treatment.TreatmentOutput) TreatmentListResponse {
	treatments := make([]TreatmentResponse, 0, len(outputs))
	for _, o := range outputs {
		treatments = append(treatments, ToTreatmentResponse(o))
	}
	return TreatmentListResponse{Treatments: treatments, Count: len(treatments)}
}
