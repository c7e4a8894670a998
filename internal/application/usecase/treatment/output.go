// Package treatment contains treatment-related use cases.
package treatment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// TreatmentOutput represents a treatment in use case outputs.
type TreatmentOutput struct {
	ID            uint
	AnimalID      uint
	TreatmentType string
	Medication    string
	Dosage        string
	TreatmentDate time.Time
	NextDueDate   *time.Time
	Outcome       string
	Cost          *decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toTreatmentOutput(t *entity.Treatment) *TreatmentOutput {
	return &TreatmentOutput{
		ID:            t.ID,
		AnimalID:      t.AnimalID,
		TreatmentType: t.TreatmentType,
		Medication:    t.Medication,
		Dosage:        t.Dosage,
		TreatmentDate: t.TreatmentDate,
		NextDueDate:   t.NextDueDate,
		Outcome:       t.Outcome,
		Cost:          t.Cost,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTreatmentOutputs(treatments []*entity.Treatment) []*TreatmentOutput {
	outputs := make([]*TreatmentOutput, 0, len(treatments))
	for _, t := range treatments {
		outputs = append(outputs, toTreatmentOutput(t))
	}
	return outputs
}

// resolveTreatmentType validates the raw type against the allow-list and
// substitutes the custom description when "Other" is selected.
func resolveTreatmentType(raw, customType string) (string, error) {
	treatmentType := entity.NormalizeTreatmentType(raw)
	if !entity.IsAllowedTreatmentType(treatmentType) {
		return "", errInvalidType(treatmentType)
	}
	if treatmentType == entity.TreatmentTypeOther {
		custom := entity.NormalizeTreatmentType(customType)
		if custom == "" {
			return "", errMissingCustomType()
		}
		return custom, nil
	}
	return treatmentType, nil
}

func errInvalidType(treatmentType string) error {
	return domainerror.NewTreatmentError(
		domainerror.ErrCodeInvalidTreatmentType,
		fmt.Sprintf("treatment type %q is not allowed", treatmentType),
		domainerror.ErrInvalidTreatmentType,
	)
}

func errMissingCustomType() error {
	return domainerror.NewTreatmentError(
		domainerror.ErrCodeMissingCustomType,
		"custom_type is required when treatment type is 'Other'",
		domainerror.ErrMissingCustomType,
	)
}
