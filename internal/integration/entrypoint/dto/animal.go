package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/usecase/animal"
	"github.com/goat-farm/backend/internal/domain/report"
)

// CreateAnimalRequest represents the request body for animal creation.
type CreateAnimalRequest struct {
	TagID             string           `json:"tag_id" binding:"required,min=1,max=50"`
	Breed             string           `json:"breed" binding:"required,min=1,max=100"`
	Sex               string           `json:"sex" binding:"required"`
	BirthDate         *string          `json:"birth_date"`
	Weight            *float64         `json:"weight"`
	HealthStatus      string           `json:"health_status"`
	Notes             string           `json:"notes"`
	Category          string           `json:"category"`
	AcquisitionDate   *string          `json:"acquisition_date"`
	AcquisitionPrice  *decimal.Decimal `json:"acquisition_price"`
	AcquisitionSource string           `json:"acquisition_source"`
	MotherID          *uint            `json:"mother_id"`
	FatherID          *uint            `json:"father_id"`
}

// UpdateAnimalRequest represents the request body for animal update. Absent
// fields are left unchanged.
type UpdateAnimalRequest struct {
	TagID             *string          `json:"tag_id"`
	Breed             *string          `json:"breed"`
	Sex               *string          `json:"sex"`
	BirthDate         *string          `json:"birth_date"`
	Weight            *float64         `json:"weight"`
	HealthStatus      *string          `json:"health_status"`
	Notes             *string          `json:"notes"`
	Category          *string          `json:"category"`
	Status            *string          `json:"status"`
	AcquisitionDate   *string          `json:"acquisition_date"`
	AcquisitionPrice  *decimal.Decimal `json:"acquisition_price"`
	AcquisitionSource *string          `json:"acquisition_source"`
	MotherID          *uint            `json:"mother_id"`
	FatherID          *uint            `json:"father_id"`
}

// AnimalResponse represents an animal in API responses.
type AnimalResponse struct {
	ID                uint     `json:"id"`
	TagID             string   `json:"tag_id"`
	Breed             string   `json:"breed"`
	Sex               string   `json:"sex"`
	BirthDate         *string  `json:"birth_date"`
	Age               *string  `json:"age"`
	Weight            *float64 `json:"weight"`
	HealthStatus      string   `json:"health_status"`
	Notes             string   `json:"notes"`
	Category          string   `json:"category"`
	Status            string   `json:"status"`
	AcquisitionDate   *string  `json:"acquisition_date"`
	AcquisitionPrice  *string  `json:"acquisition_price"`
	AcquisitionSource string   `json:"acquisition_source"`
	MotherID          *uint    `json:"mother_id"`
	FatherID          *uint    `json:"father_id"`
	OffspringCount    int64    `json:"offspring_count"`
}

// TreatmentSummaryResponse represents a treatment nested under an animal.
type TreatmentSummaryResponse struct {
	ID            uint    `json:"id"`
	TreatmentType string  `json:"treatment_type"`
	Medication    string  `json:"medication"`
	Dosage        string  `json:"dosage"`
	TreatmentDate string  `json:"treatment_date"`
	NextDueDate   *string `json:"next_due_date"`
	Outcome       string  `json:"outcome"`
	Cost          *string `json:"cost"`
	Notes         string  `json:"notes"`
}

// SaleSummaryResponse represents the sale nested under an animal.
type SaleSummaryResponse struct {
	ID            uint   `json:"id"`
	BuyerName     string `json:"buyer_name"`
	SaleDate      string `json:"sale_date"`
	Price         string `json:"price"`
	ReceiptNumber string `json:"receipt_number"`
	Status        string `json:"status"`
	Profit        string `json:"profit"`
}

// AnimalDetailResponse represents the full animal detail.
type AnimalDetailResponse struct {
	AnimalResponse
	Treatments []TreatmentSummaryResponse `json:"treatments"`
	Sale       *SaleSummaryResponse       `json:"sale"`
}

// CreateAnimalResponse represents the response for animal creation.
type CreateAnimalResponse struct {
	AnimalResponse
	Message string `json:"message"`
}

// AnimalListResponse represents a list of animals.
type AnimalListResponse struct {
	Animals []AnimalResponse `json:"animals"`
	Count   int              `json:"count"`
}

// CategoryCountResponse is one bucket of the herd category summary.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AnimalTotalsResponse represents the herd headcount summary.
type AnimalTotalsResponse struct {
	Total           int                     `json:"total"`
	CategorySummary []CategoryCountResponse `json:"category_summary"`
}

// ToAnimalResponse converts a use case output to its response DTO.
func ToAnimalResponse(output *animal.AnimalOutput) AnimalResponse {
	response := AnimalResponse{
		ID:                output.ID,
		TagID:             output.TagID,
		Breed:             output.Breed,
		Sex:               string(output.Sex),
		BirthDate:         FormatDate(output.BirthDate),
		Age:               output.Age,
		Weight:            output.Weight,
		HealthStatus:      output.HealthStatus,
		Notes:             output.Notes,
		Category:          output.Category,
		Status:            string(output.Status),
		AcquisitionDate:   FormatDate(output.AcquisitionDate),
		AcquisitionSource: output.AcquisitionSource,
		MotherID:          output.MotherID,
		FatherID:          output.FatherID,
		OffspringCount:    output.OffspringCount,
	}
	if output.AcquisitionPrice != nil {
		price := output.AcquisitionPrice.StringFixed(2)
		response.AcquisitionPrice = &price
	}
	return response
}

// ToCreateAnimalResponse wraps a freshly created animal with a confirmation
// message.
func ToCreateAnimalResponse(output *animal.AnimalOutput) CreateAnimalResponse {
	return CreateAnimalResponse{
		AnimalResponse: ToAnimalResponse(output),
		Message:        "Animal added successfully",
	}
}

// ToAnimalListResponse converts a slice of outputs to a list response.
func ToAnimalListResponse(outputs []*animal.AnimalOutput) AnimalListResponse {
	animals := make([]AnimalResponse, 0, len(outputs))
	for _, o := range outputs {
		animals = append(animals, ToAnimalResponse(o))
	}
	return AnimalListResponse{Animals: animals, Count: len(animals)}
}

// ToAnimalDetailResponse converts a detail output to its response DTO.
func ToAnimalDetailResponse(output *animal.GetAnimalOutput) AnimalDetailResponse {
	detail := AnimalDetailResponse{
		AnimalResponse: ToAnimalResponse(output.Animal),
		Treatments:     make([]TreatmentSummaryResponse, 0, len(output.Treatments)),
	}
	for _, t := range output.Treatments {
		detail.Treatments = append(detail.Treatments, TreatmentSummaryResponse{
			ID:            t.ID,
			TreatmentType: t.TreatmentType,
			Medication:    t.Medication,
			Dosage:        t.Dosage,
			TreatmentDate: formatDateValue(t.TreatmentDate),
			NextDueDate:   FormatDate(t.NextDueDate),
			Outcome:       t.Outcome,
			Cost:          t.Cost,
			Notes:         t.Notes,
		})
	}
	if output.Sale != nil {
		detail.Sale = &SaleSummaryResponse{
			ID:            output.Sale.ID,
			BuyerName:     output.Sale.BuyerName,
			SaleDate:      formatDateValue(output.Sale.SaleDate),
			Price:         output.Sale.Price,
			ReceiptNumber: output.Sale.ReceiptNumber,
			Status:        string(output.Sale.Status),
			Profit:        output.Sale.Profit,
		}
	}
	return detail
}

// ToAnimalTotalsResponse converts the herd summary to its response DTO.
func ToAnimalTotalsResponse(output *animal.AnimalTotalsOutput) AnimalTotalsResponse {
	return AnimalTotalsResponse{
		Total:           output.Total,
		CategorySummary: toCategoryCounts(output.CategorySummary),
	}
}

func toCategoryCounts(counts []report.CategoryCount) []CategoryCountResponse {
	summary := make([]CategoryCountResponse, 0, len(counts))
	for _, c := range counts {
		summary = append(summary, CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	return summary
}
