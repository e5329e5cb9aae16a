package advisory

import (
	"fmt"
	"strings"
)

// PromptKind вид консультации
type PromptKind string

const (
	PromptDiagnostic   PromptKind = "diagnostic"
	PromptMaintenance  PromptKind = "maintenance"
	PromptCostEstimate PromptKind = "cost_estimate"
	PromptChat         PromptKind = "chat"
)

// IsValid проверяет, что вид консультации входит в перечисление
func (k PromptKind) IsValid() bool {
	switch k {
	case PromptDiagnostic, PromptMaintenance, PromptCostEstimate, PromptChat:
		return true
	}
	return false
}

// PromptParams параметры для построения промпта.
// Какие поля обязательны, зависит от вида консультации.
type PromptParams struct {
	VehicleType     string
	Brand           string
	Model           string
	Symptoms        string
	OdometerKM      int
	LastServiceDate string
	ServiceType     string
	ServiceItems    []string
	Question        string
}

// BuildPrompt собирает текст промпта по фиксированному шаблону
func BuildPrompt(kind PromptKind, params PromptParams) (string, error) {
	switch kind {
	case PromptDiagnostic:
		return fmt.Sprintf(
			"You are an experienced vehicle service advisor. A customer has a %s: %s %s. "+
				"Reported symptoms: %s. "+
				"List the most likely causes and the recommended workshop checks. Keep the answer short and practical.",
			params.VehicleType, params.Brand, params.Model, params.Symptoms,
		), nil
	case PromptMaintenance:
		return fmt.Sprintf(
			"You are an experienced vehicle service advisor. A customer has a %s: %s %s "+
				"with %d KM on the odometer, last serviced on %s. "+
				"Recommend the maintenance work due now. Keep the answer short and practical.",
			params.VehicleType, params.Brand, params.Model, params.OdometerKM, params.LastServiceDate,
		), nil
	case PromptCostEstimate:
		return fmt.Sprintf(
			"You are an experienced vehicle service advisor. A customer has a %s: %s %s "+
				"and requests %s covering: %s. "+
				"Give a rough cost range and the main cost drivers. Keep the answer short and practical.",
			params.VehicleType, params.Brand, params.Model, params.ServiceType,
			strings.Join(params.ServiceItems, ", "),
		), nil
	case PromptChat:
		return fmt.Sprintf(
			"You are an experienced vehicle service advisor. Answer the customer's question "+
				"briefly and practically: %s",
			params.Question,
		), nil
	}
	return "", fmt.Errorf("%w: unknown prompt kind %q", ErrInternal, kind)
}
