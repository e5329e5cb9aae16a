package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// buildDescription собирает сводное описание заявки.
// Порядок строк фиксированный: транспорт, прошлое обслуживание (если указано),
// выбранные работы (если есть), дополнительные заметки (если есть).
func buildDescription(req *Request) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s%s %s (%s)\n", domain.DescVehiclePrefix, req.Brand, req.Model, req.Category))

	if req.LastServiceDate != nil && req.LastServiceKM != nil {
		sb.WriteString(fmt.Sprintf("%s%s, %d KM\n",
			domain.DescLastServicePrefix,
			req.LastServiceDate.Format(domain.DateFormat),
			*req.LastServiceKM,
		))
	}

	if len(req.ServiceItems) > 0 {
		sb.WriteString(fmt.Sprintf("%s%s\n", domain.DescServiceItemsPrefix, strings.Join(req.ServiceItems, ", ")))
	}

	if req.AdditionalNotes != nil && strings.TrimSpace(*req.AdditionalNotes) != "" {
		sb.WriteString(fmt.Sprintf("%s%s", domain.DescAdditionalNotesPrefix, *req.AdditionalNotes))
	}

	return strings.TrimRight(sb.String(), "\n")
}
