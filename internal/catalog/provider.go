// Package catalog статический справочник транспорта и работ сервисного центра.
// Все данные собираются один раз при создании Provider и не изменяются.
package catalog

import (
	"strings"

	"github.com/m04kA/SMC-ServiceCenter/internal/domain"
)

// VehicleData справочник по одному типу ТС
type VehicleData struct {
	Brands     []string
	Categories []string
	// Models модели по категориям, в порядке обхода каталога
	Models map[string][]string
}

// SearchResult результат поиска по каталогу
type SearchResult struct {
	Type     domain.VehicleType
	Brand    string
	Category string
	Model    string
}

// Provider предоставляет доступ к каталогу транспорта, таксономии ремонтов
// и спискам работ. Все методы чистые и безопасны для конкурентного чтения.
type Provider struct {
	vehicles map[domain.VehicleType]VehicleData
}

// NewProvider строит справочные таблицы из статических данных
func NewProvider() *Provider {
	vehicles := make(map[domain.VehicleType]VehicleData, len(vehicleCatalog))

	for vType, data := range vehicleCatalog {
		models := make(map[string][]string, len(data.categories))
		for _, entry := range data.entries {
			models[entry.Category] = append(models[entry.Category], entry.Model)
		}
		vehicles[vType] = VehicleData{
			Brands:     data.brands,
			Categories: data.categories,
			Models:     models,
		}
	}

	return &Provider{vehicles: vehicles}
}

// VehicleTypes возвращает поддерживаемые типы ТС
func (p *Provider) VehicleTypes() []domain.VehicleType {
	return []domain.VehicleType{domain.VehicleCar, domain.VehicleMotorcycle}
}

// VehicleData возвращает справочник по типу ТС
func (p *Provider) VehicleData(vehicleType domain.VehicleType) (VehicleData, bool) {
	data, ok := p.vehicles[vehicleType]
	return data, ok
}

// Brands возвращает список брендов для типа ТС
func (p *Provider) Brands(vehicleType domain.VehicleType) []string {
	return p.vehicles[vehicleType].Brands
}

// Categories возвращает список категорий для типа ТС
func (p *Provider) Categories(vehicleType domain.VehicleType) []string {
	return p.vehicles[vehicleType].Categories
}

// Models возвращает модели категории для типа ТС
func (p *Provider) Models(vehicleType domain.VehicleType, category string) []string {
	return p.vehicles[vehicleType].Models[category]
}

// HasModel проверяет, что модель с таким брендом и категорией есть в каталоге
func (p *Provider) HasModel(vehicleType domain.VehicleType, brand, category, model string) bool {
	data, ok := vehicleCatalog[vehicleType]
	if !ok {
		return false
	}
	for _, entry := range data.entries {
		if entry.Brand == brand && entry.Category == category && entry.Model == model {
			return true
		}
	}
	return false
}

// RepairCategories возвращает категории ремонта для типа ТС
func (p *Provider) RepairCategories(vehicleType domain.VehicleType) []string {
	return repairCatalog[vehicleType].categories
}

// RepairItems возвращает работы указанной категории ремонта
func (p *Provider) RepairItems(vehicleType domain.VehicleType, repairCategory string) []string {
	return repairCatalog[vehicleType].items[repairCategory]
}

// RepairTypes возвращает полную таксономию ремонтов для типа ТС
func (p *Provider) RepairTypes(vehicleType domain.VehicleType) map[string][]string {
	return repairCatalog[vehicleType].items
}

// ServiceItems возвращает список работ для типа услуги.
// Для Repair работы выбираются из таксономии ремонтов, для Custom список
// не ограничен - в обоих случаях возвращается nil.
func (p *Provider) ServiceItems(vehicleType domain.VehicleType, serviceType domain.ServiceType) []string {
	byService, ok := serviceItemCatalog[vehicleType]
	if !ok {
		return nil
	}
	return byService[serviceType]
}

// Search ищет в каталоге по подстроке (без учета регистра) в бренде,
// категории или модели. Если vehicleType == nil, поиск идет по обоим типам.
// Порядок результатов следует порядку обхода каталога: бренд -> категория -> модель.
// Пустой запрос и отсутствие совпадений дают пустой список, ошибки не возникают.
func (p *Provider) Search(query string, vehicleType *domain.VehicleType) []SearchResult {
	results := make([]SearchResult, 0)
	if query == "" {
		return results
	}
	q := strings.ToLower(query)

	searchTypes := p.VehicleTypes()
	if vehicleType != nil {
		searchTypes = []domain.VehicleType{*vehicleType}
	}

	for _, vType := range searchTypes {
		data, ok := vehicleCatalog[vType]
		if !ok {
			continue
		}
		for _, entry := range data.entries {
			if strings.Contains(strings.ToLower(entry.Brand), q) ||
				strings.Contains(strings.ToLower(entry.Category), q) ||
				strings.Contains(strings.ToLower(entry.Model), q) {
				results = append(results, SearchResult{
					Type:     vType,
					Brand:    entry.Brand,
					Category: entry.Category,
					Model:    entry.Model,
				})
			}
		}
	}

	return results
}
