package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Description line labels.
// Порядок строк в описании фиксированный: транспорт, последнее ТО,
// выбранные работы, дополнительные заметки.
const (
	DescVehiclePrefix         = "Vehicle: "
	DescLastServicePrefix     = "Last Service: "
	DescServiceItemsPrefix    = "Service Items: "
	DescAdditionalNotesPrefix = "Additional Notes: "
)

// TimeSlots список всех доступных временных слотов в порядке следования за день
var TimeSlots = []TimeSlot{
	SlotMorning,
	SlotLateMorning,
	SlotAfternoon,
	SlotLateAfternoon,
}

// BookingStatuses список всех статусов бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// StaffDuties список всех должностей персонала
var StaffDuties = []StaffDuty{
	DutyMechanic,
	DutyHelper,
	DutyManager,
	DutyReceptionist,
}

// StockStatuses список всех статусов наличия
var StockStatuses = []StockStatus{
	StockInStock,
	StockLowStock,
	StockOutOfStock,
}
