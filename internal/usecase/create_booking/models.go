package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string    // Имя клиента
	VehicleType   string    // Тип транспорта (Car / Motorcycle)
	VehicleNumber string    // Госномер
	Brand         string    // Марка из справочника
	Category      string    // Категория из справочника
	Model         string    // Модель из справочника
	ServiceType   string    // Тип обслуживания
	BookingDate   time.Time // Дата бронирования (без времени)
	TimeSlot      string    // Временное окно

	LastServiceDate *time.Time // Дата прошлого обслуживания (опционально)
	LastServiceKM   *int       // Пробег на прошлом обслуживании (опционально)
	ServiceItems    []string   // Выбранные работы (опционально)
	AdditionalNotes *string    // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string    // ID созданного бронирования
	CustomerName  string    // Имя клиента
	VehicleType   string    // Тип транспорта
	VehicleNumber string    // Госномер
	ServiceType   string    // Тип обслуживания
	BookingDate   time.Time // Дата бронирования
	TimeSlot      string    // Временное окно
	Status        string    // Статус бронирования
	Description   string    // Сводное описание заявки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
