package book_session

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент отсутствует в ростере
	ErrClientNotFound = errors.New("book_session: client not found")

	// ErrSlotUnavailable возвращается, когда на этот день недели нет окон расписания (выходной)
	ErrSlotUnavailable = errors.New("book_session: no bookable slots on this day")

	// ErrUnknownSlot возвращается, когда время начала не совпадает ни с одним окном расписания
	ErrUnknownSlot = errors.New("book_session: start time does not match a schedule window")

	// ErrSlotFull возвращается, когда все места в слоте заняты
	ErrSlotFull = errors.New("book_session: slot capacity reached")

	// ErrDuplicateBooking возвращается, когда клиент уже держит активную сессию в этом слоте
	ErrDuplicateBooking = errors.New("book_session: client already booked this slot")

	// ErrInvalidDate возвращается при попытке забронировать прошедшую дату
	ErrInvalidDate = errors.New("book_session: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
