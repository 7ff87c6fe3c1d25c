package occupancy

import "github.com/m04kA/SMC-HotelQuoteService/internal/domain"

// Result результат проверки состава гостей для типа номера
type Result struct {
	Valid    bool
	Kind     ErrorKind
	RoomType *domain.RoomType
}

// Err возвращает *ValidationError для невалидного результата, иначе nil
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Kind: r.Kind, RoomType: r.RoomType}
}

// Validate проверяет состав гостей против правил типа номера.
// Правила проверяются в фиксированном порядке, выигрывает первое нарушенное.
func Validate(roomType *domain.RoomType, adults, kids int) Result {
	// 1. Тип номера должен существовать
	if roomType == nil {
		return Result{Kind: KindInvalidRoomType}
	}

	// 2. Минимум один взрослый
	if adults < 1 {
		return reject(roomType, KindNoAdult)
	}

	// 3. Отрицательное количество детей недопустимо
	if kids < 0 {
		return reject(roomType, KindNoGuests)
	}

	// 4-5. Жесткие лимиты по взрослым и детям
	if adults > roomType.MaxAdults {
		return reject(roomType, KindTooManyAdults)
	}
	if kids > roomType.MaxKids {
		return reject(roomType, KindTooManyKids)
	}

	// Оба слагаемых уже ограничены лимитами типа, сумма не переполняется
	total := adults + kids

	// 6. Общая вместимость
	if total > roomType.MaxTotal {
		return reject(roomType, KindCapacityExceeded)
	}

	// 7. Правило переполнения, только сверх базового размещения
	if !roomType.IncludedInBase(total) && !roomType.AllowsAdultOverflow() {
		if adults > roomType.BaseOccupancy {
			return reject(roomType, KindAdultOverflowNotAllowed)
		}
	}

	return Result{Valid: true, RoomType: roomType}
}

// ValidateSlug ищет тип номера в снимке реестра и проверяет состав гостей
func ValidateSlug(roomTypes domain.RoomTypes, slug string, adults, kids int) Result {
	roomType, ok := roomTypes.Find(slug)
	if !ok {
		return Result{Kind: KindInvalidRoomType}
	}
	return Validate(roomType, adults, kids)
}

func reject(roomType *domain.RoomType, kind ErrorKind) Result {
	return Result{Kind: kind, RoomType: roomType}
}
