package occupancy

import "github.com/m04kA/SMC-HotelQuoteService/internal/domain"

// Outcome классификация результата подбора типов номеров
type Outcome string

const (
	OutcomeForced   Outcome = "forced"   // подходит ровно один тип
	OutcomeChoice   Outcome = "choice"   // подходит несколько типов, выбирает гость
	OutcomeRejected Outcome = "rejected" // не подходит ни один тип
)

// Rejection причина, по которой тип номера не подходит
type Rejection struct {
	Slug     string
	Kind     ErrorKind
	RoomType *domain.RoomType
}

// Resolution результат подбора типов номеров для состава гостей
type Resolution struct {
	Outcome    Outcome
	Forced     string   // пусто, если Outcome != forced
	Eligible   []string // в порядке реестра
	Rejections []Rejection
}

// IsEligible проверяет, что тип номера подходит под состав гостей
func (r *Resolution) IsEligible(slug string) bool {
	for _, s := range r.Eligible {
		if s == slug {
			return true
		}
	}
	return false
}

// PrimaryRejection возвращает основную причину отказа, когда не подошел ни один тип.
// При пустом реестре причиной считается KindInvalidRoomType.
func (r *Resolution) PrimaryRejection() (Rejection, bool) {
	if r.Outcome != OutcomeRejected {
		return Rejection{}, false
	}
	if len(r.Rejections) == 0 {
		return Rejection{Kind: KindInvalidRoomType}, true
	}
	return r.Rejections[0], true
}

// Err возвращает ошибку основной причины отказа или nil
func (r *Resolution) Err() error {
	rejection, ok := r.PrimaryRejection()
	if !ok {
		return nil
	}
	return &ValidationError{Kind: rejection.Kind, RoomType: rejection.RoomType}
}

// Resolve прогоняет валидатор по всем типам номеров снимка реестра
func Resolve(roomTypes domain.RoomTypes, adults, kids int) Resolution {
	res := Resolution{
		Eligible:   make([]string, 0, len(roomTypes)),
		Rejections: make([]Rejection, 0),
	}

	for _, roomType := range roomTypes {
		result := Validate(roomType, adults, kids)
		if result.Valid {
			res.Eligible = append(res.Eligible, roomType.Slug)
			continue
		}
		res.Rejections = append(res.Rejections, Rejection{
			Slug:     roomType.Slug,
			Kind:     result.Kind,
			RoomType: roomType,
		})
	}

	switch len(res.Eligible) {
	case 0:
		res.Outcome = OutcomeRejected
	case 1:
		res.Outcome = OutcomeForced
		res.Forced = res.Eligible[0]
	default:
		res.Outcome = OutcomeChoice
	}

	return res
}
