package migrate_legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// LegacyRoomType тип номера в старом формате.
// BaseGuests и MaxCapacity читаются, но не переносятся.
type LegacyRoomType struct {
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	BaseGuests    *int             `json:"base_guests,omitempty"`
	MaxCapacity   *int             `json:"max_capacity,omitempty"`
	BasePrice     *decimal.Decimal `json:"base_price,omitempty"`
	DetailPageURL string           `json:"detail_page_url,omitempty"`

	Beds          *int    `json:"beds,omitempty"`
	BaseOccupancy *int    `json:"base_occupancy,omitempty"`
	MaxTotal      *int    `json:"max_total,omitempty"`
	MaxAdults     *int    `json:"max_adults,omitempty"`
	MaxKids       *int    `json:"max_kids,omitempty"`
	OverflowRule  *string `json:"overflow_rule,omitempty"`
}

// HasOccupancy проверяет, что тип уже содержит параметры размещения
func (l *LegacyRoomType) HasOccupancy() bool {
	return l.Beds != nil && l.BaseOccupancy != nil
}

// Request модель запроса миграции
type Request struct {
	RoomTypes []LegacyRoomType
	Overwrite bool // перезаписывать уже существующие slug
	DryRun    bool // только посчитать результат, ничего не сохранять
}

// Response итог миграции
type Response struct {
	Migrated  []string // получили параметры размещения по умолчанию
	Canonical []string // уже были в новом формате
	Skipped   []string // slug уже есть в реестре
	Seeded    bool     // легаси реестр пуст, сохранены типы по умолчанию
}

// ParseLegacy разбирает легаси JSON: объект, ключами которого являются slug, или массив типов
func ParseLegacy(data []byte) ([]LegacyRoomType, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var list []LegacyRoomType
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return list, nil
	}

	var keyed map[string]LegacyRoomType
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slugs := make([]string, 0, len(keyed))
	for slug := range keyed {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	list := make([]LegacyRoomType, 0, len(keyed))
	for _, slug := range slugs {
		rt := keyed[slug]
		if rt.Slug == "" {
			rt.Slug = slug
		}
		list = append(list, rt)
	}
	return list, nil
}
