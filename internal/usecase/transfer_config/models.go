package transfer_config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	roomTypeModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes/models"
	settingsModels "github.com/m04kA/SMC-HotelQuoteService/internal/service/settings/models"
)

// DocumentVersion версия формата документа экспорта
const DocumentVersion = 1

// Document документ экспорта и импорта конфигурации.
// При импорте применяются только присутствующие поля.
type Document struct {
	Version    int                                   `json:"version"`
	ExportedAt *time.Time                            `json:"exportedAt,omitempty"`
	Settings   *settingsModels.UpdateSettingsRequest `json:"settings,omitempty"`
	RoomTypes  []roomTypeModels.RoomTypeInput        `json:"roomTypes,omitempty"`
}

// IsEmpty проверяет, что документ ничего не меняет
func (d *Document) IsEmpty() bool {
	return (d.Settings == nil || d.Settings.IsEmpty()) && len(d.RoomTypes) == 0
}

// ImportResult итог импорта
type ImportResult struct {
	SettingsUpdated bool     `json:"settingsUpdated"`
	RoomTypesSaved  []string `json:"roomTypesSaved"`
}

// ParseDocument разбирает JSON документ импорта
func ParseDocument(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, doc.Version)
	}

	if doc.IsEmpty() {
		return nil, ErrEmptyDocument
	}

	return &doc, nil
}
