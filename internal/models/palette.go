package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Active palette source types.
const (
	PaletteTypePreset = "preset"
	PaletteTypeCustom = "custom"
)

// UserColorPalette is a user-created color palette. The six seed colors are
// what the user picked; GeneratedTokens holds the derived shade map persisted
// as JSON so clients never re-run the generation algorithm.
type UserColorPalette struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	GreenSeedHex   string `gorm:"not null" json:"green_seed_hex"`
	RedSeedHex     string `gorm:"not null" json:"red_seed_hex"`
	YellowSeedHex  string `gorm:"not null" json:"yellow_seed_hex"`
	BlueSeedHex    string `gorm:"not null" json:"blue_seed_hex"`
	MagentaSeedHex string `gorm:"not null" json:"magenta_seed_hex"`
	CyanSeedHex    string `gorm:"not null" json:"cyan_seed_hex"`

	GeneratedTokens   string `gorm:"not null" json:"-"`
	GenerationVersion int    `gorm:"not null" json:"generation_version"`

	// Relationships
	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (p *UserColorPalette) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// UserAppearancePreference is the persisted active palette selection for a
// user. One row per user.
type UserAppearancePreference struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`

	ActivePaletteType     string  `gorm:"not null;default:preset" json:"active_palette_type"`
	ActivePresetPalette   *string `json:"active_preset_palette"`
	ActiveCustomPaletteID *string `json:"active_custom_palette_id"`
}
