package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/palette"
	"github.com/giglog/giglog/internal/validate"
)

// CreateCustomPalette generates shade tokens from the seed colors, persists
// the palette, and makes it the user's active selection.
func CreateCustomPalette(userID, name string, seeds palette.SeedColors) (*models.UserColorPalette, error) {
	if name == "" || len(name) > 50 {
		return nil, validate.Error("Palette name is required and must be at most 50 characters")
	}
	for _, hex := range []string{seeds.GreenSeedHex, seeds.RedSeedHex, seeds.YellowSeedHex,
		seeds.BlueSeedHex, seeds.MagentaSeedHex, seeds.CyanSeedHex} {
		if err := validate.HexColor(hex); err != nil {
			return nil, err
		}
	}

	tokens, err := palette.Generate(seeds)
	if err != nil {
		return nil, validate.Error(err.Error())
	}

	encoded, err := json.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette tokens: %w", err)
	}

	record := models.UserColorPalette{
		UserID:            userID,
		Name:              name,
		GreenSeedHex:      seeds.GreenSeedHex,
		RedSeedHex:        seeds.RedSeedHex,
		YellowSeedHex:     seeds.YellowSeedHex,
		BlueSeedHex:       seeds.BlueSeedHex,
		MagentaSeedHex:    seeds.MagentaSeedHex,
		CyanSeedHex:       seeds.CyanSeedHex,
		GeneratedTokens:   string(encoded),
		GenerationVersion: palette.GenerationVersion,
	}

	if err := DB.Create(&record).Error; err != nil {
		return nil, err
	}

	if err := SetActivePalette(userID, models.PaletteTypeCustom, nil, &record.ID); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListCustomPalettes returns the user's palettes, newest first.
func ListCustomPalettes(userID string) ([]models.UserColorPalette, error) {
	var palettes []models.UserColorPalette
	err := DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&palettes).Error
	if err != nil {
		return nil, err
	}
	return palettes, nil
}

// SetActivePalette persists the user's palette selection. Preset selections
// need a preset name; custom selections need one of the user's palette IDs.
func SetActivePalette(userID, paletteType string, presetPalette, customPaletteID *string) error {
	switch paletteType {
	case models.PaletteTypePreset:
		if presetPalette == nil || *presetPalette == "" {
			return validate.Error("Preset palette name is required for preset selections")
		}
		customPaletteID = nil
	case models.PaletteTypeCustom:
		if customPaletteID == nil {
			return validate.Error("Custom palette ID is required for custom selections")
		}
		var owned models.UserColorPalette
		err := DB.Where("id = ? AND user_id = ?", *customPaletteID, userID).First(&owned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("palette %w", ErrNotFound)
			}
			return err
		}
		presetPalette = nil
	default:
		return validate.Error("Palette type must be preset or custom")
	}

	pref := models.UserAppearancePreference{
		UserID:                userID,
		ActivePaletteType:     paletteType,
		ActivePresetPalette:   presetPalette,
		ActiveCustomPaletteID: customPaletteID,
	}

	// One row per user; a repeat selection overwrites the previous one.
	return DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&pref).Error
}

// ActivePalette returns the user's persisted selection, defaulting to the
// stock preset when the user has never picked one.
func ActivePalette(userID string) (*models.UserAppearancePreference, error) {
	var pref models.UserAppearancePreference
	err := DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			preset := "tokyonight"
			return &models.UserAppearancePreference{
				UserID:              userID,
				ActivePaletteType:   models.PaletteTypePreset,
				ActivePresetPalette: &preset,
			}, nil
		}
		return nil, err
	}
	return &pref, nil
}
