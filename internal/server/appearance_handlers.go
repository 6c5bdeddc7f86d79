package server

import (
	"encoding/json"
	"net/http"

	"github.com/giglog/giglog/internal/db"
	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/palette"
)

type createPaletteRequest struct {
	Name           string `json:"name"`
	GreenSeedHex   string `json:"green_seed_hex"`
	RedSeedHex     string `json:"red_seed_hex"`
	YellowSeedHex  string `json:"yellow_seed_hex"`
	BlueSeedHex    string `json:"blue_seed_hex"`
	MagentaSeedHex string `json:"magenta_seed_hex"`
	CyanSeedHex    string `json:"cyan_seed_hex"`
}

type setActivePaletteRequest struct {
	PaletteType     string  `json:"palette_type"`
	PresetPalette   *string `json:"preset_palette"`
	CustomPaletteID *string `json:"custom_palette_id"`
}

type activePaletteResponse struct {
	PaletteType     string  `json:"palette_type"`
	PresetPalette   *string `json:"preset_palette"`
	CustomPaletteID *string `json:"custom_palette_id"`
}

type customPaletteResponse struct {
	*models.UserColorPalette
	GeneratedTokens *palette.Tokens `json:"generated_tokens"`
}

func toPaletteResponse(record *models.UserColorPalette) customPaletteResponse {
	tokens := &palette.Tokens{}
	// Stored tokens were produced by palette.Generate; a decode failure
	// would mean the row was corrupted outside the application.
	_ = json.Unmarshal([]byte(record.GeneratedTokens), tokens)
	return customPaletteResponse{UserColorPalette: record, GeneratedTokens: tokens}
}

func toActiveResponse(pref *models.UserAppearancePreference) activePaletteResponse {
	return activePaletteResponse{
		PaletteType:     pref.ActivePaletteType,
		PresetPalette:   pref.ActivePresetPalette,
		CustomPaletteID: pref.ActiveCustomPaletteID,
	}
}

// GetAppearance returns the active palette selection and all of the user's
// custom palettes with their generated tokens.
func GetAppearance(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)

	active, err := db.ActivePalette(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	palettes, err := db.ListCustomPalettes(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]customPaletteResponse, 0, len(palettes))
	for i := range palettes {
		responses = append(responses, toPaletteResponse(&palettes[i]))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_palette":  toActiveResponse(active),
		"custom_palettes": responses,
	})
}

// CreateCustomPalette generates and stores a palette from six seed colors,
// making it the active selection.
func CreateCustomPalette(w http.ResponseWriter, r *http.Request) {
	var req createPaletteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := db.CreateCustomPalette(requestUser(r).ID, req.Name, palette.SeedColors{
		GreenSeedHex:   req.GreenSeedHex,
		RedSeedHex:     req.RedSeedHex,
		YellowSeedHex:  req.YellowSeedHex,
		BlueSeedHex:    req.BlueSeedHex,
		MagentaSeedHex: req.MagentaSeedHex,
		CyanSeedHex:    req.CyanSeedHex,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	active, err := db.ActivePalette(requestUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Palette created",
		"palette":        toPaletteResponse(record),
		"active_palette": toActiveResponse(active),
	})
}

// SetActivePalette switches the user's active palette selection.
func SetActivePalette(w http.ResponseWriter, r *http.Request) {
	var req setActivePaletteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := requestUser(r)
	if err := db.SetActivePalette(user.ID, req.PaletteType, req.PresetPalette, req.CustomPaletteID); err != nil {
		writeServiceError(w, err)
		return
	}

	active, err := db.ActivePalette(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Active palette updated",
		"active_palette": toActiveResponse(active),
	})
}
