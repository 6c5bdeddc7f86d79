package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerationVersion is the current algorithm version for generated tokens.
// Bump it whenever the shade math changes so stored palettes can be
// regenerated lazily.
const GenerationVersion = 1

// Neutral tokens stay fixed across generated palettes to keep base contrast
// readable no matter what accents the user picks.
const (
	defaultBlackRGB = "26, 27, 38"
	defaultWhiteRGB = "169, 177, 214"
)

// SeedColors are the six user-provided base accents in #RRGGBB format.
type SeedColors struct {
	GreenSeedHex   string
	RedSeedHex     string
	YellowSeedHex  string
	BlueSeedHex    string
	MagentaSeedHex string
	CyanSeedHex    string
}

// Tokens is the full generated palette as "r, g, b" triplet strings, mapping
// directly onto the CSS variables the web client consumes.
type Tokens struct {
	Black string `json:"black"`
	White string `json:"white"`

	Green100 string `json:"green_100"`
	Green80  string `json:"green_80"`
	Green60  string `json:"green_60"`

	Red100 string `json:"red_100"`
	Red80  string `json:"red_80"`
	Red60  string `json:"red_60"`

	Yellow100 string `json:"yellow_100"`
	Yellow80  string `json:"yellow_80"`
	Yellow60  string `json:"yellow_60"`

	Blue100 string `json:"blue_100"`
	Blue80  string `json:"blue_80"`
	Blue60  string `json:"blue_60"`

	Magenta100 string `json:"magenta_100"`
	Magenta80  string `json:"magenta_80"`
	Magenta60  string `json:"magenta_60"`

	Cyan100 string `json:"cyan_100"`
	Cyan80  string `json:"cyan_80"`
	Cyan60  string `json:"cyan_60"`
}

// Generate derives the complete token map from six base accent colors.
// Each accent group gets the base color (100), a shade mixed 20% toward
// white (80), and a shade mixed 40% toward white (60).
func Generate(seeds SeedColors) (*Tokens, error) {
	tokens := &Tokens{
		Black: defaultBlackRGB,
		White: defaultWhiteRGB,
	}

	groups := []struct {
		hex     string
		hundred *string
		eighty  *string
		sixty   *string
	}{
		{seeds.GreenSeedHex, &tokens.Green100, &tokens.Green80, &tokens.Green60},
		{seeds.RedSeedHex, &tokens.Red100, &tokens.Red80, &tokens.Red60},
		{seeds.YellowSeedHex, &tokens.Yellow100, &tokens.Yellow80, &tokens.Yellow60},
		{seeds.BlueSeedHex, &tokens.Blue100, &tokens.Blue80, &tokens.Blue60},
		{seeds.MagentaSeedHex, &tokens.Magenta100, &tokens.Magenta80, &tokens.Magenta60},
		{seeds.CyanSeedHex, &tokens.Cyan100, &tokens.Cyan80, &tokens.Cyan60},
	}

	for _, g := range groups {
		var err error
		if *g.hundred, err = shadeTriplet(g.hex, 0.0); err != nil {
			return nil, err
		}
		if *g.eighty, err = shadeTriplet(g.hex, 0.2); err != nil {
			return nil, err
		}
		if *g.sixty, err = shadeTriplet(g.hex, 0.4); err != nil {
			return nil, err
		}
	}

	return tokens, nil
}

// ParseHexColor parses a #RRGGBB color into its RGB channels.
func ParseHexColor(hex string) (r, g, b uint8, err error) {
	trimmed := strings.TrimSpace(hex)
	if len(trimmed) != 7 || !strings.HasPrefix(trimmed, "#") {
		return 0, 0, 0, errInvalidHex
	}

	channels := [3]uint8{}
	for i := 0; i < 3; i++ {
		v, parseErr := strconv.ParseUint(trimmed[1+2*i:3+2*i], 16, 8)
		if parseErr != nil {
			return 0, 0, 0, errInvalidHex
		}
		channels[i] = uint8(v)
	}

	return channels[0], channels[1], channels[2], nil
}

var errInvalidHex = fmt.Errorf("color values must use 6-digit hex format (for example, #4fa3ff)")

// shadeTriplet builds an "r, g, b" string from a hex color, optionally
// lightened by mixing toward white.
func shadeTriplet(hex string, mixWithWhite float64) (string, error) {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d, %d, %d",
		lightenChannel(r, mixWithWhite),
		lightenChannel(g, mixWithWhite),
		lightenChannel(b, mixWithWhite),
	), nil
}

func lightenChannel(channel uint8, mixWithWhite float64) uint8 {
	mixed := float64(channel) + (255.0-float64(channel))*mixWithWhite
	rounded := int(mixed + 0.5)
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 255 {
		rounded = 255
	}
	return uint8(rounded)
}
