package export

import (
	"fmt"
	"strings"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#d62728",
	"green":   "#2ca02c",
	"blue":    "#1f77b4",
	"yellow":  "#bcbd22",
	"magenta": "#e377c2",
	"cyan":    "#17becf",
	"gray":    "#7f7f7f",
	"orange":  "#ff7f0e",
}

// hexColor resolves a color name or #rgb/#rrggbb value to #rrggbb. An empty
// name yields def.
func hexColor(name, def string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return def, nil
	}
	if hex, ok := namedColors[name]; ok {
		return hex, nil
	}
	if strings.HasPrefix(name, "#") {
		digits := name[1:]
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		if len(digits) == 6 && strings.Trim(digits, "0123456789abcdef") == "" {
			return "#" + digits, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", name)
}

// IsColor reports whether name is a known color name or a #rgb/#rrggbb
// value.
func IsColor(name string) bool {
	_, err := hexColor(name, "")
	return err == nil
}
