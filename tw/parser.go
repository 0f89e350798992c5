package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette maps color names usable as bg-<name> and text-<name> to RGBA.
var Palette = map[string]uint32{
	"black":       0x000000FF,
	"white":       0xFFFFFFFF,
	"slate-100":   0xF1F5F9FF,
	"slate-300":   0xCBD5E1FF,
	"slate-500":   0x64748BFF,
	"slate-700":   0x334155FF,
	"slate-800":   0x1E293BFF,
	"slate-900":   0x0F172AFF,
	"gray-100":    0xF3F4F6FF,
	"gray-200":    0xE5E7EBFF,
	"gray-500":    0x6B7280FF,
	"gray-800":    0x1F2937FF,
	"blue-500":    0x3B82F6FF,
	"blue-600":    0x2563EBFF,
	"emerald-400": 0x34D399FF,
	"emerald-500": 0x10B981FF,
	"amber-400":   0xFBBF24FF,
	"rose-500":    0xF43F5EFF,
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	DarkMode       bool
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like bg-[#1da1f2]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g. "bg", "text", "px"
	Value    string // e.g. "#1da1f2", "2"
}

// ParseClasses parses a utility class string.
// Example: "bg-slate-800 text-white px-1 dark:bg-[#0b1020] font-bold"
// Unknown classes are ignored.
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		var partial Style
		var ok bool
		if parsed.ArbitraryValue != nil {
			partial, ok = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			partial, ok = parseUtility(parsed.BaseClass)
		}
		if !ok {
			continue
		}

		if parsed.DarkMode {
			computed.Dark.Merge(partial)
		} else {
			computed.Base.Merge(partial)
		}
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "dark:bg-slate-900" → ParsedClass{DarkMode: true, BaseClass: "bg-slate-900"}
// "text-[#fff]" → ParsedClass{ArbitraryValue: {Property: "text", Value: "#fff"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{BaseClass: parts[len(parts)-1]}
	for _, variant := range parts[:len(parts)-1] {
		if variant == "dark" {
			pc.DarkMode = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

func parseArbitraryValue(arb *ArbitraryValue) (Style, bool) {
	if arb == nil {
		return Style{}, false
	}
	switch arb.Property {
	case "bg":
		if c := parseColor(arb.Value); c != nil {
			return Style{BackgroundColor: c}, true
		}
	case "text":
		if c := parseColor(arb.Value); c != nil {
			return Style{TextColor: c}, true
		}
	default:
		if n, err := strconv.Atoi(strings.TrimSpace(arb.Value)); err == nil {
			return paddingStyle(arb.Property, n)
		}
	}
	return Style{}, false
}

// parseUtility resolves a named utility class.
func parseUtility(class string) (Style, bool) {
	switch class {
	case "font-bold":
		return Style{Bold: boolPtr(true)}, true
	case "font-normal":
		return Style{Bold: boolPtr(false)}, true
	case "italic":
		return Style{Italic: boolPtr(true)}, true
	case "not-italic":
		return Style{Italic: boolPtr(false)}, true
	case "underline":
		return Style{Underline: boolPtr(true)}, true
	case "no-underline":
		return Style{Underline: boolPtr(false)}, true
	}

	if name, ok := strings.CutPrefix(class, "bg-"); ok {
		if c, ok := Palette[name]; ok {
			return Style{BackgroundColor: &c}, true
		}
		return Style{}, false
	}
	if name, ok := strings.CutPrefix(class, "text-"); ok {
		if c, ok := Palette[name]; ok {
			return Style{TextColor: &c}, true
		}
		return Style{}, false
	}

	idx := strings.LastIndex(class, "-")
	if idx <= 0 {
		return Style{}, false
	}
	n, err := strconv.Atoi(class[idx+1:])
	if err != nil {
		return Style{}, false
	}
	return paddingStyle(class[:idx], n)
}

// paddingStyle builds a padding utility; one unit is one terminal cell.
func paddingStyle(property string, n int) (Style, bool) {
	if n < 0 {
		return Style{}, false
	}
	var s Style
	switch property {
	case "p":
		s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft = &n, &n, &n, &n
	case "px":
		s.PaddingLeft, s.PaddingRight = &n, &n
	case "py":
		s.PaddingTop, s.PaddingBottom = &n, &n
	case "pt":
		s.PaddingTop = &n
	case "pr":
		s.PaddingRight = &n
	case "pb":
		s.PaddingBottom = &n
	case "pl":
		s.PaddingLeft = &n
	default:
		return Style{}, false
	}
	return s, true
}

// parseColor parses #RRGGBB or #RGB into RGBA.
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}

	var r, g, b uint32
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil
	}
	color := (r << 24) | (g << 16) | (b << 8) | 0xFF
	return &color
}

func boolPtr(b bool) *bool { return &b }
