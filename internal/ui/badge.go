package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant is the color treatment of a status badge.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
	VariantNeutral Variant = "neutral"
	VariantInfo    Variant = "info"
)

// BadgeSize controls horizontal padding.
type BadgeSize string

const (
	BadgeSmall  BadgeSize = "sm"
	BadgeMedium BadgeSize = "md"
	BadgeLarge  BadgeSize = "lg"
)

type variantColors struct {
	fg, bg lipgloss.AdaptiveColor
}

var variants = map[Variant]variantColors{
	VariantSuccess: {
		fg: lipgloss.AdaptiveColor{Light: "#14804A", Dark: "#4ADE80"},
		bg: lipgloss.AdaptiveColor{Light: "#E1FCEF", Dark: "#14532D"},
	},
	VariantWarning: {
		fg: lipgloss.AdaptiveColor{Light: "#AA5B00", Dark: "#FACC15"},
		bg: lipgloss.AdaptiveColor{Light: "#FCF2E6", Dark: "#713F12"},
	},
	VariantDanger: {
		fg: lipgloss.AdaptiveColor{Light: "#D1293D", Dark: "#F87171"},
		bg: lipgloss.AdaptiveColor{Light: "#FFEDEF", Dark: "#7F1D1D"},
	},
	VariantNeutral: {
		fg: lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#D1D5DB"},
		bg: lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1F2937"},
	},
	VariantInfo: {
		fg: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		bg: lipgloss.AdaptiveColor{Light: "#EFF6FF", Dark: "#1E3A8A"},
	},
}

// ParseVariant maps a string to a Variant; anything unknown is neutral.
func ParseVariant(s string) Variant {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := variants[v]; ok {
		return v
	}
	return VariantNeutral
}

// PriorityVariant is the fixed priority color mapping:
// high is danger, medium is warning, everything else is neutral.
func PriorityVariant(priority string) Variant {
	switch strings.ToLower(priority) {
	case "high":
		return VariantDanger
	case "medium":
		return VariantWarning
	default:
		return VariantNeutral
	}
}

// BadgeOptions configures StatusBadge. The zero value is a medium neutral badge without a dot.
type BadgeOptions struct {
	Variant Variant
	Size    BadgeSize
	ShowDot bool
}

// DotGlyph is the leading indicator of a badge.
const DotGlyph = "■"

// BadgeStyle returns the lipgloss style for a variant and size.
func BadgeStyle(v Variant, size BadgeSize) lipgloss.Style {
	c, ok := variants[v]
	if !ok {
		c = variants[VariantNeutral]
	}
	pad := 1
	switch size {
	case BadgeSmall:
		pad = 0
	case BadgeLarge:
		pad = 2
	}
	return lipgloss.NewStyle().
		Foreground(c.fg).
		Background(c.bg).
		Padding(0, pad)
}

// StatusBadge renders a colored label, optionally led by a dot in the variant color.
func StatusBadge(label string, opts BadgeOptions) string {
	style := BadgeStyle(opts.Variant, opts.Size)
	if opts.ShowDot {
		label = DotGlyph + " " + label
	}
	return style.Render(label)
}

var titleCaser = cases.Title(language.English)

// Capitalize upper-cases the first letter of a categorical value ("high" → "High").
func Capitalize(s string) string {
	return titleCaser.String(s)
}
