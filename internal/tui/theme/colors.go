package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent   = lipgloss.Color("#7C5CFF") // focus quality, highlights
	ColorHealthy  = lipgloss.Color("#16EC06") // low burnout, low switch cost
	ColorModerate = lipgloss.Color("#FFDE00")
	ColorHigh     = lipgloss.Color("#FF0026")
	ColorNeutral  = lipgloss.Color("#67AEE6") // values without a valuation
)

// message severities
var (
	ColorInfo    = lipgloss.Color("#0093E7")
	ColorSuccess = ColorHealthy
	ColorWarning = lipgloss.Color("#FF9F1C")
	ColorDanger  = ColorHigh
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)
