package tui

import "github.com/garrettladley/cogdash/internal/tui/components/footer"

const (
	keyRefresh = "r"
	keyRun     = "p"
	keyAuto    = "a"
	keyDismiss = "x"
	keyEscape  = "esc"
	keyDetails = "d"
	keyQuit    = "q"
	keyCtrlC   = "ctrl+c"
)

var overviewBindings = []footer.Binding{
	{Key: keyRefresh, Help: "refresh"},
	{Key: keyRun, Help: "run pipeline"},
	{Key: keyAuto, Help: "auto-refresh"},
	{Key: keyDismiss, Help: "dismiss"},
	{Key: keyDetails, Help: "details"},
	{Key: keyQuit, Help: "quit"},
}

var detailsBindings = []footer.Binding{
	{Key: keyRefresh, Help: "reload"},
	{Key: keyEscape, Help: "back"},
	{Key: keyQuit, Help: "quit"},
}
