package guard

import "github.com/dmitrymomot/clinicsite/pkg/sanitizer"

// FrameAction is what the page does about being embedded in a frame.
type FrameAction int

const (
	// FrameNone leaves a top level page alone.
	FrameNone FrameAction = iota
	// FrameBust navigates the top window to the page itself.
	FrameBust
	// FrameReplace hides the content behind MsgFramed.
	FrameReplace
)

func (a FrameAction) String() string {
	switch a {
	case FrameBust:
		return "bust"
	case FrameReplace:
		return "replace"
	default:
		return "none"
	}
}

// FrameDecision decides the frame action. bust attempts the top navigation
// and is only called for framed pages.
func FrameDecision(framed bool, bust func() error) FrameAction {
	if !framed {
		return FrameNone
	}
	if bust == nil || bust() != nil {
		return FrameReplace
	}
	return FrameBust
}

// FramedMarkup returns the markup that replaces the body of a framed page.
// An empty message uses MsgFramed.
func FramedMarkup(message string) string {
	if message == "" {
		message = MsgFramed
	}
	return `<h1 style="text-align:center;padding:50px;">` + sanitizer.EscapeHTML(message) + `</h1>`
}
