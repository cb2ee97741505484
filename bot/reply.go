package bot

// Button is one inline keyboard button. Data is the callback payload routed
// back through HandleCallback when the button is tapped.
type Button struct {
	Text string
	Data string
}

// Reply is a transport-agnostic outbound message. The delivery adapter maps
// it onto the chat platform's send/edit primitives.
type Reply struct {
	Text     string
	Inline   [][]Button // inline keyboard rows
	Keyboard [][]string // one-time reply keyboard rows
	Photos   []string   // photo URLs to attach
	Edit     bool       // edit the message the tapped button belongs to
}

func text(s string) Reply {
	return Reply{Text: s}
}
