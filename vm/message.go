package vm

type MessageType int

const (
	_ MessageType = iota
	MsgDebug
	MsgError
	MsgWarning
	MsgTalk
	MsgScreen
	MsgCamera
	MsgMusic
	MsgSound
	MsgBackground
	MsgWindow
	MsgSpecial
	MsgSceneEnd
)

func (mt MessageType) String() string {
	switch mt {
	case MsgDebug:
		return "Debug"
	case MsgError:
		return "Error"
	case MsgWarning:
		return "Warning"
	case MsgTalk:
		return "Talk"
	case MsgScreen:
		return "Screen"
	case MsgCamera:
		return "Camera"
	case MsgMusic:
		return "Music"
	case MsgSound:
		return "Sound"
	case MsgBackground:
		return "Background"
	case MsgWindow:
		return "Window"
	case MsgSpecial:
		return "Special"
	case MsgSceneEnd:
		return "Scene End"
	default:
		return "Unknown"
	}
}

// Message is one event emitted on the VM's stream. Presentation opcodes
// (message/screen/camera/bgm/se/back families) post here instead of
// rendering; a front-end consumes the channel and acts on it.
type Message struct {
	Type    MessageType
	Routine *Routine // Emitter, nil for engine-level events.
	Text    string
	Params  []uint16 // Raw opcode parameters, when meaningful.
}

func NewMessage(mt MessageType, r *Routine, text string) Message {
	return Message{
		Type:    mt,
		Routine: r,
		Text:    text,
	}
}
