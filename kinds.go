package mediainfo

// StreamKind selects a category of streams inside an opened item.
type StreamKind uint8

const (
	StreamGeneral StreamKind = iota // Container-level information
	StreamVideo
	StreamAudio
	StreamText
	StreamOther // Chapters, time codes, ...
	StreamImage
	StreamMenu
	StreamMax
)

var streamKindNames = [StreamMax]string{
	StreamGeneral: "General",
	StreamVideo:   "Video",
	StreamAudio:   "Audio",
	StreamText:    "Text",
	StreamOther:   "Other",
	StreamImage:   "Image",
	StreamMenu:    "Menu",
}

// String returns the name the engine uses for the category in reports.
func (k StreamKind) String() string {
	if k >= StreamMax {
		return "unknown"
	}
	return streamKindNames[k]
}

// StreamKinds lists every concrete category in engine order.
func StreamKinds() []StreamKind {
	return []StreamKind{StreamGeneral, StreamVideo, StreamAudio, StreamText, StreamOther, StreamImage, StreamMenu}
}

// InfoKind selects which facet of a parameter Get returns, and which facet the
// parameter argument is matched against.
type InfoKind uint8

const (
	InfoName        InfoKind = iota // Unique name of the parameter
	InfoText                        // Value
	InfoMeasure                     // Unit of the value
	InfoOptions                     // Display options
	InfoNameText                    // Translated name
	InfoMeasureText                 // Translated unit
	InfoInfo                        // Description
	InfoHowTo                       // How the value was computed
	InfoMax
)

var infoKindNames = [InfoMax]string{
	InfoName:        "Name",
	InfoText:        "Text",
	InfoMeasure:     "Measure",
	InfoOptions:     "Options",
	InfoNameText:    "Name_Text",
	InfoMeasureText: "Measure_Text",
	InfoInfo:        "Info",
	InfoHowTo:       "HowTo",
}

func (k InfoKind) String() string {
	if k >= InfoMax {
		return "unknown"
	}
	return infoKindNames[k]
}

// Status bits returned by the buffer-streaming calls.
const (
	StatusAccepted  = 0x01
	StatusFilled    = 0x02
	StatusUpdated   = 0x04
	StatusFinalized = 0x08
)

// noSeek is the GotoGet value meaning "no seek requested".
const noSeek = ^uint64(0)
