package edit

// Mode is the state of the editing state machine.
type Mode uint8

const (
	// ModeView shows the table without an editor.
	ModeView Mode = iota
	// ModeInsert edits a freshly inserted row.
	ModeInsert
	// ModeEdit edits an existing row.
	ModeEdit
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeEdit:
		return "edit"
	default:
		return "view"
	}
}
