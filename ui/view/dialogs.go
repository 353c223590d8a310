package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// imageFileTypes filters the open dialog to formats the loader decodes.
var imageFileTypes = []FileType{
	{TypeName: "Image files", Extensions: []string{".png", ".jpg", ".jpeg", ".webp"}},
	{TypeName: "All files", Extensions: []string{"*"}},
}

// PickImage shows the native open dialog and returns the chosen path, or ""
// when the dialog was canceled.
func PickImage() string {
	files := GetOpenFile(Title("Open Image"), Filetypes(imageFileTypes))
	// A single selection may come back split on spaces.
	return strings.TrimSpace(strings.Join(files, " "))
}

// Dialogs shows blocking message boxes.
type Dialogs struct{}

func (Dialogs) Warn(title, msg string) {
	MessageBox(Icon("warning"), Title(title), Msg(msg))
}

func (Dialogs) Error(title, msg string) {
	MessageBox(Icon("error"), Title(title), Msg(msg))
}
