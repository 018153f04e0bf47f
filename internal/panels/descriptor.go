// Package panels implements the generic list/form/delete screen that every
// content collection shares. One Descriptor per collection supplies the
// field set and labels; the handler, templates and backend plumbing are
// identical across all of them.
package panels

// Widget selects the form control rendered for a field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetTextarea Widget = "textarea"
	WidgetSelect   Widget = "select"
	WidgetURL      Widget = "url"
)

// Field describes one form field of a collection. Values are opaque strings
// passed through to the backend unchanged; Required is the only validation.
type Field struct {
	Name     string
	Label    string
	Widget   Widget
	Options  []string // for WidgetSelect
	Required bool
	Default  string
	Upload   bool // an "Upload" action on the form writes into this field
	Hint     string
}

// Descriptor defines one admin panel.
type Descriptor struct {
	Slug     string // URL segment and backend collection name
	Title    string
	Singular string // "Project", used in button labels and prompts
	Columns  []string
	Fields   []Field
}

// HasUpload reports whether any field accepts a file upload.
func (d Descriptor) HasUpload() bool {
	for _, f := range d.Fields {
		if f.Upload {
			return true
		}
	}
	return false
}

// UploadField returns the name of the upload target field, or "".
func (d Descriptor) UploadField() string {
	for _, f := range d.Fields {
		if f.Upload {
			return f.Name
		}
	}
	return ""
}

// field looks a field up by name.
func (d Descriptor) field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
