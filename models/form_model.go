package models

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldNumber, FieldTextarea, FieldSelect, FieldRadio, FieldCheckbox:
		return true
	}
	return false
}

// NeedsOptions reports whether the field type requires a non-empty options list.
func (t FieldType) NeedsOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldSpec struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Type        FieldType     `json:"type"`
	Required    bool          `json:"required"`
	Placeholder string        `json:"placeholder,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// FormSpec is the generator output consumed by the presentation layer.
// It is validated once after parsing and never mutated afterwards.
type FormSpec struct {
	Title  string      `json:"title"`
	Fields []FieldSpec `json:"fields"`
}
