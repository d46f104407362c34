package sample

// Label is a named value with no behaviour beyond reading the name back.
type Label struct {
	name string
}

// NewLabel returns a Label called name.
func NewLabel(name string) Label {
	return Label{name: name}
}

// Name returns the label's name.
func (l Label) Name() string {
	return l.name
}
