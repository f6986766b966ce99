package domain

import "fmt"

// Question holds the inputs the question section is built from. The name
// is kept as typed; splitting into labels happens at encode time so the
// view can show exactly what the user wrote.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// String renders the question in zone-file order for display.
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Type)
}
