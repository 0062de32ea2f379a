package selectlist

import "fmt"

// Item is the capability an element must have to be listed by Select.
//
// String renders the item as a single line; the widget adds its own line
// terminator. Identity returns an id that is unique within one list and
// stable for the lifetime of a session. Marks are tracked by Identity.
type Item interface {
	fmt.Stringer
	Identity() int64
}
