package entity

// MenuItem is one dish under menu/<category>/<key>. Only the name matters for
// recommendations; the rest of the node is frontend data.
type MenuItem struct {
	Name string `json:"name"`
}
