package topics

// Renderer turns a topic file into terminal text. format is the file
// extension including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
