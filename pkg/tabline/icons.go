package tabline

// IconProvider resolves a file name to a leading icon glyph and color.
// It is an optional collaborator: a nil provider means no icons, and a
// provider that returns ok=false for a name leaves that entry bare.
type IconProvider interface {
	Glyph(name string) (glyph string, color string, ok bool)
}
