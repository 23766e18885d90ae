package palette

// PaletteBuilderOption is a functional option for configuring a Palette.
type PaletteBuilderOption func(*palette)

// WithBinding sets the bind group binding index the staged buffer write targets.
// Defaults to 0.
//
// Parameters:
//   - binding: the binding index
//
// Returns:
//   - PaletteBuilderOption: option function to configure the palette
func WithBinding(binding int) PaletteBuilderOption {
	return func(p *palette) {
		p.binding = binding
	}
}
