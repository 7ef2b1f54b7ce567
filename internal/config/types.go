package config

// Config holds all paramgen configuration.
type Config struct {
	OutputPath string `json:"output_path"` // destination file for generated stubs
	NoColor    bool   `json:"no_color"`    // disable styled terminal output
	Widths     Widths `json:"widths"`      // generated bit-width range

	// internal: config dir path used for Save()
	configDir string
}

// Widths is the persisted bit-width range. Both bounds are inclusive and
// validated against the supported width set on load.
type Widths struct {
	From int `json:"from"`
	To   int `json:"to"`
}
