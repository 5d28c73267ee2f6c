package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int

	// Software renders on the CPU into a framebuffer instead of compiling
	// the program for the GPU.
	Software    bool
	RenderScale int
	Workers     int
}
