// Package viz provides the interactive terminal sorting visualizer.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: bars colored by highlight category, legend, algorithm info
//     panel, run metrics and an inversion chart
//   - Theme selection with 5 built-in color schemes
//
// Every request goes through a [driver.Driver]; requests the driver rejects
// while a run is active show up in the status line.
//
// # Key Bindings
//
//	s/Enter   - Start a run
//	x/Esc     - Stop the run
//	n         - New array
//	Tab       - Next algorithm (Shift+Tab previous)
//	+/-       - Array size
//	←/→       - Speed
//	p         - Cycle input pattern
//	t         - Cycle color themes
//	g         - Toggle GIF recording
//	i         - Toggle info panel
//	?         - Full help
//
// # Recording
//
// Steps shown while recording are captured and written as a GIF animation
// when recording is toggled off.
package viz
