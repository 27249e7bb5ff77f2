// Package viz renders terminal reports for the gpuhint CLI.
//
//   - [RenderCapability]: styled summary of a GPU preference resolution
//   - Theme selection with 3 built-in color schemes
//
// Output degrades to plain text when stdout is not a terminal.
package viz
