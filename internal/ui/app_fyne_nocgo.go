//go:build fyne && !cgo

package ui

import "fmt"

// Run informs the user that the Fyne UI and the MuPDF rasterizer require cgo.
// This stub is compiled when the build uses -tags fyne but CGO is disabled.
func Run(_ string) error {
	return fmt.Errorf("the UI requires cgo (OpenGL and MuPDF). Enable cgo and install a C toolchain, then build with CGO_ENABLED=1 go build -tags fyne ./cmd/gopresent")
}
