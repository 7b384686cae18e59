// Command glcaps-probe prints the capability snapshot of the current
// environment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/glcaps"

	// Enable the wgpu host.
	_ "github.com/gogpu/glcaps/backend/wgpu"
)

// report is the JSON shape of a snapshot; extension handles are opaque,
// so only their presence is reported.
type report struct {
	Canvas      bool            `json:"canvas"`
	WebGL       bool            `json:"webgl"`
	DrawBuffers bool            `json:"drawBuffers"`
	Extensions  map[string]bool `json:"extensions"`
}

func main() {
	var (
		asJSON  = flag.Bool("json", false, "print the report as JSON")
		verbose = flag.Bool("v", false, "enable debug logging during detection")
	)
	flag.Parse()

	if *verbose {
		glcaps.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	snap := glcaps.Default()
	r := report{
		Canvas:      snap.CanvasSupported,
		WebGL:       snap.WebGLSupported,
		DrawBuffers: snap.DrawBuffersSupported,
		Extensions: map[string]bool{
			glcaps.ExtTextureFloat:       snap.Extensions.FloatTexture != nil,
			glcaps.ExtTextureFloatLinear: snap.Extensions.FloatTextureLinear != nil,
			glcaps.ExtElementIndexUint:   snap.Extensions.UintElementIndex != nil,
			glcaps.ExtDrawBuffers:        snap.DrawBuffersSupported,
		},
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintln(os.Stderr, "glcaps-probe:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("canvas:       %v\n", r.Canvas)
	fmt.Printf("webgl:        %v\n", r.WebGL)
	fmt.Printf("draw buffers: %v\n", r.DrawBuffers)
	for _, name := range []string{
		glcaps.ExtTextureFloat,
		glcaps.ExtTextureFloatLinear,
		glcaps.ExtElementIndexUint,
		glcaps.ExtDrawBuffers,
	} {
		fmt.Printf("  %-26s %v\n", name, r.Extensions[name])
	}
}
