// GoLumen WASM — client-side texture renderer.
// Compiled with: GOOS=js GOARCH=wasm go build -o golumen.wasm ./clients/wasm/

//go:build js && wasm

package main

import (
	"encoding/base64"
	"fmt"
	"syscall/js"

	"github.com/xob0t/GoLumen/pkg/assets"
	"github.com/xob0t/GoLumen/pkg/pngenc"
)

func main() {
	fmt.Println("GoLumen WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("goListTextures", js.FuncOf(listTextures))
	js.Global().Set("goRenderTexture", js.FuncOf(renderTexture))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goListTextures() — return the available texture names.
func listTextures(this js.Value, args []js.Value) interface{} {
	defaults := assets.Defaults()
	names := make([]interface{}, len(defaults))
	for i, a := range defaults {
		names[i] = a.Name
	}
	return js.ValueOf(names)
}

// goRenderTexture(name[, width, height]) — render a texture and return it
// as a base64 PNG string, or an "error: ..." string.
func renderTexture(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need texture name")
	}

	a, ok := assets.Lookup(args[0].String())
	if !ok {
		return js.ValueOf("error: unknown texture " + args[0].String())
	}

	width, height := a.Width, a.Height
	if len(args) >= 3 {
		if w := args[1].Int(); w > 0 {
			width = w
		}
		if h := args[2].Int(); h > 0 {
			height = h
		}
	}

	data, err := pngenc.EncodeBytes(width, height, a.Sampler)
	if err != nil {
		return js.ValueOf("error: render: " + err.Error())
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(data))
}
