// Package sheet composes the generated texture set into a single labeled
// contact-sheet image for quick visual review. Each texture is rendered at
// its native resolution, scaled to a thumbnail, and captioned with its
// filename. The finished sheet goes out through the same PNG encoder as the
// textures themselves.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/xob0t/GoLumen/pkg/assets"
	"github.com/xob0t/GoLumen/pkg/pngenc"
	"github.com/xob0t/GoLumen/pkg/sampler"
)

const (
	margin = 16 // outer border and gap between cells, in pixels
	labelH = 24 // caption strip below each thumbnail
)

var background = color.RGBA{26, 26, 46, 255}

// Render lays the assets out left to right as thumb×thumb cells with a
// caption strip under each.
func Render(list []assets.Asset, thumb int) (*image.RGBA, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("no assets to render")
	}
	if thumb <= 0 {
		thumb = 256
	}

	w := margin + len(list)*(thumb+margin)
	h := margin + thumb + labelH + margin
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	face, err := captionFace()
	if err != nil {
		return nil, fmt.Errorf("caption font: %w", err)
	}

	for i, a := range list {
		cellX := margin + i*(thumb+margin)

		full := rasterize(a)
		cell := image.Rect(cellX, margin, cellX+thumb, margin+thumb)
		xdraw.ApproxBiLinear.Scale(sheet, cell, full, full.Bounds(), xdraw.Src, nil)

		drawCaption(sheet, face, a.Name, cellX, margin+thumb+labelH-6, thumb)
	}

	return sheet, nil
}

// WriteFile renders the contact sheet and writes it as a PNG.
func WriteFile(path string, list []assets.Asset, thumb int) error {
	img, err := Render(list, thumb)
	if err != nil {
		return err
	}
	b := img.Bounds()
	return pngenc.WriteFile(path, b.Dx(), b.Dy(), sampler.FromImage(img))
}

// rasterize samples an asset into a bitmap at its native resolution.
func rasterize(a assets.Asset) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			r, g, b := a.Sampler(x, y, a.Width, a.Height)
			i := img.PixOffset(x, y)
			img.Pix[i] = sampler.ClampByte(r)
			img.Pix[i+1] = sampler.ClampByte(g)
			img.Pix[i+2] = sampler.ClampByte(b)
			img.Pix[i+3] = 255
		}
	}
	return img
}
