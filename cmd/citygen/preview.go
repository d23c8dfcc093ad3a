package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/automoto/citygen/fonts"
	"github.com/automoto/citygen/preview"
)

var (
	previewOut   string
	previewScale float64
)

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := newConfig()
	if previewScale > 0 {
		cfg.Preview.PixelsPerUnit = previewScale
	}
	path := previewOut
	if path == "" {
		path = cfg.Output.PreviewFile
	}

	layout, err := loadLayout()
	if err != nil {
		return err
	}

	var face font.Face
	if err := fonts.LoadDefaults(cfg.Preview.LabelSize); err != nil {
		logger.Warn("Rendering without checkpoint labels", zap.Error(err))
	} else if face, err = fonts.Label.Get(); err != nil {
		logger.Warn("Rendering without checkpoint labels", zap.Error(err))
	}

	img := preview.Render(layout, cfg, face)
	if err := preview.WriteFile(path, img); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	logger.Info("Wrote preview", zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return nil
}
