// internal/app/renderer.go
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// NewShaderLibrary — встроенные шейдеры или каталог из render.shader_dir.
func NewShaderLibrary(cfg *config.Config, logger *zap.Logger) *assets.ShaderLibrary {
	if cfg.Render.ShaderDir != "" {
		return assets.Directory(cfg.Render.ShaderDir, logger.Named("shaders"))
	}
	return assets.Embedded(logger.Named("shaders"))
}

// RendererOptions переводит конфигурацию в параметры рендера.
func RendererOptions(cfg *config.Config, logger *zap.Logger) render.Options {
	return render.Options{
		Capacity:   cfg.Render.MaxSprites,
		Alignment:  config.UniformAlignment,
		CellSize:   config.SpriteCellSize,
		ClearColor: render.ToVec4(config.BackgroundColor),
		Logger:     logger.Named("render"),
	}
}

// NewRendererFactory собирает рендер поверх устройства. Первый вызов
// загружает шейдеры, каждый следующий перечитывает их с источника,
// так что клавиша перезагрузки подхватывает правки в каталоге шейдеров.
func NewRendererFactory(dev render.Device, shaders *assets.ShaderLibrary, cfg *config.Config, logger *zap.Logger) RendererFactory {
	loaded := false
	return func() (*render.Renderer, error) {
		ctx := context.Background()
		if loaded {
			if _, err := shaders.Reload(ctx); err != nil {
				return nil, fmt.Errorf("reload shaders: %w", err)
			}
		} else {
			if err := shaders.Preload(ctx, render.SpriteShader, render.BackgroundShader); err != nil {
				return nil, fmt.Errorf("load shaders: %w", err)
			}
			loaded = true
		}
		return render.NewRenderer(dev, shaders, RendererOptions(cfg, logger))
	}
}
