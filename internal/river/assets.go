package river

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"

	"github.com/Faultbox/riverview/internal/config"
	"github.com/Faultbox/riverview/internal/engine/model"
	"github.com/Faultbox/riverview/internal/engine/texture"
	"github.com/Faultbox/riverview/internal/logger"
)

// sceneData is everything read from disk before the first GL call.
type sceneData struct {
	images [unitCount]*texture.Image
	mesh   *model.Mesh
}

// loadSceneData decodes the five textures and the terrain mesh on worker
// goroutines. The mesh comes back already scaled by LoadScale.
func loadSceneData(assets config.AssetsConfig) (*sceneData, error) {
	data := &sceneData{}
	var errs [unitCount + 1]error

	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, ts := range textureSpecs {
		wg.Add()
		go func(ts textureSpec) {
			defer wg.Done()
			path := assets.Path(ts.name(assets))
			img, err := texture.LoadBMP(path)
			if err != nil {
				errs[ts.unit] = fmt.Errorf("load texture: %w", err)
				return
			}
			logger.Debug("texture loaded",
				zap.String("path", path),
				zap.Int("width", img.Width),
				zap.Int("height", img.Height),
				zap.String("size", humanize.Bytes(uint64(len(img.Pix)))),
			)
			data.images[ts.unit] = img
		}(ts)
	}

	wg.Add()
	go func() {
		defer wg.Done()
		path := assets.Path(assets.TerrainMesh)
		mesh, err := model.LoadOBJ(path)
		if err != nil {
			errs[unitCount] = fmt.Errorf("load terrain: %w", err)
			return
		}
		for i := range mesh.Vertices {
			mesh.Vertices[i].Position = mesh.Vertices[i].Position.Mul(LoadScale)
		}
		mesh.Bounds.Min = mesh.Bounds.Min.Mul(LoadScale)
		mesh.Bounds.Max = mesh.Bounds.Max.Mul(LoadScale)
		logger.Info("terrain loaded",
			zap.String("path", path),
			zap.String("triangles", humanize.Comma(int64(mesh.TriangleCount()))),
		)
		data.mesh = mesh
	}()

	wg.Wait()
	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}
	return data, nil
}
