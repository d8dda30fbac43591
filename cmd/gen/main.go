package main

import (
	"mediahub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.IdentityModel{},
		model.VideoModel{},
		model.WatchHistoryModel{},
		model.CommentModel{},
		model.PlaylistModel{},
		model.PlaylistVideoModel{},
		model.RelationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
