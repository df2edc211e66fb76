package main

import (
	"github.com/AjaXium2/greenolivechain/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.FarmerWasteModel{},
		model.ExtractionWasteModel{},
		model.ExtractionRecordModel{},
		model.WasteRecordModel{},
		model.RecyclingProcessModel{},
		model.RecyclingRecordModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
