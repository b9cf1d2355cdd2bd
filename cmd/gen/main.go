package main

import (
	"guestbook/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.WishModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
