package main

import (
	"secureauth/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CredentialModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
