package main

import (
	"goalazo/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserFilterModel{},
		model.FilterModel{},
		model.FilterTeamModel{},
		model.FilterCompetitionSeriesModel{},
		model.CountryModel{},
		model.CompetitionSeriesModel{},
		model.CompetitionModel{},
		model.CompetitionTeamModel{},
		model.TeamModel{},
		model.MatchModel{},
		model.LocationModel{},
		model.ViewingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
