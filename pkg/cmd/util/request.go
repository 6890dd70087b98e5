package util

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/paceviz/pkg/config"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/repository/records"
	"github.com/mpapenbr/paceviz/pkg/service"
)

// AddVisibilityFlags registers the flags controlling series visibility and speed
func AddVisibilityFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&config.ShowMale,
		"show-male",
		true,
		"show men's world records")
	cmd.Flags().BoolVar(&config.ShowFemale,
		"show-female",
		true,
		"show women's world records")
	cmd.Flags().BoolVar(&config.ShowMine,
		"show-mine",
		true,
		"show your records")
	cmd.Flags().BoolVar(&config.ShowRival,
		"show-rival",
		true,
		"show your rival's records")
	cmd.Flags().Float64Var(&config.SpeedFactor,
		"speed-factor",
		100,
		"percentage of world record speed (0-100], slows down the world records")
}

// NewChartRequest loads the user records and combines them with the flags
func NewChartRequest() (*service.ChartRequest, error) {
	if err := config.ValidateSpeedFactor(); err != nil {
		return nil, err
	}
	store, err := records.Load(config.RecordsFile)
	if err != nil {
		return nil, err
	}
	mine, err := store.Records(model.CategoryMine)
	if err != nil {
		return nil, err
	}
	rival, err := store.Records(model.CategoryRival)
	if err != nil {
		return nil, err
	}
	return &service.ChartRequest{
		ShowMale:    config.ShowMale,
		ShowFemale:  config.ShowFemale,
		ShowMine:    config.ShowMine,
		ShowRival:   config.ShowRival,
		SpeedFactor: config.SpeedFactor,
		Mine:        mine,
		MineName:    store.Name(model.CategoryMine),
		Rival:       rival,
		RivalName:   store.Name(model.CategoryRival),
	}, nil
}

// AddRoleFlag registers --role for commands working on a user record set
func AddRoleFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target,
		"role",
		"r",
		string(model.CategoryMine),
		"record set to work on (mine, rival)")
}

func ParseRole(s string) (model.Category, error) {
	c, err := model.ParseCategory(s)
	if err != nil {
		return "", err
	}
	if !c.IsUser() {
		return "", records.ErrInvalidRole
	}
	return c, nil
}
