// Package seed provides the starter subjects and goals written into an
// empty local store on first run.
package seed

import (
	"context"
	_ "embed"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Defaults struct {
	Subjects []SubjectDefault `yaml:"subjects"`
	Goals    []GoalDefault    `yaml:"goals"`
}

type SubjectDefault struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type GoalDefault struct {
	Title         string `yaml:"title"`
	TargetMinutes int    `yaml:"target_minutes"`
	Period        string `yaml:"period"`
}

func Load() (Defaults, error) {
	var defaults Defaults
	if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
		return Defaults{}, err
	}
	return defaults, nil
}

// Apply populates an empty scope with the default subjects and goals.
// A scope that already has subjects is left alone.
func Apply(ctx context.Context, scope domain.Scope, subjects ports.SubjectService, goals ports.GoalService) error {
	existing, err := subjects.ListSubjects(ctx, scope)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults, err := Load()
	if err != nil {
		return err
	}

	for _, subject := range defaults.Subjects {
		if _, err := subjects.CreateSubject(ctx, scope, domain.CreateSubjectInput{
			Name:  subject.Name,
			Color: subject.Color,
		}); err != nil {
			return err
		}
	}
	for _, goal := range defaults.Goals {
		if _, err := goals.CreateGoal(ctx, scope, domain.CreateGoalInput{
			Title:         goal.Title,
			TargetMinutes: goal.TargetMinutes,
			Period:        domain.GoalPeriod(goal.Period),
		}); err != nil {
			return err
		}
	}

	zap.L().Info("seeded default subjects and goals",
		zap.String("scope", string(scope)),
		zap.Int("subjects", len(defaults.Subjects)),
		zap.Int("goals", len(defaults.Goals)))
	return nil
}
