// Package general implements the read side of generals: lookup, listing,
// display details and their spoken lines.
package general

//go:generate mockgen -destination=mock/mock_service.go -package=generalmock github.com/dabingnn/QSanguosha/internal/orchestrators/general Service
//go:generate mockgen -destination=mock/mock_catalog.go -package=generalmock github.com/dabingnn/QSanguosha/internal/orchestrators/general Catalog

import (
	"context"
	"log/slog"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// Service defines the interface for general queries
type Service interface {
	GetGeneral(ctx context.Context, input *GetGeneralInput) (*GetGeneralOutput, error)
	ListGenerals(ctx context.Context, input *ListGeneralsInput) (*ListGeneralsOutput, error)
	DescribeGeneral(ctx context.Context, input *DescribeGeneralInput) (*DescribeGeneralOutput, error)
	PlayWord(ctx context.Context, input *PlayWordInput) (*PlayWordOutput, error)
	DrawGenerals(ctx context.Context, input *DrawGeneralsInput) (*DrawGeneralsOutput, error)
}

// Catalog is the set of installed generals
type Catalog interface {
	General(name string) (*entities.General, bool)
	Generals() []*entities.General
	DrawGenerals(count int, exclude []string) ([]*entities.General, error)
}

// Config holds the dependencies for the general orchestrator
type Config struct {
	Catalog    Catalog
	Translator entities.Translator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog    Catalog
	translator entities.Translator
}

// NewOrchestrator creates a new general orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:    cfg.Catalog,
		translator: cfg.Translator,
	}, nil
}

func (o *orchestrator) translate(key string) string {
	if o.translator == nil {
		return key
	}
	return o.translator.Translate(key, key)
}

func (o *orchestrator) lookup(name string) (*entities.General, error) {
	if name == "" {
		return nil, errors.InvalidArgument("general name is required")
	}
	general, ok := o.catalog.General(name)
	if !ok {
		return nil, errors.NotFoundf("general %s not found", name).WithMeta("general", name)
	}
	return general, nil
}

// GetGeneral returns an installed general
func (o *orchestrator) GetGeneral(_ context.Context, input *GetGeneralInput) (*GetGeneralOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	general, err := o.lookup(input.Name)
	if err != nil {
		return nil, err
	}
	return &GetGeneralOutput{General: general}, nil
}

// ListGenerals returns the installed generals matching the filters
func (o *orchestrator) ListGenerals(ctx context.Context, input *ListGeneralsInput) (*ListGeneralsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	all := o.catalog.Generals()
	generals := make([]*entities.General, 0, len(all))
	for _, general := range all {
		if !input.IncludeHidden && (general.IsHidden() || general.IsTotallyHidden()) {
			continue
		}
		if input.Kingdom != "" && general.Kingdom() != input.Kingdom {
			continue
		}
		if input.Package != "" && general.PackageName() != input.Package {
			continue
		}
		generals = append(generals, general)
	}

	slog.DebugContext(ctx, "listed generals", "total", len(all), "matched", len(generals))
	return &ListGeneralsOutput{Generals: generals}, nil
}

// DescribeGeneral returns the display details of a general
func (o *orchestrator) DescribeGeneral(_ context.Context, input *DescribeGeneralInput) (*DescribeGeneralOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	general, err := o.lookup(input.Name)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Name:        general.Name(),
		DisplayName: o.translate(general.Name()),
		Package:     general.PackageName(),
		Kingdom:     general.Kingdom(),
		MaxHP:       general.MaxHP(),
		Gender:      general.GenderString(),
		Lord:        general.IsLord(),
		Hidden:      general.IsHidden(),
		NeverShown:  general.IsTotallyHidden(),

		ReferencedSkills: general.Skills().ReferencedSkillNames(),
		RelatedSkills:    general.RelatedSkillNames(),
		SkillDescription: general.SkillDescription(),

		LastWord: general.LastWord(),
		WinWord:  general.WinWord(),

		Designer:    general.Designer(),
		Illustrator: general.Illustrator(),
		CV:          general.CV(),

		CardImage:      general.PixmapPath("card"),
		TinyIcon:       general.TinyIconPath(),
		WinEffectPath:  general.WinEffectPath(),
		LastEffectPath: general.LastEffectPath(),
	}

	for _, skill := range general.VisibleSkillList() {
		_, trigger := skill.(entities.TriggerSkill)
		details.Skills = append(details.Skills, SkillDetails{
			Name:        skill.Name(),
			DisplayName: o.translate(skill.Name()),
			Description: skill.Description(),
			Trigger:     trigger,
		})
	}

	return &DescribeGeneralOutput{Details: details}, nil
}

// PlayWord plays the win or last-word effect of a general and returns its text
func (o *orchestrator) PlayWord(ctx context.Context, input *PlayWordInput) (*PlayWordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	general, err := o.lookup(input.Name)
	if err != nil {
		return nil, err
	}

	var out PlayWordOutput
	switch input.Kind {
	case WordWin:
		out.Path = general.WinEffectPath()
		out.Text = general.WinWord()
		general.PlayWinWord()
	case WordLast, "":
		out.Path = general.LastEffectPath()
		out.Text = general.LastWord()
		general.PlayLastWord()
	default:
		return nil, errors.InvalidArgumentf("unknown word kind %q", input.Kind).
			WithMeta("kind", string(input.Kind))
	}

	if out.Path == "" {
		slog.DebugContext(ctx, "no audio for word", "general", general.Name(), "kind", input.Kind)
	}
	return &out, nil
}

// DrawGenerals picks random selectable generals
func (o *orchestrator) DrawGenerals(ctx context.Context, input *DrawGeneralsInput) (*DrawGeneralsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Count <= 0 {
		return nil, errors.InvalidArgumentf("count must be positive, got %d", input.Count)
	}

	generals, err := o.catalog.DrawGenerals(input.Count, input.Exclude)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw generals")
	}

	slog.DebugContext(ctx, "drew generals", "count", len(generals))
	return &DrawGeneralsOutput{Generals: generals}, nil
}
