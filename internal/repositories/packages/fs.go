package packages

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"gopkg.in/yaml.v3"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// maxHP bounds the hp field of a general definition
const maxHP = 12

// FSConfig holds the configuration for the file system repository
type FSConfig struct {
	FS        fs.FS
	Installer Installer
}

// Validate validates the config
func (c *FSConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.FS == nil {
		vb.RequiredField("FS")
	}
	if c.Installer == nil {
		vb.RequiredField("Installer")
	}
	return vb.Build()
}

type fsRepository struct {
	fsys      fs.FS
	installer Installer
}

// NewFS creates a repository reading package files from an fs.FS
func NewFS(cfg *FSConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid package repository config")
	}

	return &fsRepository{
		fsys:      cfg.FS,
		installer: cfg.Installer,
	}, nil
}

// List returns the package files matching the pattern
func (r *fsRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	pattern := input.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	paths, err := fs.Glob(r.fsys, pattern)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid package pattern").
			WithMeta("pattern", pattern)
	}
	sort.Strings(paths)

	return &ListOutput{Paths: paths}, nil
}

// Load parses a package file, builds its skills and generals and installs it
func (r *fsRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	data, err := fs.ReadFile(r.fsys, input.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("package file %s not found", input.Path).
				WithMeta("file", input.Path)
		}
		return nil, errors.Wrapf(err, "failed to read package file %s", input.Path)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse package file").
			WithMeta("file", input.Path)
	}

	pkg, err := r.build(&doc)
	if err != nil {
		return nil, errors.Wrapf(err, "package file %s", input.Path)
	}

	if err := r.installer.AddPackage(pkg); err != nil {
		return nil, errors.Wrapf(err, "failed to install package %s", pkg.Name())
	}

	slog.InfoContext(ctx, "loaded package",
		"file", input.Path,
		"package", pkg.Name(),
		"generals", len(doc.Generals),
		"skills", len(doc.Skills))

	return &LoadOutput{Package: pkg}, nil
}

func (r *fsRepository) build(doc *document) (*entities.Package, error) {
	if doc.Name == "" {
		return nil, errors.InvalidArgument("package name is required").WithMeta("field", "name")
	}

	pkg := entities.NewPackage(doc.Name, r.installer.Env())

	defined := make(map[string]entities.Skill, len(doc.Skills))
	for i, sd := range doc.Skills {
		if sd.Name == "" {
			return nil, errors.InvalidArgumentf("skill %d has no name", i).WithMeta("field", "skills.name")
		}
		if _, dup := defined[sd.Name]; dup {
			return nil, errors.AlreadyExistsf("skill %s defined twice", sd.Name).WithMeta("skill", sd.Name)
		}
		skill := newSkill(sd)
		defined[sd.Name] = skill
		pkg.AddSkill(skill)
	}

	for _, gd := range doc.Generals {
		if err := r.addGeneral(pkg, gd, defined); err != nil {
			return nil, err
		}
	}

	return pkg, nil
}

func (r *fsRepository) addGeneral(pkg *entities.Package, gd generalDocument, defined map[string]entities.Skill) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", gd.Name, vb)
	errors.ValidateRequired("kingdom", gd.Kingdom, vb)
	errors.ValidateRange("hp", gd.HP, 1, maxHP, vb)

	gender := entities.Male
	if gd.Gender != "" {
		parsed, ok := entities.ParseGender(gd.Gender)
		if !ok {
			vb.Fieldf("gender", "unknown gender %q", gd.Gender)
		}
		gender = parsed
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid general %q", gd.Name).WithMeta("general", gd.Name)
	}

	general, err := pkg.NewGeneral(gd.Name, gd.Kingdom, gd.HP, gender == entities.Male, gd.Hidden, gd.NeverShown)
	if err != nil {
		return err
	}
	general.SetGender(gender)

	for _, name := range gd.Skills {
		skill, ok := defined[name]
		if !ok {
			skill = r.installer.GetSkill(name)
		}
		if skill == nil {
			return errors.InvalidArgumentf("general %s owns unknown skill %s", general.Name(), name).
				WithMeta("general", general.Name()).
				WithMeta("skill", name)
		}
		general.AddSkill(skill)
	}
	for _, name := range gd.References {
		general.AddSkillName(name)
	}
	for _, name := range gd.Related {
		general.AddRelatedSkill(name)
	}

	return nil
}

// newSkill builds a skill from its definition. Trigger skills loaded from
// data only log the events they receive.
func newSkill(sd skillDocument) entities.Skill {
	switch {
	case len(sd.Events) > 0:
		return entities.NewTriggerSkill(entities.TriggerSkillConfig{
			Name:        sd.Name,
			Description: sd.Description,
			Events:      sd.Events,
			Priority:    sd.Priority,
			Hidden:      sd.Hidden,
			OnTrigger: func(ctx context.Context, event events.Event) error {
				slog.DebugContext(ctx, "skill triggered", "skill", sd.Name, "event", event.Type())
				return nil
			},
		})
	case sd.Hidden:
		return entities.NewHiddenSkill(sd.Name, sd.Description)
	default:
		return entities.NewSkill(sd.Name, sd.Description)
	}
}
