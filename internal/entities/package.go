package entities

import (
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// Package is a named collection of generals and the skills they share. It
// owns its generals; a general only keeps a reference back for its package name.
type Package struct {
	name string
	env  *Env

	generals []*General
	byName   map[string]*General
	skills   []Skill
}

// NewPackage creates an empty package whose generals use env.
func NewPackage(name string, env *Env) *Package {
	return &Package{
		name:   name,
		env:    env,
		byName: make(map[string]*General),
	}
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// NewGeneral creates a general and adds it to the package.
func (p *Package) NewGeneral(name, kingdom string, maxHP int, male, hidden, neverShown bool) (*General, error) {
	general := NewGeneral(p.env, name, kingdom, maxHP, male, hidden, neverShown)
	if err := p.AddGeneral(general); err != nil {
		return nil, err
	}
	return general, nil
}

// AddGeneral takes ownership of general.
func (p *Package) AddGeneral(general *General) error {
	if general == nil {
		return errors.InvalidArgument("general cannot be nil")
	}
	if general.pkg != nil && general.pkg != p {
		return errors.FailedPreconditionf("general %s already belongs to package %s",
			general.name, general.pkg.name)
	}
	if _, exists := p.byName[general.name]; exists {
		return errors.AlreadyExistsf("general %s already exists in package %s", general.name, p.name).
			WithMeta("general", general.name).
			WithMeta("package", p.name)
	}

	general.pkg = p
	if general.env == nil {
		general.env = p.env
	}
	p.byName[general.name] = general
	p.generals = append(p.generals, general)
	return nil
}

// General returns the general with the given identifier.
func (p *Package) General(name string) (*General, bool) {
	general, ok := p.byName[name]
	return general, ok
}

// Generals returns the generals in the order they were added.
func (p *Package) Generals() []*General {
	out := make([]*General, len(p.generals))
	copy(out, p.generals)
	return out
}

// AddSkill records a skill defined by this package. The engine registers
// package skills when the package is installed.
func (p *Package) AddSkill(skill Skill) {
	if skill == nil {
		return
	}
	p.skills = append(p.skills, skill)
}

// Skills returns the skills defined by this package.
func (p *Package) Skills() []Skill {
	out := make([]Skill, len(p.skills))
	copy(out, p.skills)
	return out
}
