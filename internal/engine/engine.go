// Package engine holds the process-wide game state that generals resolve
// against: the skill registry, installed packages and the event bus.
package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// Config contains the collaborators of an Engine
type Config struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	Translator entities.Translator
	Audio      entities.AudioProvider
	Assets     entities.AssetStore
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// Engine is the shared registry of skills and packages. It is safe for
// concurrent readers; generals themselves are not.
type Engine struct {
	mu sync.RWMutex

	eventBus   events.EventBus
	diceRoller dice.Roller
	env        *entities.Env

	skills    map[string]entities.Skill
	packages  []*entities.Package
	byPackage map[string]*entities.Package
	generals  map[string]*entities.General
	bindings  map[string][]string
}

// New creates an engine with no packages installed
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		skills:     make(map[string]entities.Skill),
		byPackage:  make(map[string]*entities.Package),
		generals:   make(map[string]*entities.General),
		bindings:   make(map[string][]string),
	}
	e.env = &entities.Env{
		Skills:     e,
		Translator: cfg.Translator,
		Audio:      cfg.Audio,
		Assets:     cfg.Assets,
	}

	return e, nil
}

// Verify that Engine resolves skill references for generals
var _ entities.SkillRegistry = (*Engine)(nil)

// Env returns the environment generals of this engine are built with
func (e *Engine) Env() *entities.Env {
	return e.env
}

// AddSkill registers a skill under its name
func (e *Engine) AddSkill(skill entities.Skill) error {
	if skill == nil {
		return errors.InvalidArgument("skill cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.addSkillLocked(skill)
}

func (e *Engine) addSkillLocked(skill entities.Skill) error {
	name := skill.Name()
	if name == "" {
		return errors.InvalidArgument("skill name is required")
	}
	if existing, ok := e.skills[name]; ok {
		if existing == skill {
			return nil
		}
		return errors.AlreadyExistsf("skill %s already registered", name).WithMeta("skill", name)
	}
	e.skills[name] = skill
	return nil
}

// GetSkill returns the registered skill, or nil
func (e *Engine) GetSkill(name string) entities.Skill {
	e.mu.RLock()
	defer e.mu.RUnlock()

	skill, ok := e.skills[name]
	if !ok {
		return nil
	}
	return skill
}

// GetTriggerSkill returns the registered skill when it is a trigger skill, or nil
func (e *Engine) GetTriggerSkill(name string) entities.TriggerSkill {
	e.mu.RLock()
	defer e.mu.RUnlock()

	trigger, ok := e.skills[name].(entities.TriggerSkill)
	if !ok {
		return nil
	}
	return trigger
}

// NewPackage creates and installs an empty package
func (e *Engine) NewPackage(name string) (*entities.Package, error) {
	pkg := entities.NewPackage(name, e.env)
	if err := e.AddPackage(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// AddPackage installs a package: its skills join the registry and its
// generals become visible through General and Generals. Nothing is installed
// when any skill or general collides with an existing one.
func (e *Engine) AddPackage(pkg *entities.Package) error {
	if pkg == nil {
		return errors.InvalidArgument("package cannot be nil")
	}
	if pkg.Name() == "" {
		return errors.InvalidArgument("package name is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byPackage[pkg.Name()]; exists {
		return errors.AlreadyExistsf("package %s already installed", pkg.Name()).
			WithMeta("package", pkg.Name())
	}

	skills := pkg.Skills()
	for _, skill := range skills {
		if existing, ok := e.skills[skill.Name()]; ok && existing != skill {
			return errors.AlreadyExistsf("skill %s already registered", skill.Name()).
				WithMeta("skill", skill.Name()).
				WithMeta("package", pkg.Name())
		}
	}
	generals := pkg.Generals()
	for _, general := range generals {
		if _, ok := e.generals[general.Name()]; ok {
			return errors.AlreadyExistsf("general %s already installed", general.Name()).
				WithMeta("general", general.Name()).
				WithMeta("package", pkg.Name())
		}
	}

	for _, skill := range skills {
		if err := e.addSkillLocked(skill); err != nil {
			return err
		}
	}
	for _, general := range generals {
		e.generals[general.Name()] = general
	}
	e.packages = append(e.packages, pkg)
	e.byPackage[pkg.Name()] = pkg

	slog.Debug("installed package", "package", pkg.Name(), "generals", len(generals), "skills", len(skills))
	return nil
}

// Package returns an installed package by name
func (e *Engine) Package(name string) (*entities.Package, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pkg, ok := e.byPackage[name]
	return pkg, ok
}

// Packages returns the installed packages in install order
func (e *Engine) Packages() []*entities.Package {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*entities.Package, len(e.packages))
	copy(out, e.packages)
	return out
}

// General returns an installed general by identifier. Generals added to a
// package after it was installed are found through the package.
func (e *Engine) General(name string) (*entities.General, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if general, ok := e.generals[name]; ok {
		return general, true
	}
	for _, pkg := range e.packages {
		if general, ok := pkg.General(name); ok {
			return general, true
		}
	}
	return nil, false
}

// Generals returns every installed general, package by package
func (e *Engine) Generals() []*entities.General {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []*entities.General
	for _, pkg := range e.packages {
		out = append(out, pkg.Generals()...)
	}
	return out
}

// BindTriggers subscribes every trigger skill of general to the event bus and
// returns the subscription ids.
func (e *Engine) BindTriggers(general *entities.General) ([]string, error) {
	if general == nil {
		return nil, errors.InvalidArgument("general cannot be nil")
	}

	// Resolved before locking: referenced names go through GetTriggerSkill
	triggers := general.TriggerSkills()

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, bound := e.bindings[general.Name()]; bound {
		return nil, errors.FailedPreconditionf("triggers of %s are already bound", general.Name()).
			WithMeta("general", general.Name())
	}

	var ids []string
	for _, skill := range triggers {
		for _, eventType := range skill.Events() {
			id := e.eventBus.SubscribeFunc(eventType, skill.Priority(), func(ctx context.Context, event events.Event) error {
				return skill.Trigger(ctx, event)
			})
			ids = append(ids, id)
		}
	}
	e.bindings[general.Name()] = ids

	slog.Debug("bound triggers", "general", general.Name(), "subscriptions", len(ids))
	return ids, nil
}

// UnbindTriggers removes the subscriptions made by BindTriggers
func (e *Engine) UnbindTriggers(general *entities.General) error {
	if general == nil {
		return errors.InvalidArgument("general cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ids, bound := e.bindings[general.Name()]
	if !bound {
		return errors.NotFoundf("triggers of %s are not bound", general.Name()).
			WithMeta("general", general.Name())
	}
	delete(e.bindings, general.Name())

	for _, id := range ids {
		if err := e.eventBus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	return nil
}

// Publish sends an event to the subscribed trigger skills
func (e *Engine) Publish(ctx context.Context, event events.Event) error {
	if event == nil {
		return errors.InvalidArgument("event cannot be nil")
	}
	if err := e.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type())
	}
	return nil
}

// DrawGenerals picks count distinct generals at random among those that are
// neither hidden nor totally hidden, skipping the names in exclude.
func (e *Engine) DrawGenerals(count int, exclude []string) ([]*entities.General, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("count must be positive, got %d", count)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var pool []*entities.General
	for _, general := range e.Generals() {
		if general.IsHidden() || general.IsTotallyHidden() || excluded[general.Name()] {
			continue
		}
		pool = append(pool, general)
	}

	if count > len(pool) {
		return nil, errors.FailedPreconditionf("cannot draw %d generals from %d available", count, len(pool)).
			WithMeta("available", len(pool))
	}

	// Partial Fisher-Yates; Roll(n) yields 1..n
	for i := 0; i < count; i++ {
		roll, err := e.diceRoller.Roll(len(pool) - i)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll for general")
		}
		j := i + roll - 1
		if j < i || j >= len(pool) {
			return nil, errors.Internalf("roll %d out of range for %d generals", roll, len(pool)-i)
		}
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count], nil
}
