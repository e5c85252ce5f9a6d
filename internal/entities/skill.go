package entities

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Skill is a named ability a general can have.
type Skill interface {
	Name() string
	Visible() bool
	Description() string
}

// TriggerSkill is a Skill that reacts to game events published on the event bus.
type TriggerSkill interface {
	Skill
	// Events lists the event types the skill subscribes to.
	Events() []string
	// Priority orders handlers for the same event type; higher runs first.
	Priority() int
	Trigger(ctx context.Context, event events.Event) error
}

// BaseSkill is a plain skill definition.
type BaseSkill struct {
	name        string
	description string
	visible     bool
}

// NewSkill creates a skill. Names starting with "#" are internal helpers and
// are never shown.
func NewSkill(name, description string) *BaseSkill {
	return &BaseSkill{
		name:        name,
		description: description,
		visible:     !strings.HasPrefix(name, "#"),
	}
}

// NewHiddenSkill creates a skill that is never shown regardless of its name.
func NewHiddenSkill(name, description string) *BaseSkill {
	return &BaseSkill{
		name:        name,
		description: description,
	}
}

// Name returns the skill name.
func (s *BaseSkill) Name() string {
	return s.name
}

// Visible reports whether the skill is listed to players.
func (s *BaseSkill) Visible() bool {
	return s.visible
}

// Description returns the raw rules text.
func (s *BaseSkill) Description() string {
	return s.description
}

// TriggerFunc handles one event for a trigger skill.
type TriggerFunc func(ctx context.Context, event events.Event) error

// TriggerSkillConfig describes a trigger skill.
type TriggerSkillConfig struct {
	Name        string
	Description string
	Events      []string
	Priority    int
	Hidden      bool
	OnTrigger   TriggerFunc
}

// BaseTriggerSkill is a skill bound to one or more event types.
type BaseTriggerSkill struct {
	*BaseSkill
	events    []string
	priority  int
	onTrigger TriggerFunc
}

// NewTriggerSkill creates a trigger skill. Hidden overrides the "#" naming rule.
func NewTriggerSkill(cfg TriggerSkillConfig) *BaseTriggerSkill {
	evts := make([]string, len(cfg.Events))
	copy(evts, cfg.Events)

	base := NewSkill(cfg.Name, cfg.Description)
	if cfg.Hidden {
		base = NewHiddenSkill(cfg.Name, cfg.Description)
	}

	return &BaseTriggerSkill{
		BaseSkill: base,
		events:    evts,
		priority:  cfg.Priority,
		onTrigger: cfg.OnTrigger,
	}
}

// Events returns the subscribed event types.
func (s *BaseTriggerSkill) Events() []string {
	out := make([]string, len(s.events))
	copy(out, s.events)
	return out
}

// Priority returns the handler priority.
func (s *BaseTriggerSkill) Priority() int {
	return s.priority
}

// Trigger runs the handler, if any.
func (s *BaseTriggerSkill) Trigger(ctx context.Context, event events.Event) error {
	if s.onTrigger == nil {
		return nil
	}
	return s.onTrigger(ctx, event)
}

// placeholderSkill stands in for a referenced name the registry does not know.
type placeholderSkill struct {
	name string
}

func (s placeholderSkill) Name() string        { return s.name }
func (s placeholderSkill) Visible() bool       { return false }
func (s placeholderSkill) Description() string { return "" }

var (
	_ Skill        = (*BaseSkill)(nil)
	_ TriggerSkill = (*BaseTriggerSkill)(nil)
	_ Skill        = placeholderSkill{}
)
