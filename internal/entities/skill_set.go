package entities

import "strings"

// SkillSet holds the skills a general owns and the names of skills it only
// references. Referenced names are resolved through a SkillRegistry on every
// query and never cached.
//
// The zero value is ready to use.
type SkillSet struct {
	owned      []Skill
	ownedNames map[string]struct{}
	referenced []string
	refNames   map[string]struct{}
}

// AddSkill takes ownership of skill. Adding a second skill with a name that is
// already owned has no effect.
func (s *SkillSet) AddSkill(skill Skill) {
	if skill == nil {
		return
	}
	if s.ownedNames == nil {
		s.ownedNames = make(map[string]struct{})
	}
	if _, ok := s.ownedNames[skill.Name()]; ok {
		return
	}
	s.ownedNames[skill.Name()] = struct{}{}
	s.owned = append(s.owned, skill)
}

// AddSkillName records a reference to a registry skill.
func (s *SkillSet) AddSkillName(name string) {
	if s.refNames == nil {
		s.refNames = make(map[string]struct{})
	}
	if _, ok := s.refNames[name]; ok {
		return
	}
	s.refNames[name] = struct{}{}
	s.referenced = append(s.referenced, name)
}

// HasSkill reports whether name is owned or referenced.
func (s *SkillSet) HasSkill(name string) bool {
	if _, ok := s.ownedNames[name]; ok {
		return true
	}
	_, ok := s.refNames[name]
	return ok
}

// OwnedSkills returns the owned skills in the order they were added.
func (s *SkillSet) OwnedSkills() []Skill {
	out := make([]Skill, len(s.owned))
	copy(out, s.owned)
	return out
}

// ReferencedSkillNames returns the referenced names in the order they were added.
func (s *SkillSet) ReferencedSkillNames() []string {
	out := make([]string, len(s.referenced))
	copy(out, s.referenced)
	return out
}

// VisibleSkillList returns the visible skills, owned first, then referenced.
// A referenced name missing from the registry resolves to an invisible
// placeholder and is dropped. Each name appears at most once.
func (s *SkillSet) VisibleSkillList(registry SkillRegistry) []Skill {
	out := make([]Skill, 0, len(s.owned)+len(s.referenced))
	seen := make(map[string]struct{}, cap(out))

	add := func(skill Skill) {
		if !skill.Visible() {
			return
		}
		if _, ok := seen[skill.Name()]; ok {
			return
		}
		seen[skill.Name()] = struct{}{}
		out = append(out, skill)
	}

	for _, skill := range s.owned {
		add(skill)
	}
	for _, name := range s.referenced {
		add(resolveSkill(registry, name))
	}
	return out
}

// VisibleSkills returns the visible skills keyed by name. It applies the same
// resolution as VisibleSkillList.
func (s *SkillSet) VisibleSkills(registry SkillRegistry) map[string]Skill {
	list := s.VisibleSkillList(registry)
	out := make(map[string]Skill, len(list))
	for _, skill := range list {
		out[skill.Name()] = skill
	}
	return out
}

// TriggerSkills returns the owned trigger skills followed by the registry
// trigger skills of referenced names. Names the registry does not know as
// trigger skills are skipped.
func (s *SkillSet) TriggerSkills(registry SkillRegistry) []TriggerSkill {
	var out []TriggerSkill
	seen := make(map[string]struct{})

	for _, skill := range s.owned {
		trigger, ok := skill.(TriggerSkill)
		if !ok {
			continue
		}
		seen[trigger.Name()] = struct{}{}
		out = append(out, trigger)
	}

	if registry == nil {
		return out
	}
	for _, name := range s.referenced {
		if _, ok := seen[name]; ok {
			continue
		}
		trigger := registry.GetTriggerSkill(name)
		if trigger == nil {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, trigger)
	}
	return out
}

// Description renders the rules text of every visible skill. Skill names are
// passed through translator and newlines become "<br/>".
func (s *SkillSet) Description(registry SkillRegistry, translator Translator) string {
	var b strings.Builder
	for _, skill := range s.VisibleSkillList(registry) {
		name := skill.Name()
		if translator != nil {
			name = translator.Translate(name, name)
		}
		desc := strings.ReplaceAll(skill.Description(), "\n", "<br/>")
		b.WriteString("<b>")
		b.WriteString(name)
		b.WriteString("</b>: ")
		b.WriteString(desc)
		b.WriteString(" <br/> <br/>")
	}
	return b.String()
}

func resolveSkill(registry SkillRegistry, name string) Skill {
	if registry != nil {
		if skill := registry.GetSkill(name); skill != nil {
			return skill
		}
	}
	return placeholderSkill{name: name}
}
