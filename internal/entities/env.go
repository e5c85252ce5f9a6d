package entities

//go:generate mockgen -destination=mock/mock_env.go -package=entitiesmock github.com/dabingnn/QSanguosha/internal/entities SkillRegistry,Translator,AudioProvider,AssetStore

// SkillRegistry owns the canonical skill definitions. A nil result means the
// name is unknown.
type SkillRegistry interface {
	GetSkill(name string) Skill
	GetTriggerSkill(name string) TriggerSkill
}

// Translator looks up localized text. It returns def when key has no entry;
// a value equal to key is a real entry.
type Translator interface {
	Translate(key, def string) string
}

// AudioProvider finds audio clips and plays effects.
type AudioProvider interface {
	// AudioPath returns the clip for key under dir, if one exists.
	AudioPath(dir, key string) (string, bool)
	// PlayEffect starts playback and returns immediately.
	PlayEffect(path string)
}

// AssetStore reports whether an asset file exists.
type AssetStore interface {
	Exists(path string) bool
}

// Env carries the shared services a General consults. Any field may be nil;
// a nil service behaves as if every lookup missed.
type Env struct {
	Skills     SkillRegistry
	Translator Translator
	Audio      AudioProvider
	Assets     AssetStore
}

func (e *Env) registry() SkillRegistry {
	if e == nil {
		return nil
	}
	return e.Skills
}

func (e *Env) translate(key, def string) string {
	if e == nil || e.Translator == nil {
		return def
	}
	return e.Translator.Translate(key, def)
}

func (e *Env) exists(path string) bool {
	if e == nil || e.Assets == nil {
		return false
	}
	return e.Assets.Exists(path)
}

func (e *Env) audioPath(dir, key string) (string, bool) {
	if e == nil || e.Audio == nil {
		return "", false
	}
	return e.Audio.AudioPath(dir, key)
}

func (e *Env) playEffect(path string) {
	if e == nil || e.Audio == nil {
		return
	}
	e.Audio.PlayEffect(path)
}
