// Package entities models generals, their skills and the packages that own them.
package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/dabingnn/QSanguosha/internal/assets"
)

const (
	// LordMarker in a raw general name marks the lord variant.
	LordMarker = "$"

	// EntityType is the core.Entity type reported by generals.
	EntityType = "general"

	// TinyUnknownPath is shown when a general has no tiny icon.
	TinyUnknownPath = "images/system/tiny_unknown.png"

	caoCaoWinPath = "audio/win/caocao.ogg"

	lastWordPrefix    = "~"
	winWordPrefix     = "`"
	designerPrefix    = "designer:"
	illustratorPrefix = "illustrator:"
	cvPrefix          = "cv:"
)

// IconSize is the pixel size of a general icon.
type IconSize struct {
	Width  int
	Height int
}

// Icon sizes used by the client.
var (
	BigIconSize   = IconSize{Width: 94, Height: 96}
	SmallIconSize = IconSize{Width: 122, Height: 50}
	TinyIconSize  = IconSize{Width: 42, Height: 36}
)

// General is a playable character.
//
// Callers are expected to pass a positive maxHP and a non-empty name; neither
// is checked.
type General struct {
	env *Env
	pkg *Package

	name       string
	lord       bool
	kingdom    string
	maxHP      int
	gender     Gender
	hidden     bool
	neverShown bool

	skills  SkillSet
	related []string
}

// NewGeneral creates a general. Every LordMarker in name is removed from the
// stored name and marks the general as a lord.
func NewGeneral(env *Env, name, kingdom string, maxHP int, male, hidden, neverShown bool) *General {
	gender := Female
	if male {
		gender = Male
	}

	lord := strings.Contains(name, LordMarker)
	if lord {
		name = strings.ReplaceAll(name, LordMarker, "")
	}

	return &General{
		env:        env,
		name:       name,
		lord:       lord,
		kingdom:    kingdom,
		maxHP:      maxHP,
		gender:     gender,
		hidden:     hidden,
		neverShown: neverShown,
	}
}

// Name returns the identifier, also used for asset file names.
func (g *General) Name() string { return g.name }

// GetID implements core.Entity.
func (g *General) GetID() string { return g.name }

// GetType implements core.Entity.
func (g *General) GetType() string { return EntityType }

// Kingdom returns the faction tag.
func (g *General) Kingdom() string { return g.kingdom }

// MaxHP returns the maximum health.
func (g *General) MaxHP() int { return g.maxHP }

// IsLord reports whether the raw name carried the lord marker.
func (g *General) IsLord() bool { return g.lord }

// IsHidden reports whether the general is left out of selection lists.
func (g *General) IsHidden() bool { return g.hidden }

// IsTotallyHidden reports whether the general is never shown anywhere.
func (g *General) IsTotallyHidden() bool { return g.neverShown }

// Gender returns the current gender.
func (g *General) Gender() Gender { return g.gender }

// SetGender overwrites the gender.
func (g *General) SetGender(gender Gender) { g.gender = gender }

// IsMale reports whether the general is male.
func (g *General) IsMale() bool { return g.gender == Male }

// IsFemale reports whether the general is female.
func (g *General) IsFemale() bool { return g.gender == Female }

// IsNeuter reports whether the general is neuter.
func (g *General) IsNeuter() bool { return g.gender == Neuter }

// GenderString returns "male", "female" or "neuter".
func (g *General) GenderString() string { return g.gender.String() }

// PackageName returns the name of the owning package, or "" when detached.
func (g *General) PackageName() string {
	if g.pkg == nil {
		return ""
	}
	return g.pkg.Name()
}

// PixmapPath returns the image path for category. Card categories use jpg and
// fall back from card3 to card2 to the plain card directory when the file is
// missing.
func (g *General) PixmapPath(category string) string {
	ext := "png"
	if strings.HasPrefix(category, "card") {
		ext = "jpg"
	}

	path := g.pixmapPath(category, ext)
	if category == "card3" && !g.env.exists(path) {
		category = "card2"
		path = g.pixmapPath(category, ext)
	}
	if category == "card2" && !g.env.exists(path) {
		path = g.pixmapPath("card", ext)
	}
	return path
}

func (g *General) pixmapPath(category, ext string) string {
	return fmt.Sprintf("images/generals/%s/%s.%s", category, g.name, ext)
}

// TinyIconPath returns the tiny icon, or TinyUnknownPath when it is missing.
func (g *General) TinyIconPath() string {
	path := g.PixmapPath("tiny")
	if g.env.exists(path) {
		return path
	}
	return TinyUnknownPath
}

// AddSkill attaches an owned skill.
func (g *General) AddSkill(skill Skill) { g.skills.AddSkill(skill) }

// AddSkillName references a registry skill by name.
func (g *General) AddSkillName(name string) { g.skills.AddSkillName(name) }

// HasSkill reports whether the general owns or references name.
func (g *General) HasSkill(name string) bool { return g.skills.HasSkill(name) }

// Skills exposes the general's skill set.
func (g *General) Skills() *SkillSet { return &g.skills }

// VisibleSkillList returns the visible skills in display order.
func (g *General) VisibleSkillList() []Skill {
	return g.skills.VisibleSkillList(g.env.registry())
}

// VisibleSkills returns the visible skills keyed by name.
func (g *General) VisibleSkills() map[string]Skill {
	return g.skills.VisibleSkills(g.env.registry())
}

// TriggerSkills returns every trigger skill the general has.
func (g *General) TriggerSkills() []TriggerSkill {
	return g.skills.TriggerSkills(g.env.registry())
}

// SkillDescription renders the visible skills as marked-up rules text.
func (g *General) SkillDescription() string {
	var translator Translator
	if g.env != nil {
		translator = g.env.Translator
	}
	return g.skills.Description(g.env.registry(), translator)
}

// AddRelatedSkill records a skill the general can grant or reference.
func (g *General) AddRelatedSkill(name string) {
	g.related = append(g.related, name)
}

// RelatedSkillNames returns the related skill names in insertion order.
func (g *General) RelatedSkillNames() []string {
	out := make([]string, len(g.related))
	copy(out, g.related)
	return out
}

// WinEffectPath returns the victory clip, or "" when there is none.
func (g *General) WinEffectPath() string {
	if g.IsCaoCao() {
		return caoCaoWinPath
	}
	return g.audioPath(assets.WinAudioDir)
}

// LastEffectPath returns the death clip, or "" when there is none.
func (g *General) LastEffectPath() string {
	return g.audioPath(assets.DeathAudioDir)
}

func (g *General) audioPath(dir string) string {
	path, _ := assets.ResolveVariant(g.name, func(key string) (string, bool) {
		return g.env.audioPath(dir, key)
	})
	return path
}

// PlayLastWord plays the death clip.
func (g *General) PlayLastWord() {
	g.env.playEffect(g.LastEffectPath())
}

// PlayWinWord plays the victory clip.
func (g *General) PlayWinWord() {
	g.env.playEffect(g.WinEffectPath())
}

// LastWord returns the localized dying line, or "".
func (g *General) LastWord() string {
	return g.word(lastWordPrefix)
}

// WinWord returns the localized victory line, or "".
func (g *General) WinWord() string {
	return g.word(winWordPrefix)
}

func (g *General) word(prefix string) string {
	word, _ := assets.ResolveVariant(g.name, func(key string) (string, bool) {
		value := g.env.translate(prefix+key, "")
		return value, value != ""
	})
	return word
}

// IsCaoCao reports whether the general is one of the Cao Cao variants.
func (g *General) IsCaoCao() bool {
	return strings.Contains(g.name, "caocao") || g.name == "weiwudi"
}

// IsZhugeliang reports whether the general is one of the Zhuge Liang variants.
func (g *General) IsZhugeliang() bool {
	return strings.Contains(g.name, "zhugeliang") || g.name == "wolong"
}

// NameContains reports whether the identifier contains s.
func (g *General) NameContains(s string) bool {
	return strings.Contains(g.name, s)
}

// Designer returns the localized designer credit.
func (g *General) Designer() string {
	return g.env.translate(designerPrefix+g.name, "")
}

// Illustrator returns the localized illustrator credit.
func (g *General) Illustrator() string {
	return g.env.translate(illustratorPrefix+g.name, "")
}

// CV returns the localized voice actor credit.
func (g *General) CV() string {
	return g.env.translate(cvPrefix+g.name, "")
}

var _ core.Entity = (*General)(nil)
