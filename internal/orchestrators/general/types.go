package general

import (
	"github.com/dabingnn/QSanguosha/internal/entities"
)

// WordKind selects which line a general speaks
type WordKind string

const (
	// WordLast is spoken when the general dies
	WordLast WordKind = "last"
	// WordWin is spoken when the general's side wins
	WordWin WordKind = "win"
)

// GetGeneralInput defines the request for getting a general
type GetGeneralInput struct {
	Name string
}

// GetGeneralOutput defines the response for getting a general
type GetGeneralOutput struct {
	General *entities.General
}

// ListGeneralsInput defines the request for listing generals
type ListGeneralsInput struct {
	// IncludeHidden also returns hidden and totally hidden generals
	IncludeHidden bool
	// Kingdom filters by kingdom when set
	Kingdom string
	// Package filters by package name when set
	Package string
}

// ListGeneralsOutput defines the response for listing generals
type ListGeneralsOutput struct {
	Generals []*entities.General
}

// DescribeGeneralInput defines the request for describing a general
type DescribeGeneralInput struct {
	Name string
}

// DescribeGeneralOutput defines the response for describing a general
type DescribeGeneralOutput struct {
	Details *Details
}

// Details is a flattened, display-ready view of a general
type Details struct {
	Name        string
	DisplayName string
	Package     string
	Kingdom     string
	MaxHP       int
	Gender      string
	Lord        bool
	Hidden      bool
	NeverShown  bool

	Skills           []SkillDetails
	ReferencedSkills []string
	RelatedSkills    []string
	SkillDescription string

	LastWord string
	WinWord  string

	Designer    string
	Illustrator string
	CV          string

	CardImage      string
	TinyIcon       string
	WinEffectPath  string
	LastEffectPath string
}

// SkillDetails describes one visible skill
type SkillDetails struct {
	Name        string
	DisplayName string
	Description string
	Trigger     bool
}

// PlayWordInput defines the request for playing a general's line
type PlayWordInput struct {
	Name string
	Kind WordKind
}

// PlayWordOutput defines the response for playing a general's line
type PlayWordOutput struct {
	// Path is the effect that was played, empty when no audio matched
	Path string
	// Text is the localized line, empty when no translation matched
	Text string
}

// DrawGeneralsInput defines the request for drawing random generals
type DrawGeneralsInput struct {
	Count   int
	Exclude []string
}

// DrawGeneralsOutput defines the response for drawing random generals
type DrawGeneralsOutput struct {
	Generals []*entities.General
}
