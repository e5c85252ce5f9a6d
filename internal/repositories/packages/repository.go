// Package packages loads general packages from YAML definitions and installs
// them into the engine.
package packages

//go:generate mockgen -destination=mock/mock_repository.go -package=packagesmock github.com/dabingnn/QSanguosha/internal/repositories/packages Repository

import (
	"context"

	"github.com/dabingnn/QSanguosha/internal/entities"
)

// DefaultPattern matches the package files shipped with the game data
const DefaultPattern = "packages/*.yaml"

// Installer receives loaded packages
type Installer interface {
	Env() *entities.Env
	GetSkill(name string) entities.Skill
	AddPackage(pkg *entities.Package) error
}

// LoadInput defines the input for loading one package file
type LoadInput struct {
	Path string
}

// LoadOutput defines the output of loading one package file
type LoadOutput struct {
	Package *entities.Package
}

// ListInput defines the input for listing package files
type ListInput struct {
	// Pattern is a path.Match pattern; DefaultPattern when empty
	Pattern string
}

// ListOutput defines the output of listing package files
type ListOutput struct {
	Paths []string
}

// Repository defines the interface for package definitions
type Repository interface {
	// Load parses a package file and installs it
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List returns the package files in lexical order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
