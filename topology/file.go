// Package topology reads and writes YAML network descriptions: nodes with
// availabilities and the links between them.
//
// Example:
//
//	name: diamond
//	default_availability: 0.99
//	nodes:
//	  - {id: 1, name: core-a}
//	  - {id: 2, availability: 0.9}
//	  - {id: 3}
//	  - {id: 4, name: core-b}
//	links:
//	  - {a: 1, b: 2}
//	  - {a: 1, b: 3}
//	  - {a: 2, b: 4, weight: 2}
//	  - {a: 3, b: 4}
package topology

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidTopology is wrapped by every parse, validation and build error.
var ErrInvalidTopology = errors.New("topology: invalid topology")

// validate is the shared validator instance.
var validate = validator.New()

// File is the on-disk form of a topology.
type File struct {
	Name                string     `yaml:"name" validate:"required,max=128"`
	DefaultAvailability *float64   `yaml:"default_availability,omitempty" validate:"omitempty,gte=0,lte=1"`
	Nodes               []NodeSpec `yaml:"nodes" validate:"required,min=2,dive"`
	Links               []LinkSpec `yaml:"links" validate:"dive"`
}

// NodeSpec declares one node. Availability falls back to the file default.
type NodeSpec struct {
	ID           int      `yaml:"id" validate:"min=1"`
	Name         string   `yaml:"name,omitempty" validate:"omitempty,max=64"`
	Availability *float64 `yaml:"availability,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// LinkSpec declares one undirected link. Weight defaults to 1.
type LinkSpec struct {
	A      int      `yaml:"a" validate:"min=1"`
	B      int      `yaml:"b" validate:"min=1,nefield=A"`
	Weight *float64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks struct tags and reports the first violation.
func (f *File) Validate() error {
	if f == nil {
		return fmt.Errorf("file is nil: %w", ErrInvalidTopology)
	}
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTopology, formatValidationError(err))
	}

	return nil
}

// formatValidationError renders the first validator failure as
// "Namespace: message".
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	e := verrs[0]
	field, param := e.Namespace(), e.Param()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, param)
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "nefield":
		return fmt.Errorf("%s: must differ from %s", field, param)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
