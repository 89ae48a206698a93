// internal/form/definition.go
//
// YAML form-definition loader.
//
// Context
// -------
// Public forms (today: the contact form) are declared in YAML files
// under conf/forms/.  At startup every "*.yaml" there is parsed and
// stored in an in-memory registry; the validator fetches definitions
// from the registry by ID, so the server and the rendered markup
// enforce the same rules from a single source of truth.
package form

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FormDef represents one form definition loaded from YAML.
type FormDef struct {
	ID     string     `yaml:"id"`     // Identifier, e.g. "contact".
	Title  string     `yaml:"title"`  // Display title, optional.
	Fields []FieldDef `yaml:"fields"` // Flat list of fields.
}

// FieldDef describes a single input control.  Validation metadata lives
// inline so the server enforces the same rules the markup hints at.
type FieldDef struct {
	Name        string `yaml:"name"`        // Submission key.  Required.
	Label       string `yaml:"label"`       // Human-readable label.  Required.
	Type        string `yaml:"type"`        // text, textarea, email, number.
	Placeholder string `yaml:"placeholder"` // Optional placeholder text.
	Required    bool   `yaml:"required"`
	MinLength   int    `yaml:"minlength"` // 0 means unset.
	MaxLength   int    `yaml:"maxlength"` // 0 means unset.
	Pattern     string `yaml:"pattern"`   // Regex pattern string.
	ErrorMsg    string `yaml:"error"`     // Custom error message, optional.
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*FormDef)
)

// GetFormDef returns a parsed FormDef by ID.  The boolean is false when
// the ID is unknown.
func GetFormDef(id string) (*FormDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fd, ok := registry[id]
	return fd, ok
}

// Register adds a definition to the registry, replacing any previous
// entry with the same ID.  Exposed for tests.
func Register(fd *FormDef) {
	registryMu.Lock()
	registry[fd.ID] = fd
	registryMu.Unlock()
}

// LoadFormDef parses one YAML file, validates its structure, and
// returns a populated FormDef.  It never mutates the registry.
func LoadFormDef(path string) (*FormDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", path, err)
	}

	var fd FormDef
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	if err := validateFormDef(&fd, path); err != nil {
		return nil, err
	}
	return &fd, nil
}

// RegisterForms loads every "*.yaml" in dir into the registry.  A parse
// or structural error fails fast so issues surface loudly at startup.
func RegisterForms(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		fd, err := LoadFormDef(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		Register(fd)
	}
	return nil
}

// validateFormDef enforces structural rules that YAML tags alone cannot
// express.
func validateFormDef(fd *FormDef, path string) error {
	if fd.ID == "" {
		return fmt.Errorf("form definition %s: missing required 'id'", path)
	}
	if len(fd.Fields) == 0 {
		return fmt.Errorf("form definition %s: must have 'fields'", path)
	}

	seen := make(map[string]struct{})
	for i := range fd.Fields {
		f := &fd.Fields[i]
		if err := validateField(f, path); err != nil {
			return err
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("form %s: duplicate field name %q", path, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// validateField confirms that essential attributes are present and sane.
func validateField(f *FieldDef, path string) error {
	if f.Name == "" {
		return fmt.Errorf("form %s: field missing 'name'", path)
	}
	if f.Label == "" {
		return fmt.Errorf("form %s: field %q missing 'label'", path, f.Name)
	}
	if f.Type == "" {
		return fmt.Errorf("form %s: field %q missing 'type'", path, f.Name)
	}
	if f.Pattern != "" {
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return fmt.Errorf("form %s: field %q invalid regex pattern: %v", path, f.Name, err)
		}
	}
	if f.MinLength < 0 || f.MaxLength < 0 {
		return fmt.Errorf("form %s: field %q minlength/maxlength cannot be negative", path, f.Name)
	}
	if f.MaxLength > 0 && f.MinLength > f.MaxLength {
		return fmt.Errorf("form %s: field %q minlength greater than maxlength", path, f.Name)
	}
	return nil
}
