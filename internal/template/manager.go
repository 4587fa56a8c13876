// Package template ships curated label documents and discovers user
// supplied ones. Built-in templates are compiled into the binary; files
// in the user or system template directories override them on name
// collision.
package template

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"labelctl/internal/config"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// documentExtensions are the file extensions recognized in template
// directories, in lookup order.
var documentExtensions = []string{".yaml", ".yml", ".toml"}

// Info describes one available template.
type Info struct {
	Name        string
	Description string
	// Path is the file the template came from; empty for built-ins.
	Path string
}

// Builtin reports whether the template is compiled into the binary.
func (i Info) Builtin() bool {
	return i.Path == ""
}

// Manager discovers and loads templates.
type Manager struct {
	dirs []string
}

// NewManager returns a manager over the default template directories:
// ~/.config/labelctl/templates and /usr/local/share/labelctl/templates.
func NewManager() *Manager {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "labelctl", "templates"))
	}
	dirs = append(dirs, "/usr/local/share/labelctl/templates")
	return NewManagerWithDirs(dirs...)
}

// NewManagerWithDirs returns a manager over explicit directories.
// Earlier directories win on name collision; built-ins always lose.
func NewManagerWithDirs(dirs ...string) *Manager {
	return &Manager{dirs: dirs}
}

// List returns every available template sorted by name.
func (m *Manager) List() ([]Info, error) {
	seen := make(map[string]Info)

	for _, dir := range m.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Missing template directories are fine.
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !hasDocumentExtension(entry.Name()) {
				continue
			}
			name := trimDocumentExtension(entry.Name())
			if _, ok := seen[name]; ok {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			seen[name] = Info{
				Name:        name,
				Description: describeFile(path),
				Path:        path,
			}
		}
	}

	builtins, err := builtinInfos()
	if err != nil {
		return nil, err
	}
	for _, info := range builtins {
		if _, ok := seen[info.Name]; !ok {
			seen[info.Name] = info
		}
	}

	infos := make([]Info, 0, len(seen))
	for _, info := range seen {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Load parses the named template into a label config. User and system
// templates are preferred over built-ins.
func (m *Manager) Load(name string) (*config.Config, error) {
	data, format, err := m.Raw(name)
	if err != nil {
		return nil, err
	}
	return config.Decode(data, format)
}

// Raw returns the named template's document bytes and format.
func (m *Manager) Raw(name string) ([]byte, config.Format, error) {
	for _, dir := range m.dirs {
		for _, ext := range documentExtensions {
			path := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			return data, config.FormatForPath(path), nil
		}
	}

	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err == nil {
		return data, config.FormatYAML, nil
	}

	return nil, config.FormatYAML, fmt.Errorf(
		"template %q not found: use 'labelctl template list' to see available templates", name)
}

func builtinInfos() ([]Info, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		name := trimDocumentExtension(entry.Name())
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, err
		}
		infos = append(infos, Info{Name: name, Description: describeDocument(data, config.FormatYAML)})
	}
	return infos, nil
}

func describeFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "User template"
	}
	return describeDocument(data, config.FormatForPath(path))
}

func describeDocument(data []byte, format config.Format) string {
	cfg, err := config.Decode(data, format)
	if err != nil || cfg.Description == "" {
		return "User template"
	}
	return cfg.Description
}

func hasDocumentExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range documentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func trimDocumentExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
