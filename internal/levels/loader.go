package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// yamlLevel is the on-disk YAML structure of a level file.
type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

var builtin []Level

func init() {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: read builtin: %v", err))
	}
	for _, e := range entries {
		p := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			panic(fmt.Sprintf("levels: read %s: %v", p, err))
		}
		lvl, err := parse(p, data)
		if err != nil {
			panic(fmt.Sprintf("levels: builtin %s: %v", p, err))
		}
		lvl.FilePath = ""
		builtin = append(builtin, lvl)
	}
}

// Builtin returns the embedded campaign in play order.
func Builtin() []Level {
	out := make([]Level, len(builtin))
	copy(out, builtin)
	return out
}

// Find returns the built-in level with the given ID.
func Find(id string) (Level, bool) {
	for _, l := range builtin {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walk %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads and validates a single level file. Plain text files take
// their ID from the file name.
func (l *Loader) LoadFile(p string) (Level, error) {
	return LoadFile(p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// LoadFile loads and validates a single level file.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: read %s: %w", p, err)
	}
	lvl, err := parse(p, data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}
	return lvl, nil
}

// Resolve finds a single level by reference. An existing file path is loaded
// directly; anything else is taken as a level ID and looked up in dir, or in
// the built-in pack when dir is empty.
func Resolve(ref, dir string) (Level, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	if dir != "" {
		return NewLoader(dir).LoadByID(ref)
	}
	if lvl, ok := Find(ref); ok {
		return lvl, nil
	}
	return Level{}, fmt.Errorf("levels: no map file or built-in level named %q", ref)
}

// Parse builds a validated level from raw map text.
func Parse(id, text string) (Level, error) {
	lvl := Level{ID: id, Name: titleFromID(id), Layout: Normalize(text)}
	if err := Validate(lvl.Layout); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func parse(p string, data []byte) (Level, error) {
	id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))

	var lvl Level
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		var yl yamlLevel
		if err := yaml.Unmarshal(data, &yl); err != nil {
			return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if yl.ID != "" {
			id = yl.ID
		}
		lvl = Level{ID: id, Name: yl.Name, Layout: Normalize(yl.Layout), Metadata: yl.Metadata}
	case ".txt", ".map":
		lvl = Level{ID: id, Layout: Normalize(string(data))}
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", filepath.Ext(p))
	}

	if lvl.Name == "" {
		lvl.Name = titleFromID(lvl.ID)
	}
	lvl.FilePath = p

	if err := Validate(lvl.Layout); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".map"}
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func titleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
