package skeleton

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"go.yaml.in/yaml/v3"

	"github.com/skelly-dev/skelly/internal/inputs"
)

type rawConfig struct {
	TemplateDirectory string     `mapstructure:"template_directory"`
	Requires          string     `mapstructure:"requires"`
	Exclude           []string   `mapstructure:"exclude"`
	Inputs            []rawInput `mapstructure:"inputs" validate:"unique=Name,dive"`
}

type rawInput struct {
	Name        string        `mapstructure:"name" validate:"required,inputname"`
	Description string        `mapstructure:"description"`
	Default     interface{}   `mapstructure:"default"`
	Options     []interface{} `mapstructure:"options"`
}

var inputNamePattern = regexp.MustCompile(`^[^=\s]+$`)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	if err := v.RegisterValidation("inputname", func(fl validator.FieldLevel) bool {
		return inputNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Locate returns the config file in dir, trying ConfigNames in order.
func Locate(fsys afero.Fs, dir string) (string, error) {
	for _, name := range ConfigNames {
		path := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fsys, path); ok {
			return path, nil
		}
	}
	return "", &ConfigError{
		Path: dir,
		Err:  fmt.Errorf("no %s found", strings.Join(ConfigNames, ", ")),
	}
}

// Load locates, reads and parses the config of the skeleton in dir.
func Load(fsys afero.Fs, dir string) (*Config, error) {
	path, err := Locate(fsys, dir)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}
	return Parse(data, path)
}

// Parse decodes a config document. The format is chosen by the extension
// of path, and the skeleton directory is the directory containing path.
func Parse(data []byte, path string) (*Config, error) {
	doc, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	issues, err := validateDocument(doc)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if len(issues) > 0 {
		return nil, &ConfigError{Path: path, Issues: issues}
	}

	var raw rawConfig
	if err := mapstructure.Decode(doc, &raw); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("decoding config: %w", err)}
	}
	if issues := checkStruct(&raw); len(issues) > 0 {
		return nil, &ConfigError{Path: path, Issues: issues}
	}

	cfg, issues := build(&raw, filepath.Dir(path))
	if len(issues) > 0 {
		return nil, &ConfigError{Path: path, Issues: issues}
	}
	cfg.File = path
	return cfg, nil
}

func decode(data []byte, ext string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return doc, nil
}

func checkStruct(raw *rawConfig) []Issue {
	err := structValidator.Struct(raw)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Path:    namespacePath(fe.Namespace()),
			Message: tagMessage(fe),
			Keyword: fe.Tag(),
		})
	}
	return issues
}

// namespacePath turns "rawConfig.inputs[1].name" into "/inputs/1/name".
func namespacePath(ns string) string {
	_, ns, _ = strings.Cut(ns, ".")
	r := strings.NewReplacer("[", "/", "]", "", ".", "/")
	return "/" + r.Replace(ns)
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "unique":
		return "input names must be unique"
	case "inputname":
		return fmt.Sprintf("input name %q must not contain '=' or whitespace", fe.Value())
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func build(raw *rawConfig, dir string) (*Config, []Issue) {
	var issues []Issue

	tmplDir := raw.TemplateDirectory
	if tmplDir == "" {
		tmplDir = DefaultTemplateDirectory
	}
	if !filepath.IsLocal(filepath.FromSlash(tmplDir)) {
		issues = append(issues, Issue{
			Path:    "/template_directory",
			Message: fmt.Sprintf("%q must be a relative path inside the skeleton", tmplDir),
		})
	}

	if raw.Requires != "" {
		if _, err := semver.NewConstraint(raw.Requires); err != nil {
			issues = append(issues, Issue{
				Path:    "/requires",
				Message: fmt.Sprintf("invalid version constraint: %v", err),
			})
		}
	}

	cfg := &Config{
		Dir:               dir,
		TemplateDirectory: filepath.Join(dir, filepath.FromSlash(tmplDir)),
		Requires:          raw.Requires,
		Exclude:           raw.Exclude,
		Inputs:            make([]Input, 0, len(raw.Inputs)),
	}

	for i, r := range raw.Inputs {
		in, err := toInput(r)
		if err != nil {
			issues = append(issues, Issue{Path: fmt.Sprintf("/inputs/%d", i), Message: err.Error()})
			continue
		}
		cfg.Inputs = append(cfg.Inputs, in)
	}

	return cfg, issues
}

// toInput coerces scalar defaults and options to strings, so `default = 42`
// becomes "42".
func toInput(r rawInput) (Input, error) {
	in := Input{
		Definition:  inputs.Definition{Name: r.Name},
		Description: r.Description,
	}
	if r.Default != nil {
		s, err := cast.ToStringE(r.Default)
		if err != nil {
			return Input{}, fmt.Errorf("default: %w", err)
		}
		in.Default = &s
	}
	if r.Options != nil {
		in.Options = make([]string, 0, len(r.Options))
		for _, o := range r.Options {
			s, err := cast.ToStringE(o)
			if err != nil {
				return Input{}, fmt.Errorf("options: %w", err)
			}
			in.Options = append(in.Options, s)
		}
	}
	return in, nil
}
