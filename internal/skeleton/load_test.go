package skeleton

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelly-dev/skelly/internal/inputs"
)

const testdataDir = "testdata"

func parseTestdata(t *testing.T, name string) (*Config, error) {
	t.Helper()
	path := filepath.Join(testdataDir, name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return Parse(data, path)
}

func strPtr(s string) *string { return &s }

func TestParse_TOML(t *testing.T) {
	cfg, err := parseTestdata(t, "valid.toml")
	require.NoError(t, err)

	assert.Equal(t, testdataDir, cfg.Dir)
	assert.Equal(t, filepath.Join(testdataDir, "template"), cfg.TemplateDirectory)
	assert.Equal(t, ">= 0.2.0", cfg.Requires)
	assert.Equal(t, []string{"**/*.swp"}, cfg.Exclude)

	assert.Equal(t, []inputs.Definition{
		{Name: "project_name"},
		{Name: "tool", Default: strPtr("cargo"), Options: []string{"cargo", "make"}},
		{Name: "port", Default: strPtr("8080")},
		{Name: "level", Options: []string{"1", "2", "3"}},
		{Name: "enabled", Default: strPtr("true")},
	}, cfg.Definitions())
	assert.Equal(t, "Name of the generated project", cfg.Inputs[0].Description)
}

func TestParse_YAML(t *testing.T) {
	cfg, err := parseTestdata(t, "valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(testdataDir, DefaultTemplateDirectory), cfg.TemplateDirectory)
	assert.Equal(t, []inputs.Definition{
		{Name: "project_name"},
		{Name: "tool", Default: strPtr("cargo"), Options: []string{"cargo", "make"}},
		{Name: "ratio", Default: strPtr("1.5")},
	}, cfg.Definitions())
}

func TestParse_EmptyOptionsAcceptAnything(t *testing.T) {
	cfg, err := Parse([]byte("[[inputs]]\nname = \"x\"\noptions = []\n"), "skelly.toml")
	require.NoError(t, err)
	require.Len(t, cfg.Inputs, 1)
	assert.Empty(t, cfg.Inputs[0].Options)
	assert.True(t, cfg.Inputs[0].Allows("anything"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		file        string
		wantIssue   bool
		wantKeyword string
	}{
		{"invalid-missing-name.toml", true, "required"},
		{"invalid-options-not-array.toml", true, "type"},
		{"invalid-duplicate-names.yaml", true, "unique"},
		{"invalid-name-with-equals.yaml", true, "inputname"},
		{"invalid-missing-inputs.toml", true, "required"},
		{"invalid-template-escape.yaml", true, ""},
		{"invalid-requires.yaml", true, ""},
		{"invalid-not-toml.toml", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := parseTestdata(t, tt.file)
			assert.Nil(t, cfg)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, filepath.Join(testdataDir, tt.file), cerr.Path)

			if !tt.wantIssue {
				assert.Empty(t, cerr.Issues)
				assert.Error(t, cerr.Err)
				return
			}
			require.NotEmpty(t, cerr.Issues)
			if tt.wantKeyword != "" {
				var keywords []string
				for _, issue := range cerr.Issues {
					keywords = append(keywords, issue.Keyword)
				}
				assert.Contains(t, keywords, tt.wantKeyword)
			}
		})
	}
}

func TestParse_DuplicateNameIssuePath(t *testing.T) {
	_, err := parseTestdata(t, "invalid-duplicate-names.yaml")

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []Issue{{
		Path:    "/inputs",
		Message: "input names must be unique",
		Keyword: "unique",
	}}, cerr.Issues)
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse([]byte("{}"), "skelly.json")
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLocate_PrefersTOML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/skel/skelly.yaml", []byte("inputs: []\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/skel/skelly.toml", []byte("inputs = []\n"), 0644))

	path, err := Locate(fsys, "/skel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/skel", "skelly.toml"), path)
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/skel/skelly.yaml", []byte("inputs:\n  - name: tool\n    default: make\n"), 0644))

	cfg, err := Load(fsys, "/skel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/skel", "skelly.yaml"), cfg.File)
	assert.Equal(t, filepath.Join("/skel", "skeleton"), cfg.TemplateDirectory)
	assert.Equal(t, []inputs.Definition{{Name: "tool", Default: strPtr("make")}}, cfg.Definitions())
}

func TestLoad_NoConfig(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/empty")

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, err.Error(), "skelly.toml")
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{
		Path: "skelly.toml",
		Issues: []Issue{
			{Path: "/inputs/0", Message: "missing property 'name'"},
			{Message: "top level"},
		},
	}
	assert.Equal(t, "invalid skeleton config skelly.toml\n  /inputs/0: missing property 'name'\n  top level", err.Error())
}
