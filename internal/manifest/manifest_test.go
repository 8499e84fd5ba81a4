package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlManifest = `package: events
constants:
  - name: KindUserCreated
    value: user.created
    doc: is the kind of user creation events.
  - name: KindUserDeleted
    value: user.deleted
bounded:
  - name: Username
    capacity: 32
`

const tomlManifest = `package = "events"

[[constants]]
name = "KindUserCreated"
value = "user.created"
doc = "is the kind of user creation events."

[[constants]]
name = "KindUserDeleted"
value = "user.deleted"

[[bounded]]
name = "Username"
capacity = 32
`

var wantManifest = &Manifest{
	Package: "events",
	Constants: []Constant{
		{Name: "KindUserCreated", Value: "user.created", Doc: "is the kind of user creation events."},
		{Name: "KindUserDeleted", Value: "user.deleted"},
	},
	Bounded: []Bounded{
		{Name: "Username", Capacity: 32},
	},
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"yaml", "constants.yaml", yamlManifest},
		{"yml", "dir/constants.yml", yamlManifest},
		{"toml", "constants.toml", tomlManifest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0644))

			got, err := Load(fs, tt.path)
			require.NoError(t, err)
			if diff := cmp.Diff(wantManifest, got); diff != "" {
				t.Errorf("manifest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "constants.json", []byte(`{}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "unknown.yaml", []byte("package: p\nextra: 1\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "invalid.yaml", []byte("package: 1.5.x\n"), 0644))

	_, err := Load(fs, "missing.yaml")
	assert.Error(t, err)

	_, err = Load(fs, "constants.json")
	assert.EqualError(t, err, `parse constants.json: unsupported manifest extension ".json"`)

	_, err = Load(fs, "unknown.yaml")
	assert.Error(t, err)

	_, err = Load(fs, "invalid.yaml")
	assert.EqualError(t, err, `validate invalid.yaml: package name "1.5.x" is not a Go identifier`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  string
	}{
		{
			"valid",
			*wantManifest,
			"",
		},
		{
			"empty",
			Manifest{Package: "p"},
			"",
		},
		{
			"missing package",
			Manifest{},
			`package name "" is not a Go identifier`,
		},
		{
			"blank package",
			Manifest{Package: "_"},
			"package name must not be the blank identifier",
		},
		{
			"invalid utf-8 value",
			Manifest{Package: "p", Constants: []Constant{{Name: "Kind", Value: "a\xffb"}}},
			"constant Kind has a value that is not valid UTF-8",
		},
		{
			"unexported constant",
			Manifest{Package: "p", Constants: []Constant{{Name: "kind", Value: "k"}}},
			`constant name "kind" is not exported`,
		},
		{
			"invalid constant name",
			Manifest{Package: "p", Constants: []Constant{{Name: "Kind-A", Value: "k"}}},
			`constant name "Kind-A" is not a Go identifier`,
		},
		{
			"duplicate across kinds",
			Manifest{
				Package:   "p",
				Constants: []Constant{{Name: "Name", Value: "n"}},
				Bounded:   []Bounded{{Name: "Name", Capacity: 3}},
			},
			`bounded name "Name" is already declared by constant`,
		},
		{
			"value constant collision",
			Manifest{
				Package: "p",
				Constants: []Constant{
					{Name: "Kind", Value: "k"},
					{Name: "KindValue", Value: "v"},
				},
			},
			`constant name "KindValue" is already declared by constant value`,
		},
		{
			"negative capacity",
			Manifest{Package: "p", Bounded: []Bounded{{Name: "Name", Capacity: -1}}},
			"bounded Name has negative capacity -1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
