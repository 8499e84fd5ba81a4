package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
	"github.com/tsatke/conststr"
	"gopkg.in/yaml.v3"
)

const testManifest = `package: events
constants:
  - name: KindUserCreated
    value: user.created
    doc: is the kind of user creation events.
bounded:
  - name: Username
    capacity: 32
`

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

type CommandSuite struct {
	suite.Suite

	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func (suite *CommandSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.stdout = new(bytes.Buffer)
	suite.stderr = new(bytes.Buffer)

	suite.Require().NoError(afero.WriteFile(suite.fs, "constants.yaml", []byte(testManifest), 0644))
}

func (suite *CommandSuite) TearDownTest() {
	suite.T().Logf("stdout (%d bytes):\n%s", len(suite.stdout.Bytes()), suite.stdout.String())
	suite.T().Logf("stderr (%d bytes):\n%s", len(suite.stderr.Bytes()), suite.stderr.String())
}

func (suite *CommandSuite) run(args ...string) error {
	cmd := newRootCmd(suite.fs)
	cmd.SetOut(suite.stdout)
	cmd.SetErr(suite.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (suite *CommandSuite) wantComponents() componentsDocument {
	var want componentsDocument
	capacity := 32
	want.Components.Schemas = map[string]conststr.Schema{
		"KindUserCreated": {
			Type:        "string",
			Description: "is the kind of user creation events.",
			Enum:        []string{"user.created"},
		},
		"Username": {
			Type:      "string",
			MaxLength: &capacity,
		},
	}
	return want
}

func (suite *CommandSuite) TestGen() {
	suite.Require().NoError(afero.WriteFile(suite.fs, "header.txt", []byte("// Copyright 2026 The Authors.\n"), 0644))

	suite.Require().NoError(suite.run("gen", "-f", "constants.yaml", "-o", "zz_generated.go", "--header", "header.txt"))

	got, err := afero.ReadFile(suite.fs, "zz_generated.go")
	suite.Require().NoError(err)
	suite.Contains(string(got), "// Copyright 2026 The Authors.\n\n// Code generated by conststr. DO NOT EDIT.\n")
	suite.Contains(string(got), "type KindUserCreated = conststr.String[kindUserCreatedLiteral]\n")
	suite.Contains(string(got), "type Username = conststr.Bounded[usernameCapacity]\n")
	suite.Contains(suite.stderr.String(), "wrote zz_generated.go")
}

func (suite *CommandSuite) TestGenMissingManifest() {
	err := suite.run("gen", "-f", "missing.yaml")
	suite.Error(err)

	exists, err := afero.Exists(suite.fs, "zz_generated_conststr.go")
	suite.NoError(err)
	suite.False(exists)
}

func (suite *CommandSuite) TestSchemaJSON() {
	suite.Require().NoError(suite.run("schema", "--format", "json"))

	var got componentsDocument
	suite.Require().NoError(json.Unmarshal(suite.stdout.Bytes(), &got))
	if diff := cmp.Diff(suite.wantComponents(), got); diff != "" {
		suite.Failf("not equal", "(-want +got):\n%s", diff)
	}
}

func (suite *CommandSuite) TestSchemaYAML() {
	suite.Require().NoError(suite.run("schema", "-f", "constants.yaml"))

	var got componentsDocument
	suite.Require().NoError(yaml.Unmarshal(suite.stdout.Bytes(), &got))
	if diff := cmp.Diff(suite.wantComponents(), got); diff != "" {
		suite.Failf("not equal", "(-want +got):\n%s", diff)
	}
}

func (suite *CommandSuite) TestSchemaUnknownFormat() {
	suite.EqualError(suite.run("schema", "--format", "xml"), `unknown format "xml", must be yaml or json`)
}

func (suite *CommandSuite) TestVersion() {
	suite.Require().NoError(suite.run("version"))
	suite.Equal(Version+"\n", suite.stdout.String())
}

func (suite *CommandSuite) TestVerboseIsReset() {
	suite.Require().NoError(suite.run("schema", "-v"))
	suite.Equal(log.DebugLevel, log.GetLevel())
	suite.Contains(suite.stderr.String(), "built 2 schemas")

	suite.stderr.Reset()
	suite.Require().NoError(suite.run("schema"))
	suite.Equal(log.InfoLevel, log.GetLevel())
	suite.NotContains(suite.stderr.String(), "built 2 schemas")
}
