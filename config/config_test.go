package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettergen/gettergen/descriptor"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("testdata/valid.yml")
	require.NoError(t, err)

	g := cfg.Gettergen
	require.NotNil(t, g)
	assert.Equal(t, "./internal/model", g.Source.Package)
	assert.Equal(t, "internal/model/model_getters.go", g.Output.Filename)
	assert.Equal(t, "model", g.Output.Package)

	require.Len(t, g.Types, 2)
	// Animal declares its own getters list, untouched by defaults.
	assert.Equal(t, []string{"mutable", "clone", "deref"}, g.Types[0].Getters)
	// Pair declares none and picks up the defaults.
	assert.Equal(t, []string{"mutable"}, g.Types[1].Getters)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		wantMsg string
	}{
		{
			name:    "unknown key is rejected",
			file:    "testdata/unknown_key.yml",
			wantMsg: "unable to parse config",
		},
		{
			name:    "missing output section",
			file:    "testdata/missing_output.yml",
			wantMsg: "invalid config",
		},
		{
			name:    "product must not declare variants",
			file:    "testdata/product_with_variants.yml",
			wantMsg: "must not declare variants",
		},
		{
			name:    "sum needs variants",
			file:    "testdata/sum_without_variants.yml",
			wantMsg: "declares no variants",
		},
		{
			name:    "missing file",
			file:    "testdata/nope.yml",
			wantMsg: "unable to read config",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestTypeDescriptions(t *testing.T) {
	t.Parallel()

	cfg, err := Load("testdata/valid.yml")
	require.NoError(t, err)

	descs := cfg.Gettergen.TypeDescriptions()
	require.Len(t, descs, 2)

	want := descriptor.TypeDescription{
		Name:     "Animal",
		Category: descriptor.Sum,
		Flags:    []string{"mutable", "clone", "deref"},
		Variants: []descriptor.Variant{
			{
				Name: "Dog",
				Fields: descriptor.FieldGroup{
					{Name: "name", TypeRef: "string", Flags: []string{"skip_deref"}},
					{Name: "age", TypeRef: "uint8"},
				},
			},
			{
				Name:   "Cat",
				Flags:  []string{"skip_mutable"},
				Fields: descriptor.FieldGroup{{Name: "name", TypeRef: "string"}},
			},
		},
		Declared: true,
	}
	if diff := cmp.Diff(want, descs[0], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("TypeDescriptions()[0] mismatch (-want +got):\n%s", diff)
	}

	// Positional product: unnamed fields survive the mapping.
	assert.Equal(t, descriptor.Product, descs[1].Category)
	require.Len(t, descs[1].Fields, 2)
	assert.Empty(t, descs[1].Fields[0].Name)
	assert.Equal(t, "string", descs[1].Fields[0].TypeRef)
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gettergen.yml"), []byte("x"), 0o644))

	got, err := FindConfigFile(dir, []string{".gettergen.yml", "gettergen.yml"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gettergen.yml"), got)

	_, err = FindConfigFile(dir, []string{".missing.yml"})
	require.Error(t, err)
}
