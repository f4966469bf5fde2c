package accessors

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTypeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tokens  []string
		want    TypeConfig
		wantErr error
	}{
		{
			name:   "no tokens leaves every optional kind disabled",
			tokens: nil,
			want:   TypeConfig{},
		},
		{
			name:   "all three enable tokens",
			tokens: []string{"mutable", "clone", "deref"},
			want:   TypeConfig{Mutable: true, Clone: true, Deref: true},
		},
		{
			name:   "single token",
			tokens: []string{"deref"},
			want:   TypeConfig{Deref: true},
		},
		{
			name:    "skip tokens are field-level only",
			tokens:  []string{"skip"},
			wantErr: ErrUnknownFlag,
		},
		{
			name:    "unknown token",
			tokens:  []string{"mutable", "freeze"},
			wantErr: ErrUnknownFlag,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTypeFlags("Vector3", tt.tokens)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseTypeFlags() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTypeFlags() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFieldFlags_UnknownToken(t *testing.T) {
	t.Parallel()

	_, err := parseFieldFlags("Vector3", "x", []string{"skip_ref"})
	if !errors.Is(err, ErrUnknownFlag) {
		t.Fatalf("parseFieldFlags() error = %v, want ErrUnknownFlag", err)
	}
	// The message must locate the offending annotation.
	for _, want := range []string{"Vector3", "x", "skip_ref"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("parseFieldFlags() error %q does not mention %q", err, want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	type args struct {
		tc      TypeConfig
		field   []string
		variant []string
	}

	tests := []struct {
		name string
		args args
		want FieldConfig
	}{
		{
			name: "bare field under bare type yields ref only",
			args: args{},
			want: FieldConfig{Ref: true},
		},
		{
			name: "type-level defaults inherited",
			args: args{tc: TypeConfig{Mutable: true, Clone: true, Deref: true}},
			want: FieldConfig{Ref: true, Mutable: true, Clone: true, Deref: true},
		},
		{
			name: "field enable without type default",
			args: args{field: []string{"deref"}},
			want: FieldConfig{Ref: true, Deref: true},
		},
		{
			name: "skip_mutable overrides the type default, rest inherited",
			args: args{
				tc:    TypeConfig{Mutable: true, Clone: true, Deref: true},
				field: []string{"skip_mutable"},
			},
			want: FieldConfig{Ref: true, Clone: true, Deref: true},
		},
		{
			name: "skip-kind beats field-level enable of the same kind",
			args: args{field: []string{"clone", "skip_clone"}},
			want: FieldConfig{Ref: true},
		},
		{
			name: "skip forces all four kinds off regardless of defaults",
			args: args{
				tc:    TypeConfig{Mutable: true, Clone: true, Deref: true},
				field: []string{"skip"},
			},
			want: FieldConfig{},
		},
		{
			name: "variant skip forces all four kinds off",
			args: args{
				tc:      TypeConfig{Mutable: true, Clone: true, Deref: true},
				variant: []string{"skip"},
			},
			want: FieldConfig{},
		},
		{
			name: "variant skip_deref masks deref for the variant's fields",
			args: args{
				tc:      TypeConfig{Deref: true, Clone: true},
				variant: []string{"skip_deref"},
			},
			want: FieldConfig{Ref: true, Clone: true},
		},
		{
			name: "variant skip-kind beats field-level enable",
			args: args{
				field:   []string{"mutable"},
				variant: []string{"skip_mutable"},
			},
			want: FieldConfig{Ref: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ff, err := parseFieldFlags("T", "f", tt.args.field)
			if err != nil {
				t.Fatalf("parseFieldFlags() error = %v", err)
			}
			vf, err := parseVariantFlags("T", "V", tt.args.variant)
			if err != nil {
				t.Fatalf("parseVariantFlags() error = %v", err)
			}

			got := resolve(tt.args.tc, ff, vf)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
