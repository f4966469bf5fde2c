package accessors

import (
	"errors"
	"testing"

	"github.com/gettergen/gettergen/descriptor"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		group   descriptor.FieldGroup
		want    Shape
		wantErr error
	}{
		{
			name: "every field named",
			group: descriptor.FieldGroup{
				{Name: "x", TypeRef: "float32"},
				{Name: "y", TypeRef: "float32"},
			},
			want: ShapeNamed,
		},
		{
			name: "one named field is still named, not single-wrapped",
			group: descriptor.FieldGroup{
				{Name: "x", TypeRef: "float32"},
			},
			want: ShapeNamed,
		},
		{
			name: "unnamed fields are positional",
			group: descriptor.FieldGroup{
				{TypeRef: "string"},
				{TypeRef: "int"},
			},
			want: ShapePositional,
		},
		{
			name: "exactly one unnamed field is the newtype shape",
			group: descriptor.FieldGroup{
				{TypeRef: "float64"},
			},
			want: ShapeSingleWrapped,
		},
		{
			name:    "empty group",
			group:   descriptor.FieldGroup{},
			wantErr: ErrEmptyFieldGroup,
		},
		{
			name: "mixed named and unnamed",
			group: descriptor.FieldGroup{
				{Name: "x", TypeRef: "float32"},
				{TypeRef: "float32"},
			},
			wantErr: ErrMixedFieldGroup,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tt.group)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Classify() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
