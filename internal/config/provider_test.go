// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/screensniper/install-locales/pkg/types"
)

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       LoadOptions
		wantFields int
	}{
		{name: "all empty", opts: LoadOptions{}},
		{name: "all valid", opts: LoadOptions{ConfigFilePath: "/tmp/locales.cue", Root: "/tmp/app"}},
		{name: "blank config path", opts: LoadOptions{ConfigFilePath: types.FilesystemPath("   ")}, wantFields: 1},
		{name: "blank root", opts: LoadOptions{Root: types.FilesystemPath("\t")}, wantFields: 1},
		{name: "both blank", opts: LoadOptions{ConfigFilePath: " ", Root: " "}, wantFields: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantFields == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidLoadOptions) {
				t.Fatalf("error should wrap ErrInvalidLoadOptions, got: %v", err)
			}
			var loadErr *InvalidLoadOptionsError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error should be *InvalidLoadOptionsError, got: %T", err)
			}
			if len(loadErr.FieldErrors) != tt.wantFields {
				t.Errorf("expected %d field errors, got %d", tt.wantFields, len(loadErr.FieldErrors))
			}
		})
	}
}
