// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package formula

import (
	"errors"
	"testing"
)

func TestParseInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{raw: "7.2", want: 7.2},
		{raw: "  90 ", want: 90},
		{raw: "-1.5", want: -1.5},
		{raw: "", wantErr: ErrEmptyInput},
		{raw: "   ", wantErr: ErrEmptyInput},
		{raw: "abc", wantErr: ErrNotANumber},
		{raw: "12abc", wantErr: ErrNotANumber},
		{raw: "NaN", wantErr: ErrNotANumber},
		{raw: "Inf", wantErr: ErrNotANumber},
	}

	for _, tt := range tests {
		got, err := ParseInput(tt.raw)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseInput(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}

			continue
		}

		if err != nil {
			t.Fatalf("ParseInput(%q) failed: %v", tt.raw, err)
		}

		assertFloatClose(t, got, tt.want)
	}
}
