package quality

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"default", Default, false},
		{"screen", Screen, false},
		{"Ebook", Ebook, false},
		{" printer ", Printer, false},
		{"PREPRESS", Prepress, false},
		{"lossless", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGhostscriptArgs(t *testing.T) {
	if args := Default.GhostscriptArgs(); len(args) != 0 {
		t.Fatalf("default profile must not downsample, got %v", args)
	}
	for _, p := range []Profile{Screen, Ebook, Printer, Prepress} {
		args := p.GhostscriptArgs()
		if len(args) == 0 {
			t.Fatalf("profile %s produced no arguments", p)
		}
		if !strings.Contains(args[0], string(p)) {
			t.Fatalf("profile %s maps to unexpected setting %q", p, args[0])
		}
	}
}

func TestTargetDPI(t *testing.T) {
	if Screen.TargetDPI() != 72 || Ebook.TargetDPI() != 150 || Printer.TargetDPI() != 300 || Prepress.TargetDPI() != 300 {
		t.Fatal("unexpected downsampling dpi")
	}
	if Default.TargetDPI() != 0 {
		t.Fatal("default profile must report no downsampling")
	}
}
