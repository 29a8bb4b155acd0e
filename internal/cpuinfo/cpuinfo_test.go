package cpuinfo

import "testing"

func TestDetectUnknownArch(t *testing.T) {
	if got := detect("riscv64"); got != "scalar" {
		t.Errorf("detect(riscv64): got %q, want %q", got, "scalar")
	}
}

func TestScalarEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SHADE_HOST_SCALAR", tt.val)
		if got := ScalarEnv(); got != tt.want {
			t.Errorf("ScalarEnv(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestDetectHonorsScalarEnv(t *testing.T) {
	t.Setenv("SHADE_HOST_SCALAR", "1")
	for _, arch := range []string{"amd64", "arm64", "wasm"} {
		if got := detect(arch); got != "scalar" {
			t.Errorf("detect(%s) with SHADE_HOST_SCALAR: got %q, want scalar", arch, got)
		}
	}
}

func TestTargetStable(t *testing.T) {
	first := Target()
	if first == "" {
		t.Fatal("Target returned empty name")
	}
	if again := Target(); again != first {
		t.Errorf("Target changed between calls: %q then %q", first, again)
	}
}

func TestFeaturesNamed(t *testing.T) {
	for _, f := range Features() {
		if f.Name == "" {
			t.Errorf("feature with empty name: %+v", f)
		}
	}
}
