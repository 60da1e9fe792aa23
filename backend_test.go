package mediainfo

import "testing"

func TestBackendMetadata(t *testing.T) {
	tests := []struct {
		backend   Backend
		name      string
		transport Transport
		openPath  bool
		countAll  uint64
	}{
		{BackendNone, "none", TransportDirect, false, 0},
		{BackendCgo, "cgo", TransportDirect, true, ^uint64(0)},
		{BackendPurego, "purego", TransportDirect, true, ^uint64(0)},
		{BackendJS, "js-bridge", TransportBridge, false, 0xFFFFFFFF},
		{BackendWASI, "wasi-bridge", TransportBridge, false, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.backend.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.backend.Transport(); got != tt.transport {
				t.Errorf("Transport() = %v, want %v", got, tt.transport)
			}
			if got := tt.backend.Features().Has(FeatureOpenPath); got != tt.openPath {
				t.Errorf("Has(FeatureOpenPath) = %v, want %v", got, tt.openPath)
			}
			if got := tt.backend.countAll(); got != tt.countAll {
				t.Errorf("countAll() = %#x, want %#x", got, tt.countAll)
			}
			bridge := tt.transport == TransportBridge
			if got := tt.backend.Features().Has(FeatureGotoGetHalves); got != bridge {
				t.Errorf("Has(FeatureGotoGetHalves) = %v, want %v", got, bridge)
			}
		})
	}
}

func TestBackendOutOfRange(t *testing.T) {
	b := Backend(200)
	if b.String() != "unknown" || b.Available() || b.Features() != 0 || b.countAll() != 0 {
		t.Errorf("out-of-range backend reported metadata: %v %v %v", b, b.Available(), b.Features())
	}
}

func TestCompiledBackendAvailability(t *testing.T) {
	b := CompiledBackend()
	if IsAvailable() != b.Available() {
		t.Errorf("IsAvailable() = %v but %v.Available() = %v", IsAvailable(), b, b.Available())
	}
	if b == BackendNone && IsAvailable() {
		t.Error("BackendNone must never be available")
	}
}

func TestFeaturesHas(t *testing.T) {
	f := FeatureOpenPath | FeatureWideStrings
	if !f.Has(FeatureOpenPath) || !f.Has(FeatureOpenPath|FeatureWideStrings) {
		t.Error("Has() missed a set feature")
	}
	if f.Has(FeatureGotoGetHalves) || f.Has(FeatureOpenPath|FeatureGotoGetHalves) {
		t.Error("Has() reported an unset feature")
	}
}

func TestKindNames(t *testing.T) {
	want := []string{"General", "Video", "Audio", "Text", "Other", "Image", "Menu"}
	kinds := StreamKinds()
	if len(kinds) != len(want) {
		t.Fatalf("StreamKinds() has %d entries, want %d", len(kinds), len(want))
	}
	for i, k := range kinds {
		if int(k) != i {
			t.Errorf("StreamKinds()[%d] = %d", i, k)
		}
		if k.String() != want[i] {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want[i])
		}
	}
	if StreamMax.String() != "unknown" {
		t.Errorf("StreamMax.String() = %q", StreamMax.String())
	}
	if InfoMeasureText.String() != "Measure_Text" || InfoMax.String() != "unknown" {
		t.Error("InfoKind names")
	}
	if InfoHowTo != 7 || InfoMax != 8 || StreamMax != 7 {
		t.Error("enum values must match the engine's")
	}
}
