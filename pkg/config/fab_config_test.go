package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/utils"
	"gopkg.in/yaml.v3"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestDefaultFabConfig(t *testing.T) {
	cfg := DefaultFabConfig()

	if cfg.Distance != 100 {
		t.Errorf("Distance: got %v, want 100", cfg.Distance)
	}
	if cfg.Duration != 250*time.Millisecond {
		t.Errorf("Duration: got %v, want 250ms", cfg.Duration)
	}
	if cfg.FanAngle != 90 {
		t.Errorf("FanAngle: got %v, want 90", cfg.FanAngle)
	}
	if cfg.InitialOpen {
		t.Error("InitialOpen: got true, want false")
	}
	if cfg.Type != layout.TypeFan {
		t.Errorf("Type: got %v, want fan", cfg.Type)
	}
	if cfg.CollapsedFabSize != FabSizeRegular || cfg.ExpandedFabSize != FabSizeSmall {
		t.Errorf("sizes: got %v/%v, want regular/small", cfg.CollapsedFabSize, cfg.ExpandedFabSize)
	}
	if cfg.Child != utils.GlyphMenu {
		t.Errorf("Child: got %v, want menu", cfg.Child)
	}
	if cfg.ChildrenOffset.X != 4 || cfg.ChildrenOffset.Y != 4 {
		t.Errorf("ChildrenOffset: got %+v, want (4,4)", cfg.ChildrenOffset)
	}
	if cfg.OverlayStyle != nil {
		t.Error("OverlayStyle: default should be nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFabConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *FabConfig)
	}{
		{
			name: "full config",
			yamlContent: `
distance: 80
duration: 400ms
fanAngle: 120
initialOpen: true
type: up
collapsedFabSize: small
expandedFabSize: regular
child: add
foregroundColor: "#112233"
backgroundColor: "#445566CC"
childrenOffset:
  x: 2
  y: 6
closeButtonStyle:
  child: close
  foregroundColor: "#FFFFFF"
  backgroundColor: "#000000"
overlayStyle:
  color: "#00000080"
openButtonHeroTag: fab-open
closeButtonHeroTag: fab-close
forwardCurve: easeOutCubic
reverseCurve: linear
`,
			validate: func(t *testing.T, cfg *FabConfig) {
				if cfg.Distance != 80 {
					t.Errorf("expected distance = 80, got %v", cfg.Distance)
				}
				if cfg.Duration != 400*time.Millisecond {
					t.Errorf("expected duration = 400ms, got %v", cfg.Duration)
				}
				if cfg.FanAngle != 120 {
					t.Errorf("expected fanAngle = 120, got %v", cfg.FanAngle)
				}
				if !cfg.InitialOpen {
					t.Error("expected initialOpen = true")
				}
				if cfg.Type != layout.TypeUp {
					t.Errorf("expected type = up, got %v", cfg.Type)
				}
				if cfg.CollapsedFabSize != FabSizeSmall || cfg.ExpandedFabSize != FabSizeRegular {
					t.Errorf("expected small/regular, got %v/%v", cfg.CollapsedFabSize, cfg.ExpandedFabSize)
				}
				if cfg.Child != utils.GlyphAdd {
					t.Errorf("expected child = add, got %v", cfg.Child)
				}
				if cfg.ForegroundColor.R != 0x11 || cfg.ForegroundColor.A != 0xff {
					t.Errorf("unexpected foreground color %v", cfg.ForegroundColor)
				}
				if cfg.BackgroundColor.A != 0xCC {
					t.Errorf("expected background alpha 0xCC, got %#x", cfg.BackgroundColor.A)
				}
				if cfg.ChildrenOffset.X != 2 || cfg.ChildrenOffset.Y != 6 {
					t.Errorf("unexpected children offset %+v", cfg.ChildrenOffset)
				}
				if cfg.OverlayStyle == nil || cfg.OverlayStyle.Mode() != OverlayColor {
					t.Fatalf("expected color overlay, got %+v", cfg.OverlayStyle)
				}
				if cfg.OverlayStyle.Color().A != 0x80 {
					t.Errorf("expected overlay alpha 0x80, got %#x", cfg.OverlayStyle.Color().A)
				}
				if cfg.OpenButtonHeroTag != "fab-open" || cfg.CloseButtonHeroTag != "fab-close" {
					t.Errorf("unexpected hero tags %q/%q", cfg.OpenButtonHeroTag, cfg.CloseButtonHeroTag)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
type: left
overlayStyle:
  blur: 5
`,
			validate: func(t *testing.T, cfg *FabConfig) {
				if cfg.Type != layout.TypeLeft {
					t.Errorf("expected type = left, got %v", cfg.Type)
				}
				if cfg.Distance != 100 || cfg.Duration != 250*time.Millisecond {
					t.Errorf("defaults lost: distance=%v duration=%v", cfg.Distance, cfg.Duration)
				}
				if cfg.OverlayStyle == nil || cfg.OverlayStyle.Mode() != OverlayBlur || cfg.OverlayStyle.Blur() != 5 {
					t.Errorf("expected blur overlay 5, got %+v", cfg.OverlayStyle)
				}
			},
		},
		{
			name: "overlay with both color and blur",
			yamlContent: `
overlayStyle:
  color: "#000000"
  blur: 3
`,
			wantErr:     true,
			errContains: "mutually exclusive",
		},
		{
			name: "overlay with neither",
			yamlContent: `
overlayStyle: {}
`,
			wantErr:     true,
			errContains: "one of color or blur is required",
		},
		{
			name:        "unknown layout type",
			yamlContent: "type: down\n",
			wantErr:     true,
			errContains: "unknown layout type",
		},
		{
			name:        "unknown fab size",
			yamlContent: "expandedFabSize: huge\n",
			wantErr:     true,
			errContains: "unknown fab size",
		},
		{
			name:        "invalid color",
			yamlContent: "backgroundColor: \"#12\"\n",
			wantErr:     true,
			errContains: "invalid color",
		},
		{
			name:        "negative distance",
			yamlContent: "distance: -1\n",
			wantErr:     true,
			errContains: "distance must be >= 0",
		},
		{
			name:        "fan angle out of range",
			yamlContent: "fanAngle: 400\n",
			wantErr:     true,
			errContains: "fanAngle must be between 0 and 360",
		},
		{
			name:        "unknown glyph",
			yamlContent: "child: rocket\n",
			wantErr:     true,
			errContains: "unknown glyph",
		},
		{
			name:        "unknown curve",
			yamlContent: "forwardCurve: bounce\n",
			wantErr:     true,
			errContains: "forwardCurve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 创建临时 YAML 文件
			tmpDir := t.TempDir()
			tmpFile := filepath.Join(tmpDir, "fab.yaml")
			if err := os.WriteFile(tmpFile, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to create temp file: %v", err)
			}

			cfg, err := LoadFabConfig(tmpFile)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errContains)
				} else if tt.errContains != "" && !contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadFabConfig_FileNotFound(t *testing.T) {
	_, err := LoadFabConfig("/nonexistent/fab.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !contains(err.Error(), "failed to read fab config file") {
		t.Errorf("expected error about reading file, got: %v", err)
	}
}

func TestParseFabConfig_InvalidYAML(t *testing.T) {
	_, err := ParseFabConfig([]byte("invalid: yaml: content:"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !contains(err.Error(), "failed to parse fab config YAML") {
		t.Errorf("expected YAML parse error, got: %v", err)
	}
}

func TestFabConfigLayoutSpec(t *testing.T) {
	tests := []struct {
		name           string
		collapsed      FabSize
		expanded       FabSize
		wantSizeOffset float64
		wantEndScale   float64
	}{
		{"regular to small", FabSizeRegular, FabSizeSmall, 8, 40.0 / 56.0},
		{"regular to regular", FabSizeRegular, FabSizeRegular, 0, 1},
		{"small to small", FabSizeSmall, FabSizeSmall, 0, 1},
		{"small to regular", FabSizeSmall, FabSizeRegular, -8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFabConfig()
			cfg.CollapsedFabSize = tt.collapsed
			cfg.ExpandedFabSize = tt.expanded

			spec := cfg.LayoutSpec()
			if spec.SizeOffset != tt.wantSizeOffset {
				t.Errorf("SizeOffset = %v, want %v", spec.SizeOffset, tt.wantSizeOffset)
			}
			if spec.Distance != cfg.Distance || spec.FanAngle != cfg.FanAngle || spec.Type != cfg.Type {
				t.Errorf("spec %+v does not mirror config", spec)
			}
			if spec.ChildrenOffset.DX != 4 || spec.ChildrenOffset.DY != 4 {
				t.Errorf("ChildrenOffset = %+v, want (4,4)", spec.ChildrenOffset)
			}
			if math.Abs(cfg.OpenButtonEndScale()-tt.wantEndScale) > 1e-9 {
				t.Errorf("OpenButtonEndScale = %v, want %v", cfg.OpenButtonEndScale(), tt.wantEndScale)
			}
		})
	}
}

func TestFabConfigEasing(t *testing.T) {
	cfg := DefaultFabConfig()
	if cfg.ForwardEasing()(0.5) != utils.FastOutSlowIn(0.5) {
		t.Error("default forward easing should be fastOutSlowIn")
	}
	if cfg.ReverseEasing()(0.5) != utils.EaseOutQuad(0.5) {
		t.Error("default reverse easing should be easeOutQuad")
	}
}

func TestFabConfigRoundTripYAML(t *testing.T) {
	cfg := DefaultFabConfig()
	cfg.Type = layout.TypeLeft
	cfg.OverlayStyle = NewBlurOverlay(4)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, err := ParseFabConfig(data)
	if err != nil {
		t.Fatalf("parse marshaled config: %v\n%s", err, data)
	}
	if parsed.Type != layout.TypeLeft {
		t.Errorf("Type = %v, want left", parsed.Type)
	}
	if parsed.OverlayStyle == nil || parsed.OverlayStyle.Blur() != 4 {
		t.Errorf("OverlayStyle = %+v, want blur 4", parsed.OverlayStyle)
	}
	if parsed.BackgroundColor != cfg.BackgroundColor {
		t.Errorf("BackgroundColor = %v, want %v", parsed.BackgroundColor, cfg.BackgroundColor)
	}
}

func TestFabConfigClone(t *testing.T) {
	cfg := DefaultFabConfig()
	cfg.OverlayStyle = NewBlurOverlay(2)

	clone := cfg.Clone()
	clone.Distance = 10
	clone.OverlayStyle = NewBlurOverlay(9)

	if cfg.Distance != 100 {
		t.Error("Clone shares Distance with original")
	}
	if cfg.OverlayStyle.Blur() != 2 {
		t.Error("Clone shares OverlayStyle with original")
	}
}
