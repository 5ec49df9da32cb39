package entities

import (
	"image/color"
	"testing"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
)

func TestNewFabMenu(t *testing.T) {
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	actions := []ActionButtonSpec{
		{Glyph: utils.GlyphEdit, Label: "Edit"},
		{Glyph: utils.GlyphShare, Background: &red},
	}

	tests := []struct {
		name        string
		overlay     *config.OverlayStyle
		wantOverlay bool
		wantCount   int
	}{
		{"without overlay", nil, false, 5},
		{"with blur overlay", config.NewBlurOverlay(4), true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			cfg := config.DefaultFabConfig()
			cfg.OverlayStyle = tt.overlay
			cfg.OpenButtonHeroTag = "fab"

			toggled := 0
			result := NewFabMenu(em, cfg, actions, func() { toggled++ }, 400, 300)

			if em.EntityCount() != tt.wantCount || len(result.All()) != tt.wantCount {
				t.Errorf("entities = %d / %d, want %d", em.EntityCount(), len(result.All()), tt.wantCount)
			}
			if (result.Overlay != 0) != tt.wantOverlay {
				t.Errorf("Overlay = %d, wantOverlay %v", result.Overlay, tt.wantOverlay)
			}

			menu, ok := ecs.GetComponent[*components.FabMenuComponent](em, result.Menu)
			if !ok || menu.ChildCount != 2 || menu.CollapsedDiameter != 56 || menu.ExpandedDiameter != 40 {
				t.Errorf("menu = %+v", menu)
			}

			open, _ := ecs.GetComponent[*components.ToggleButtonComponent](em, result.OpenButton)
			if open.Role != components.ToggleOpen || open.HeroTag != "fab" || open.Opacity != 1 || open.Glyph != utils.GlyphMenu {
				t.Errorf("open button = %+v", open)
			}
			closeBtn, _ := ecs.GetComponent[*components.ToggleButtonComponent](em, result.CloseButton)
			if closeBtn.Role != components.ToggleClose || closeBtn.Opacity != 0 || closeBtn.Diameter != 40 {
				t.Errorf("close button = %+v", closeBtn)
			}

			// 点击回调接到 toggle
			clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, result.OpenButton)
			clickable.OnClick()
			if toggled != 1 {
				t.Errorf("toggled = %d, want 1", toggled)
			}

			first, _ := ecs.GetComponent[*components.ActionButtonComponent](em, result.Actions[0])
			second, _ := ecs.GetComponent[*components.ActionButtonComponent](em, result.Actions[1])
			if first.Background != DefaultActionBackground || second.Background != red {
				t.Errorf("backgrounds = %v / %v", first.Background, second.Background)
			}
			if first.Index != 0 || second.Index != 1 || first.Label != "Edit" {
				t.Errorf("actions = %+v / %+v", first, second)
			}
		})
	}
}

func TestClickPriorities(t *testing.T) {
	if !(PriorityOpenButton > PriorityCloseButton && PriorityCloseButton > PriorityAction && PriorityAction > PriorityOverlay) {
		t.Error("priorities must be open > close > action > overlay")
	}
}
