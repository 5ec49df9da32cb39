package game

import (
	"os"
	"testing"

	"github.com/gonewx/fab/pkg/layout"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时目录中创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultPreferences 测试默认偏好设置
func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.LayoutType != layout.TypeFan {
		t.Errorf("LayoutType: got %v, want fan", prefs.LayoutType)
	}
	if prefs.Overlay != OverlayChoiceColor {
		t.Errorf("Overlay: got %v, want color", prefs.Overlay)
	}
	if prefs.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestPreferencesLoadSave 测试保存后重新加载
func TestPreferencesLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fab_preferences")

	pm := NewPreferencesManager(gdataManager)
	pm.SetLayoutType(layout.TypeLeft)
	pm.SetOverlay(OverlayChoiceBlur)
	pm.SetLastAction("share")
	pm.SetFullscreen(true)

	if err := pm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewPreferencesManager(gdataManager)
	prefs := reloaded.GetPreferences()
	if prefs.LayoutType != layout.TypeLeft {
		t.Errorf("LayoutType: got %v, want left", prefs.LayoutType)
	}
	if prefs.Overlay != OverlayChoiceBlur {
		t.Errorf("Overlay: got %v, want blur", prefs.Overlay)
	}
	if prefs.LastAction != "share" {
		t.Errorf("LastAction: got %q, want share", prefs.LastAction)
	}
	if !prefs.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestPreferencesLoadInvalidData 测试损坏的数据回退到默认值
func TestPreferencesLoadInvalidData(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fab_preferences_invalid")

	if err := gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, []byte("layoutType: diagonal\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	pm := &PreferencesManager{gdataManager: gdataManager, preferences: DefaultPreferences()}
	if err := pm.Load(); err == nil {
		t.Error("Load() should fail for an unknown layout type")
	}
	if pm.GetPreferences().LayoutType != layout.TypeFan {
		t.Error("failed load should fall back to defaults")
	}
}

// TestPreferencesUnknownOverlay 测试未知遮罩模式
func TestPreferencesUnknownOverlay(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fab_preferences_overlay")

	if err := gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, []byte("overlay: sepia\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	pm := NewPreferencesManager(gdataManager)
	if pm.GetPreferences().Overlay != OverlayChoiceNone {
		t.Errorf("Overlay: got %v, want none", pm.GetPreferences().Overlay)
	}
}

// TestPreferencesNilGdata 测试降级模式
func TestPreferencesNilGdata(t *testing.T) {
	pm := NewPreferencesManager(nil)
	if pm.GetPreferences() == nil {
		t.Fatal("GetPreferences() returned nil")
	}
	pm.SetOverlay("bogus")
	if pm.GetPreferences().Overlay != OverlayChoiceNone {
		t.Errorf("SetOverlay(bogus) = %v, want none", pm.GetPreferences().Overlay)
	}
	if err := pm.Save(); err != nil {
		t.Errorf("Save() with nil gdata should not fail: %v", err)
	}
	if err := pm.Load(); err != nil {
		t.Errorf("Load() with nil gdata should not fail: %v", err)
	}
}

// TestOverlayChoiceNext 测试遮罩模式循环
func TestOverlayChoiceNext(t *testing.T) {
	tests := []struct {
		from, want OverlayChoice
	}{
		{OverlayChoiceNone, OverlayChoiceColor},
		{OverlayChoiceColor, OverlayChoiceBlur},
		{OverlayChoiceBlur, OverlayChoiceNone},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.want)
		}
	}
}
