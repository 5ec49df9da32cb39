package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// reset 重置包状态，避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/fab.yaml": &fstest.MapFile{Data: []byte("type: fan\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(newTestFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	reset()

	if _, err := Open("data/fab.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/fab.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/fab.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试读取文件与路径标准化
func TestReadFile(t *testing.T) {
	reset()
	defer reset()
	Init(newTestFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/fab.yaml", false},
		{"dot prefix", "./data/fab.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"unknown prefix", "assets/fab.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "type: fan\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/fab.yaml") || Exists("data/other.yaml") {
		t.Error("Exists() mismatch")
	}
}
