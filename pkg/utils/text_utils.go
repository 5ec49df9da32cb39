package utils

import (
	"bytes"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFaceSource *text.GoTextFaceSource
	faceCache         = make(map[float64]*text.GoTextFace)
)

// LoadDefaultFace 返回指定字号的默认字体（Go Regular）
// 字体源只解析一次，同一字号的 face 会被缓存
func LoadDefaultFace(size float64) (*text.GoTextFace, error) {
	if face, ok := faceCache[size]; ok {
		return face, nil
	}

	if defaultFaceSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		defaultFaceSource = source
		log.Printf("[Font] Default font source loaded")
	}

	face := &text.GoTextFace{
		Source:    defaultFaceSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	faceCache[size] = face
	return face, nil
}

// MeasureText 测量文本尺寸
func MeasureText(textStr string, font *text.GoTextFace) (width, height float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}

// TruncateText 将文本截断到指定宽度，超出部分以 "…" 结尾
//
// 截断规则:
//   - 文本本身不超宽时原样返回
//   - 按字符截断（支持多字节字符）
//   - 连省略号都放不下时返回空字符串
func TruncateText(textStr string, font *text.GoTextFace, maxWidth float64) string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return ""
	}

	if w, _ := MeasureText(textStr, font); w <= maxWidth {
		return textStr
	}

	const ellipsis = "…"
	if w, _ := MeasureText(ellipsis, font); w > maxWidth {
		return ""
	}

	current := ""
	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		candidate := current + string(r)
		if w, _ := MeasureText(candidate+ellipsis, font); w > maxWidth {
			break
		}
		current = candidate
		textStr = textStr[size:]
	}

	return current + ellipsis
}
