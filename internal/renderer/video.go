package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"paperdeck/internal/domain"
)

const (
	videoFrameWidth  = 1280
	videoFrameHeight = 720
	videoSeconds     = "10"

	videoScriptWords  = 50
	videoLineChars    = 70
	videoLineHeight   = 22
	videoMarginX      = 80
	videoFirstLineY   = 120
	videoMaxTextLines = 24
)

// Video renders a single-frame slideshow clip: the opening of the
// narration script drawn white on black, held for a fixed duration and
// encoded to MP4 by ffmpeg.
type Video struct {
	exec Executor
	log  *slog.Logger
}

func NewVideo(exec Executor, log *slog.Logger) *Video {
	return &Video{exec: exec, log: log}
}

// Render returns MP4 bytes. The frame and the clip live in a temporary
// directory for the duration of the call only.
func (v *Video) Render(ctx context.Context, result *domain.Result) ([]byte, error) {
	script := videoScript(result)
	if script == "" {
		return nil, errors.New("nothing to show")
	}

	frame, err := encodeFrame(script)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	dir, err := os.MkdirTemp("", "paperdeck-video-")
	if err != nil {
		return nil, fmt.Errorf("create workdir: %w", err)
	}
	defer func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			v.log.WarnContext(ctx, "Failed to remove video workdir",
				"dir", dir,
				"error", removeErr)
		}
	}()

	framePath := filepath.Join(dir, "frame.png")
	clipPath := filepath.Join(dir, "summary.mp4")
	if err := os.WriteFile(framePath, frame, 0o600); err != nil {
		return nil, fmt.Errorf("write frame: %w", err)
	}

	if _, err := v.exec.Execute(ctx, "ffmpeg",
		"-y",
		"-loop", "1",
		"-i", framePath,
		"-c:v", "libx264",
		"-t", videoSeconds,
		"-pix_fmt", "yuv420p",
		clipPath,
	); err != nil {
		return nil, fmt.Errorf("encode video: %w", err)
	}

	clip, err := os.ReadFile(clipPath)
	if err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}
	if len(clip) == 0 {
		return nil, errors.New("empty video output")
	}

	v.log.Debug("Video rendered",
		"scriptLen", len(script),
		"videoBytes", len(clip))

	return clip, nil
}

// videoScript is the opening of the narration, capped by word count so
// the single frame stays readable.
func videoScript(result *domain.Result) string {
	words := strings.Fields(narrationScript(result))
	if len(words) > videoScriptWords {
		words = words[:videoScriptWords]
	}

	return strings.Join(words, " ")
}

func encodeFrame(text string) ([]byte, error) {
	frame := image.NewRGBA(image.Rect(0, 0, videoFrameWidth, videoFrameHeight))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}

	for i, line := range wrapLines(text, videoLineChars) {
		if i >= videoMaxTextLines {
			break
		}

		drawer.Dot = fixed.P(videoMarginX, videoFirstLineY+i*videoLineHeight)
		drawer.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func wrapLines(text string, width int) []string {
	var lines []string
	var line strings.Builder

	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}
