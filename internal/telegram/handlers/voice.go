package handlers

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mymmrac/telego"

	"github.com/codex-k8s/telegram-support-bot/internal/i18n"
)

// postTranscript transcribes a voice support request and posts the text
// into the support group as a reply to the forwarded copy, so staff can
// read the request without listening. Every failure degrades to the
// plain forward; the user already got the acknowledgment path.
func (h *Handler) postTranscript(ctx context.Context, voice *telego.Voice, forwardedID int, tag i18n.Tag) {
	if h.transcriber == nil {
		return
	}
	data, filePath, err := h.transport.DownloadFile(ctx, voice.FileID)
	if err != nil {
		h.log.Warn("Failed to download voice message", "error", err)
		return
	}
	normalized, mimeType, fileName, err := normalizeVoiceAudio(ctx, data, voice.MimeType, filePath)
	if err != nil {
		h.log.Warn("Failed to normalize voice audio", "error", err)
		return
	}
	transcript, err := h.transcriber.Transcribe(ctx, bytes.NewReader(normalized), fileName, mimeType, tag.STTLanguage())
	if err != nil {
		h.log.Warn("Voice transcription failed", "error", err)
		return
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return
	}
	if err := h.transport.ReplyMessage(ctx, h.supportChatID, forwardedID, transcript); err != nil {
		h.log.Warn("Failed to post transcript", "error", err)
	}
}

const (
	transcodeSampleRate = "16000"
	transcodeChannels   = "1"
)

// normalizeVoiceAudio converts Telegram voice audio (usually OGG/Opus)
// into MP3 when the transcription API cannot consume it directly.
func normalizeVoiceAudio(ctx context.Context, content []byte, mimeType, filename string) ([]byte, string, string, error) {
	if len(content) == 0 {
		return nil, "", "", fmt.Errorf("empty audio content")
	}
	if transcribableAudio(mimeType, filename) {
		return content, mimeType, filename, nil
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-nostdin",
		"-y",
		"-i", "pipe:0",
		"-ac", transcodeChannels,
		"-ar", transcodeSampleRate,
		"-f", "mp3",
		"pipe:1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(content)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return nil, "", "", fmt.Errorf("ffmpeg failed: %w: %s", err, detail)
		}
		return nil, "", "", fmt.Errorf("ffmpeg failed: %w", err)
	}
	out := stdout.Bytes()
	if len(out) == 0 {
		return nil, "", "", fmt.Errorf("empty transcoded audio")
	}
	return out, "audio/mpeg", mp3Filename(filename), nil
}

func transcribableAudio(mimeType, filename string) bool {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "audio/mpeg", "audio/mp3", "audio/mp4", "audio/mp4a-latm", "audio/x-m4a", "audio/m4a", "audio/wav", "audio/x-wav", "audio/webm":
		return true
	}
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(filename))) {
	case ".mp3", ".mpeg", ".mp4", ".m4a", ".wav", ".webm":
		return true
	}
	return false
}

func mp3Filename(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return "voice.mp3"
	}
	if strings.EqualFold(filepath.Ext(filename), ".mp3") {
		return filename
	}
	if ext := filepath.Ext(filename); ext != "" {
		return strings.TrimSuffix(filename, ext) + ".mp3"
	}
	return filename + ".mp3"
}
