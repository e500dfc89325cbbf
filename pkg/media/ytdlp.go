package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DownloadAudio fetches the best available audio track of the media at url
// and extracts it as a WAV file at dst. It bashes out to yt-dlp, which in
// turn drives ffmpeg for the extraction step.
func DownloadAudio(ctx context.Context, url, dst string) error {
	// yt-dlp appends the audio extension itself, so hand it the template
	// without the .wav suffix.
	outTmpl := strings.TrimSuffix(dst, ".wav")

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"-f", "bestaudio/best",
		"-x", "--audio-format", "wav",
		"-o", outTmpl+".%(ext)s",
		url,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("error downloading audio: %w out: %s", err, string(out))
	}
	return nil
}
