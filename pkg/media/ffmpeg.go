package media

import (
	"context"
	"fmt"
	"os/exec"
)

func ffmpegCommand(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...) // Constrain this to ffmpeg to permit security scanner to see that the command is safe.
	cmd.Env = []string{}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// ToMonoWav decodes src into a mono 16-bit PCM WAV at its native sample
// rate. Multi-channel sources are downmixed.
func ToMonoWav(ctx context.Context, src, dst string) error {
	commandArgs := []string{"-y", "-i", src, "-ac", "1", "-acodec", "pcm_s16le", dst}
	out, err := ffmpegCommand(ctx, commandArgs)
	if err != nil {
		return fmt.Errorf("error converting audio to mono wav: %w out: %s", err, out)
	}
	return nil
}

// DenoiseWav runs src through ffmpeg's spectral noise-reduction filter
// (afftdn) and writes the result to dst, keeping channel count and sample
// rate untouched. The filter is a statistical estimator: on silent or very
// short input the output is whatever the estimator yields.
func DenoiseWav(ctx context.Context, src, dst string) error {
	commandArgs := []string{"-y", "-i", src, "-af", "afftdn", "-acodec", "pcm_s16le", dst}
	out, err := ffmpegCommand(ctx, commandArgs)
	if err != nil {
		return fmt.Errorf("error denoising audio: %w out: %s", err, out)
	}
	return nil
}
