package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// LineReader reads one line of input after showing a prompt.
// *liner.State satisfies LineReader.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Prompter asks for synthesis parameters one at a time and re-prompts until
// each answer is valid.
type Prompter struct {
	in LineReader
}

// NewPrompter returns a Prompter reading from in.
func NewPrompter(in LineReader) *Prompter {
	return &Prompter{in: in}
}

// Ask collects start, end, resolution and line count in that order.
func (p *Prompter) Ask() (synth.Request, error) {
	var req synth.Request
	var err error

	req.Start, err = p.askFloat(
		"Enter wavelength interval start and press ENTER: ",
		"Retry: Lower limit must be non-negative: ",
		func(v float64) bool { return v >= 0 })
	if err != nil {
		return synth.Request{}, err
	}

	req.End, err = p.askFloat(
		"Enter wavelength interval end and press ENTER: ",
		"Retry: Upper limit must be greater than lower limit: ",
		func(v float64) bool { return v > req.Start })
	if err != nil {
		return synth.Request{}, err
	}

	req.Resolution, err = p.askInt(
		"Enter resolution and press ENTER: ",
		"Error: Resolution must be greater than zero: ",
		func(v int) bool { return v > 0 })
	if err != nil {
		return synth.Request{}, err
	}

	req.Lines, err = p.askInt(
		"Enter the number of lines and press ENTER (must be an integer): ",
		"Error: Number of absorption lines must be non-negative. (Zero for blank spectrum): ",
		func(v int) bool { return v >= 0 })
	if err != nil {
		return synth.Request{}, err
	}

	return req, nil
}

// askFloat re-prompts on NaN and Inf as well as on answers valid rejects.
func (p *Prompter) askFloat(prompt, retry string, valid func(float64) bool) (float64, error) {
	for {
		text, err := p.in.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("params: prompt: %w", err)
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if perr == nil && core.IsFinite(v) && valid(v) {
			return v, nil
		}
		prompt = retry
	}
}

// askInt accepts a leading integer and ignores trailing input, so "12.7"
// reads as 12.
func (p *Prompter) askInt(prompt, retry string, valid func(int) bool) (int, error) {
	for {
		text, err := p.in.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("params: prompt: %w", err)
		}
		v, ok := leadingInt(strings.TrimSpace(text))
		if ok && valid(v) {
			return v, nil
		}
		prompt = retry
	}
}

func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
