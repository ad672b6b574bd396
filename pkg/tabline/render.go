package tabline

import (
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
)

// Segment is one clickable region of the rendered strip. Doc is the click
// target.
type Segment struct {
	Doc      host.Handle
	Label    string
	Selected bool
	Ghost    bool
}

// Strip is the rendered tabline: styled text plus the click-region
// metadata it was built from. Recomputed on every render, never stored.
type Strip struct {
	Text     string
	Segments []Segment
}

// RenderInput carries everything RenderStrip needs. The function is pure:
// same input, same strip.
type RenderInput struct {
	Pinned     []host.Handle
	Ghost      host.Handle
	Selection  host.Handle
	Name       func(host.Handle) string
	WorkingDir string
	Separator  string
	IconStyle  models.IconStyle
	Icons      IconProvider
	MaxWidth   int
}

// RenderStrip produces the tabline for the given state.
//
// Labels are basenames. When two or more pinned entries share a basename,
// each of those labels is prefixed with its parent directory name ("." when
// the parent is the working directory). The ghost label is never
// disambiguated, even on collision with a pinned basename; that matches
// long-standing behavior and is pinned down by tests.
func RenderStrip(in RenderInput) Strip {
	labels := pinnedLabels(in)

	segments := make([]Segment, 0, len(in.Pinned)+1)
	for i, h := range in.Pinned {
		segments = append(segments, Segment{
			Doc:      h,
			Label:    labels[i],
			Selected: h == in.Selection,
		})
	}
	if in.Ghost != host.NoHandle {
		segments = append(segments, Segment{
			Doc:      in.Ghost,
			Label:    baseLabel(in.Name(in.Ghost)),
			Selected: in.Ghost == in.Selection,
			Ghost:    true,
		})
	}

	var b strings.Builder
	sep := in.Separator
	if sep == "" {
		sep = "|"
	}
	for i, seg := range segments {
		if i > 0 && !segments[i-1].Selected && !seg.Selected {
			b.WriteString(SeparatorStyle.Render(sep))
		}
		b.WriteString(renderSegment(seg, in))
	}
	if len(segments) > 0 && !singleSelectedPinned(segments) {
		b.WriteString(SeparatorStyle.Render(sep))
	}

	text := b.String()
	if in.MaxWidth > 0 {
		text = truncate.StringWithTail(text, uint(in.MaxWidth), "…")
	}

	return Strip{Text: text, Segments: segments}
}

// singleSelectedPinned reports whether the strip is exactly one pinned,
// currently-selected entry, the one case where a trailing separator would
// be a redundant mark.
func singleSelectedPinned(segments []Segment) bool {
	return len(segments) == 1 && segments[0].Selected && !segments[0].Ghost
}

func renderSegment(seg Segment, in RenderInput) string {
	body := " " + seg.Label + " "
	if icon := renderIcon(seg, in); icon != "" {
		body = " " + icon + seg.Label + " "
	}

	switch {
	case seg.Ghost && seg.Selected:
		return GhostTabStyle.Bold(true).Render(body)
	case seg.Ghost:
		return GhostTabStyle.Render(body)
	case seg.Selected:
		return SelectedTabStyle.Render(body)
	default:
		return TabStyle.Render(body)
	}
}

func renderIcon(seg Segment, in RenderInput) string {
	if in.Icons == nil || in.IconStyle == models.IconStyleHidden {
		return ""
	}
	glyph, color, ok := in.Icons.Glyph(in.Name(seg.Doc))
	if !ok {
		return ""
	}
	switch in.IconStyle {
	case models.IconStyleColor:
		return GetIconStyle(color, seg.Selected).Render(glyph) + " "
	case models.IconStyleMonochromeSelected:
		if seg.Selected {
			return GetIconStyle(color, true).Render(glyph) + " "
		}
		return GetIconStyle("", false).Render(glyph) + " "
	case models.IconStyleMonochrome:
		return GetIconStyle("", seg.Selected).Render(glyph) + " "
	}
	return ""
}

// pinnedLabels computes the display labels for the pinned entries,
// applying parent-directory disambiguation to colliding basenames.
func pinnedLabels(in RenderInput) []string {
	labels := make([]string, len(in.Pinned))
	counts := make(map[string]int, len(in.Pinned))
	for i, h := range in.Pinned {
		labels[i] = baseLabel(in.Name(h))
		counts[labels[i]]++
	}
	for i, h := range in.Pinned {
		if counts[labels[i]] < 2 {
			continue
		}
		labels[i] = differentiator(in.Name(h), in.WorkingDir) + "/" + labels[i]
	}
	return labels
}

func baseLabel(name string) string {
	if name == "" {
		return "[No Name]"
	}
	return filepath.Base(name)
}

// differentiator is the immediate parent directory name, or "." when that
// parent is the working directory.
func differentiator(name, workingDir string) string {
	parent := filepath.Dir(name)
	if workingDir != "" && filepath.Clean(parent) == filepath.Clean(workingDir) {
		return "."
	}
	base := filepath.Base(parent)
	if base == "/" || base == "." {
		return "."
	}
	return base
}
