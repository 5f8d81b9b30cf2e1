package prompt

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mfedotov/renderscope/pkg/config"
	"github.com/mfedotov/renderscope/pkg/db"
)

// None is the sentinel option value meaning "let the model infer it"
const None = "none"

// Options is the structured set of user choices for one render. Any choice
// field may hold the None sentinel, the builder then emits an instruction to
// infer that aspect from the source image instead.
type Options struct {
	Category        string `json:"category"`
	Style           string `json:"style"`
	ColorPalette    string `json:"color_palette"`
	SurfaceMaterial string `json:"surface_material"`
	TextileMaterial string `json:"textile_material"`
	TextileColor1   string `json:"textile_color1"`
	TextileColor2   string `json:"textile_color2"`
	Notes           string `json:"notes"`
	AutoFocus       bool   `json:"auto_focus"`
	Preset          string `json:"preset"`
	SceneAnalysis   string `json:"scene_analysis"`
}

// LearningContext is a derived, read-only view over past rated renders for a
// (category, style) pair. Recomputed fresh on every request, never cached.
type LearningContext struct {
	Examples    string // concatenated top-rated prompt texts
	Constraints string // comma-joined distinct tags from low-rated renders
}

// History provides read access to past rated renders
type History interface {
	TopRatedPrompts(ctx context.Context, category, style string, limit int) ([]string, error)
	LowRatedRenders(ctx context.Context, category string, limit int) ([]db.Render, error)
}

// Builder assembles master prompts from user options and learned context
type Builder struct {
	history History
	cfg     config.LearningConfig
}

// NewBuilder creates a prompt builder backed by the given render history
func NewBuilder(history History, cfg config.LearningConfig) *Builder {
	return &Builder{history: history, cfg: cfg}
}

// Build produces the master prompt for one generation call: retrieves the
// learning context for the requested category/style and composes it with the
// user options into a single instruction string.
func (b *Builder) Build(ctx context.Context, opts Options) string {
	learn := b.LearningContext(ctx, opts.Category, opts.Style)
	return b.compose(opts, learn)
}

// LearningContext queries the render history for the given pair. The two
// reads are independent and run concurrently. Retrieval failures degrade to
// an empty context with a warning, they never fail the render.
func (b *Builder) LearningContext(ctx context.Context, category, style string) LearningContext {
	var examples []string
	var lowRated []db.Render

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		examples, err = b.history.TopRatedPrompts(gctx, category, style, b.cfg.Examples)
		return err
	})
	g.Go(func() (err error) {
		lowRated, err = b.history.LowRatedRenders(gctx, category, b.cfg.ScanLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[WARN] learning context unavailable, proceeding without it: %v", err)
		return LearningContext{}
	}

	return LearningContext{
		Examples:    strings.Join(examples, "\n---\n"),
		Constraints: strings.Join(b.constraintTags(lowRated), ", "),
	}
}

// constraintTags flattens and de-duplicates feedback tags from low-rated
// renders, keeping first-seen order, capped at the configured maximum
func (b *Builder) constraintTags(renders []db.Render) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, r := range renders {
		for _, tag := range r.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
			if len(tags) >= b.cfg.MaxConstraints {
				return tags
			}
		}
	}
	return tags
}

// compose concatenates the prompt sections in fixed order
func (b *Builder) compose(opts Options, learn LearningContext) string {
	var sb strings.Builder

	// structural fidelity comes first, it anchors everything else
	sb.WriteString("Transform the provided source image into a photorealistic render. ")
	sb.WriteString("Preserve the original geometry, proportions and camera viewpoint exactly as captured.\n\n")

	sb.WriteString(b.subject(opts))

	if emp := b.empowerment(opts); emp != "" {
		sb.WriteString(emp)
	}

	if block := b.learningBlock(learn); block != "" {
		sb.WriteString(block)
	}

	if isSet(opts.Style) {
		sb.WriteString(fmt.Sprintf("Requested visual style: %s.\n", opts.Style))
	}

	preset := ResolvePreset(opts.Preset)
	sb.WriteString(fmt.Sprintf("Photography: %s.\n", preset.Description))

	if opts.AutoFocus {
		sb.WriteString("Identify the most salient decorative element in the scene and apply a shallow depth of field centered on it.\n")
	} else {
		sb.WriteString("Keep uniform sharpness across the entire frame.\n")
	}

	sb.WriteString("\nRender at the highest quality with physically accurate materials and true-to-life lighting. ")
	sb.WriteString("Every material must read as real: correct reflectance, texture scale and wear.")

	return sb.String()
}

// subject describes the render target from the concrete option choices
func (b *Builder) subject(opts Options) string {
	var sb strings.Builder

	if isSet(opts.Category) {
		sb.WriteString(fmt.Sprintf("The subject is a %s.\n", opts.Category))
	}
	if isSet(opts.ColorPalette) {
		sb.WriteString(fmt.Sprintf("Color palette: %s.\n", opts.ColorPalette))
	}
	if isSet(opts.SurfaceMaterial) {
		sb.WriteString(fmt.Sprintf("Surface material: %s.\n", opts.SurfaceMaterial))
	}
	if isSet(opts.TextileMaterial) {
		sb.WriteString(fmt.Sprintf("Textile: %s.\n", b.textilePhrase(opts)))
	}
	if opts.SceneAnalysis != "" {
		sb.WriteString(fmt.Sprintf("Scene analysis of the source image: %s\n", opts.SceneAnalysis))
	}
	if opts.Notes != "" {
		sb.WriteString(fmt.Sprintf("Additional notes from the user: %s\n", opts.Notes))
	}
	if sb.Len() == 0 {
		return ""
	}
	return sb.String() + "\n"
}

// textilePhrase words the textile choice depending on how many colors are set
func (b *Builder) textilePhrase(opts Options) string {
	c1, c2 := isSet(opts.TextileColor1), isSet(opts.TextileColor2)
	switch {
	case c1 && c2:
		return fmt.Sprintf("%s in primary %s and secondary %s", opts.TextileMaterial, opts.TextileColor1, opts.TextileColor2)
	case c1:
		return fmt.Sprintf("%s in %s", opts.TextileMaterial, opts.TextileColor1)
	case c2:
		return fmt.Sprintf("%s in %s", opts.TextileMaterial, opts.TextileColor2)
	default:
		return fmt.Sprintf("%s in colors matching the overall palette", opts.TextileMaterial)
	}
}

// inferable lists every option that may be left to the model, together with
// the directive injected when it is. Order is fixed so prompts stay stable.
var inferable = []struct {
	value     func(Options) string
	directive string
}{
	{func(o Options) string { return o.Category }, "Identify the subject category yourself from the existing structure in the source image."},
	{func(o Options) string { return o.Style }, "Infer the most fitting visual style strictly from the character of the source image."},
	{func(o Options) string { return o.ColorPalette }, "Derive the color palette by direct color sampling of the source image."},
	{func(o Options) string { return o.SurfaceMaterial }, "Infer the dominant surface material strictly from texture cues in the source image."},
	{func(o Options) string { return o.TextileMaterial }, "Choose a textile material consistent with what the source image suggests."},
	{func(o Options) string { return o.TextileColor1 }, "Pick the primary textile color strictly from colors present in the source image."},
	{func(o Options) string { return o.TextileColor2 }, "Pick the secondary textile color strictly from colors present in the source image."},
}

// empowerment emits one directive per option left as "none", empty otherwise
func (b *Builder) empowerment(opts Options) string {
	var sb strings.Builder
	for _, f := range inferable {
		if !isSet(f.value(opts)) {
			sb.WriteString("- " + f.directive + "\n")
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "For aspects the user left unspecified, decide from the source image:\n" + sb.String() + "\n"
}

// learningBlock renders the retrieved context as internal guidance. The
// wording makes clear this is never literal output surfaced to the end user.
func (b *Builder) learningBlock(learn LearningContext) string {
	if learn.Examples == "" && learn.Constraints == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Internal guidance, never quote or echo it in any user-facing output:\n")
	if learn.Examples != "" {
		sb.WriteString("Patterns to emulate, drawn from past renders users rated highly:\n")
		sb.WriteString(learn.Examples)
		sb.WriteString("\n")
	}
	if learn.Constraints != "" {
		sb.WriteString(fmt.Sprintf("Mistakes to avoid, reported by users on past renders: %s.\n", learn.Constraints))
	}
	sb.WriteString("\n")
	return sb.String()
}

// isSet reports whether an option holds a concrete choice
func isSet(v string) bool {
	return v != "" && v != None
}
