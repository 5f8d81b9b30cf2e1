package prompt

// Preset is a named photography treatment folded into the master prompt
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// presets in display order; the first one doubles as the fallback
var presets = []Preset{
	{
		Name: "natural-light",
		Description: "soft natural window light, neutral white balance, gentle shadows, " +
			"shot on a full-frame camera with a 35mm lens at eye level",
	},
	{
		Name: "editorial",
		Description: "polished interior-magazine editorial look, balanced fill light, " +
			"straight verticals, medium format rendering with crisp midtones",
	},
	{
		Name: "golden-hour",
		Description: "warm golden-hour sunlight raking through the scene, long soft shadows, " +
			"subtle lens bloom and a cozy amber cast",
	},
	{
		Name: "studio-softbox",
		Description: "controlled studio lighting with large softboxes, clean even illumination, " +
			"no color cast, product-catalog precision",
	},
	{
		Name: "dusk-ambient",
		Description: "moody dusk ambience, mixed warm artificial and cool twilight sources, " +
			"deeper shadows with preserved detail",
	},
	{
		Name: "macro-detail",
		Description: "close-up macro treatment emphasizing weave, grain and surface texture, " +
			"razor-thin focus plane and tactile realism",
	},
}

// Presets returns the photography preset catalog
func Presets() []Preset {
	res := make([]Preset, len(presets))
	copy(res, presets)
	return res
}

// ResolvePreset maps a preset name to its definition, falling back to the
// default treatment for unknown names or the "none" sentinel.
func ResolvePreset(name string) Preset {
	for _, p := range presets {
		if p.Name == name {
			return p
		}
	}
	return presets[0]
}
