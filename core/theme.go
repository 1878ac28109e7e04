package core

// StyleTag is a semantic display element. Palettes map every tag to a
// color pair; the highlighter emits the syntax subset of these tags.
type StyleTag int

const (
	TagText StyleTag = iota // body text, the fail-closed default
	TagTabBar
	TagActiveTab
	TagStatusBar
	TagKeyword
	TagComment
	TagString
	TagNumber
	TagSpecial
	TagSearchHighlight
)

// Tags returns every style tag in declaration order, for rendering layers
// that prepare one terminal style per tag.
func Tags() []StyleTag {
	return []StyleTag{
		TagText, TagTabBar, TagActiveTab, TagStatusBar,
		TagKeyword, TagComment, TagString, TagNumber, TagSpecial,
		TagSearchHighlight,
	}
}

// ColorPair is a foreground/background pair. Values are ANSI palette
// indices as strings, directly usable as terminal color references by the
// rendering layer.
type ColorPair struct {
	FG string
	BG string
}

type palette map[StyleTag]ColorPair

// Theme is the process-scoped registry of named color palettes. It is
// constructed once at startup and only its active-palette index changes
// afterwards.
type Theme struct {
	names    []string
	palettes map[string]palette
	current  int
}

// NewTheme builds the registry with its three fixed palettes, in cyclic
// order: default, dark, light.
func NewTheme() *Theme {
	return &Theme{
		names: []string{"default", "dark", "light"},
		palettes: map[string]palette{
			"default": {
				TagTabBar:          {FG: "0", BG: "6"},
				TagActiveTab:       {FG: "0", BG: "7"},
				TagStatusBar:       {FG: "0", BG: "6"},
				TagText:            {FG: "7", BG: "0"},
				TagKeyword:         {FG: "3", BG: "0"},
				TagComment:         {FG: "2", BG: "0"},
				TagString:          {FG: "5", BG: "0"},
				TagNumber:          {FG: "6", BG: "0"},
				TagSpecial:         {FG: "1", BG: "0"},
				TagSearchHighlight: {FG: "0", BG: "3"},
			},
			"dark": {
				TagTabBar:          {FG: "7", BG: "0"},
				TagActiveTab:       {FG: "0", BG: "7"},
				TagStatusBar:       {FG: "7", BG: "0"},
				TagText:            {FG: "7", BG: "0"},
				TagKeyword:         {FG: "4", BG: "0"},
				TagComment:         {FG: "2", BG: "0"},
				TagString:          {FG: "1", BG: "0"},
				TagNumber:          {FG: "6", BG: "0"},
				TagSpecial:         {FG: "5", BG: "0"},
				TagSearchHighlight: {FG: "0", BG: "3"},
			},
			"light": {
				TagTabBar:          {FG: "0", BG: "7"},
				TagActiveTab:       {FG: "7", BG: "0"},
				TagStatusBar:       {FG: "0", BG: "7"},
				TagText:            {FG: "0", BG: "7"},
				TagKeyword:         {FG: "4", BG: "7"},
				TagComment:         {FG: "2", BG: "7"},
				TagString:          {FG: "1", BG: "7"},
				TagNumber:          {FG: "5", BG: "7"},
				TagSpecial:         {FG: "6", BG: "7"},
				TagSearchHighlight: {FG: "7", BG: "4"},
			},
		},
	}
}

// Name returns the active palette name.
func (t *Theme) Name() string { return t.names[t.current] }

// Names returns the registered palette names in cyclic order.
func (t *Theme) Names() []string { return t.names }

// Set selects a palette by name. Unknown names leave the selection
// unchanged.
func (t *Theme) Set(name string) {
	for i, n := range t.names {
		if n == name {
			t.current = i
			return
		}
	}
}

// Next cycles to the next palette in registration order.
func (t *Theme) Next() {
	t.current = (t.current + 1) % len(t.names)
}

// Color looks up the color pair for tag in the active palette. Unknown
// tags fail closed to the body-text pair.
func (t *Theme) Color(tag StyleTag) ColorPair {
	p := t.palettes[t.names[t.current]]
	if pair, ok := p[tag]; ok {
		return pair
	}
	return p[TagText]
}
