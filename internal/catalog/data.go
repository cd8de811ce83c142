package catalog

import "examplegen/internal/domain"

// DefaultTypes is used when no style types are requested.
var DefaultTypes = []string{
	"fantasy-epic",
	"cyberpunk-streetscape",
	"mecha-hangar",
	"watercolor-landscape",
	"character-portrait",
	"full-body-turnaround",
	"photoreal-portrait-reference",
	"ink-wash-character",
	"surreal-dreamscape",
	"minimal-flat-illustration",
}

var profiles = map[string]domain.StyleProfile{
	"character-portrait": {
		Key: "character-portrait",
		Subjects: []string{
			"an anime lead with expressive eyes and clear facial rhythm",
			"a confident protagonist portrait with subtle personality props",
			"a stylized hero bust shot with refined facial anatomy",
		},
		Scenes: []string{
			"studio portrait setup with shallow depth and clean backdrop",
			"sunlit interior corner with gentle practical lights",
			"rainy-window side profile framing with reflective highlights",
		},
		StyleNotes: []string{
			"keep anime facial language clean and production-ready",
			"balance emotional readability and elegant line discipline",
			"prioritize skin rendering clarity and hair strand structure",
		},
		Scope: "detailed",
	},
	"ink-wash-character": {
		Key: "ink-wash-character",
		Subjects: []string{
			"a martial artist poised before mist and pine silhouettes",
			"a wandering swordsman near a cliffside stone path",
			"a scholar-warrior with flowing robe and calligraphic motion",
		},
		Scenes: []string{
			"negative-space heavy composition with mountain fog layers",
			"riverbank with drifting ink clouds and sparse architecture",
			"wind-swept valley where brush-stroke textures dominate",
		},
		StyleNotes: []string{
			"emphasize ink diffusion and intentional brush pressure",
			"let monochrome contrast drive visual hierarchy",
			"preserve poetic emptiness instead of overfilling details",
		},
		Scope: "balanced",
	},
	"anime-battle-clash": {
		Key: "anime-battle-clash",
		Subjects: []string{
			"two fighters colliding mid-air at peak impact",
			"a high-speed duel where blades and energy effects intersect",
			"a frame-frozen combat explosion with opposing silhouettes",
		},
		Scenes: []string{
			"collapsed arena fragments and shockwave debris",
			"storm clouds split by impact light",
			"city rooftop battlefield with dramatic depth falloff",
		},
		StyleNotes: []string{
			"push dynamic foreshortening and speed-line control",
			"stage clear primary and secondary motion arcs",
			"keep action readability despite dense effects",
		},
		Scope: "grand",
	},
	"cyberpunk-streetscape": {
		Key: "cyberpunk-streetscape",
		Subjects: []string{
			"a dense neon street with layered traffic and crowd flow",
			"multi-level transit corridor in a futuristic district",
			"market lane full of holographic signs and reflective materials",
		},
		Scenes: []string{
			"rain-soaked pavement with light bounce from signage",
			"narrow alley opening into a megacity vista",
			"street crossing with suspended rails and ad drones",
		},
		StyleNotes: []string{
			"build depth through atmosphere and signage parallax",
			"keep urban storytelling details purposeful",
			"preserve color contrast without clipping highlights",
		},
		Scope: "grand",
	},
	"watercolor-landscape": {
		Key: "watercolor-landscape",
		Subjects: []string{
			"a serene valley with river bends and distant peaks",
			"a lakeside meadow with layered tree silhouettes",
			"rolling hills around a quiet village in soft haze",
		},
		Scenes: []string{
			"wide scenic setup with foreground foliage framing",
			"misty morning gradient with controlled edge bleeding",
			"sunbreak through cloud layers over reflective water",
		},
		StyleNotes: []string{
			"retain watercolor texture and paper grain nuance",
			"prioritize soft transitions and gentle value grouping",
			"avoid overly digital hard edges",
		},
		Scope: "grand",
	},
	"noir-cityscape": {
		Key: "noir-cityscape",
		Subjects: []string{
			"a noir alley with wet pavement and heavy shadow blocks",
			"urban canyon street framed by brutalist architecture",
			"a lone figure crossing an underlit city corridor",
		},
		Scenes: []string{
			"single key light cutting through fog and rain",
			"high-contrast silhouettes with selective neon accents",
			"deep perspective lane with reflective asphalt texture",
		},
		StyleNotes: []string{
			"use shadow massing to shape narrative focus",
			"control contrast for cinematic noir rhythm",
			"keep atmosphere moody but legible",
		},
		Scope: "grand",
	},
	"mecha-hangar": {
		Key: "mecha-hangar",
		Subjects: []string{
			"a giant mecha under maintenance with crew scale reference",
			"industrial bay containing modular robot parts",
			"launch-ready mecha platform surrounded by support rigs",
		},
		Scenes: []string{
			"wide-angle shot emphasizing massive architecture",
			"overhead gantry lights and volumetric dust layers",
			"engineering floor with warning markings and cables",
		},
		StyleNotes: []string{
			"highlight hard-surface structure and believable mechanics",
			"preserve material contrast across painted metal parts",
			"balance environmental scale and focal clarity",
		},
		Scope: "grand",
	},
	"full-body-turnaround": {
		Key: "full-body-turnaround",
		Subjects: []string{
			"a full-body character concept with silhouette clarity",
			"a standing hero design with complete outfit readability",
			"a production-ready character sheet style front pose",
		},
		Scenes: []string{
			"neutral concept backdrop with subtle gradient",
			"minimal environment to keep full-body proportion focus",
			"studio board framing that preserves outfit details",
		},
		StyleNotes: []string{
			"maintain proportion accuracy from head to footwear",
			"keep costume layers clearly separated",
			"ensure design language remains coherent",
		},
		Scope: "detailed",
	},
	"battle-action": {
		Key: "battle-action",
		Subjects: []string{
			"a decisive strike moment between two combatants",
			"a fast close-combat exchange with clear motion arcs",
			"an action keyframe where force direction is obvious",
		},
		Scenes: []string{
			"debris and sparks framing a diagonal action path",
			"foreground-to-background depth split with speed cues",
			"high-impact frame with dramatic collision lighting",
		},
		StyleNotes: []string{
			"preserve anatomy integrity under extreme poses",
			"keep motion clarity over visual noise",
			"shape a readable main hit point",
		},
		Scope: "balanced",
	},
	"slice-of-life": {
		Key: "slice-of-life",
		Subjects: []string{
			"a warm daily-life character interaction",
			"a quiet everyday moment with natural gestures",
			"a friendly domestic scene with subtle storytelling props",
		},
		Scenes: []string{
			"sunlit kitchen corner with practical objects",
			"small cafe window table scene",
			"residential street at late afternoon",
		},
		StyleNotes: []string{
			"favor emotional softness and believable body language",
			"keep composition comfortable and intimate",
			"maintain gentle color harmony",
		},
		Scope: "detailed",
	},
	"fantasy-epic": {
		Key: "fantasy-epic",
		Subjects: []string{
			"a fantasy hero overlooking a vast magical realm",
			"an adventurer standing before colossal ancient ruins",
			"a sorcerer confronting a sky-scale phenomenon",
		},
		Scenes: []string{
			"grand valley panorama with layered atmospheric depth",
			"floating architecture and distant mountain chains",
			"monumental scale shot with cinematic horizon sweep",
		},
		StyleNotes: []string{
			"sell epic scale through perspective hierarchy",
			"integrate magic motifs without cluttering focal path",
			"preserve rich tonal separation in the far distance",
		},
		Scope: "grand",
	},
	"cyberpunk-sci-fi": {
		Key: "cyberpunk-sci-fi",
		Subjects: []string{
			"a high-tech megacity narrative moment at night",
			"augmented pedestrians moving through neon transit layers",
			"future district intersection with multi-level transport",
		},
		Scenes: []string{
			"wet surfaces amplifying teal-magenta reflections",
			"deep avenue with stacked holographic signage",
			"dense city canyons fading into luminous haze",
		},
		StyleNotes: []string{
			"drive sci-fi believability with functional details",
			"keep noise controlled despite visual density",
			"maintain readable silhouette boundaries",
		},
		Scope: "grand",
	},
	"mecha-design": {
		Key: "mecha-design",
		Subjects: []string{
			"a next-gen mecha unit in three-quarter presentation",
			"a hard-surface robot concept with pilot scale marker",
			"a tactical mech frame showing modular armor zones",
		},
		Scenes: []string{
			"clean technical stage with neutral depth",
			"engineering platform with restrained environment detail",
			"design showcase frame emphasizing proportion logic",
		},
		StyleNotes: []string{
			"stress mechanical articulation and panel logic",
			"keep material assignment consistent",
			"avoid over-ornamentation that hurts readability",
		},
		Scope: "detailed",
	},
	"ghibli-warm-story": {
		Key: "ghibli-warm-story",
		Subjects: []string{
			"a whimsical countryside storytelling moment",
			"an inviting village path with gentle character presence",
			"a hand-painted warm world with organic architecture",
		},
		Scenes: []string{
			"golden-hour light passing through trees",
			"storybook-like wide composition with soft rhythm",
			"warm domestic exterior with painterly cloud layers",
		},
		StyleNotes: []string{
			"keep painterly textures lively and soft",
			"prioritize warmth and narrative comfort",
			"retain handcrafted atmosphere",
		},
		Scope: "balanced",
	},
	"surreal-dreamscape": {
		Key: "surreal-dreamscape",
		Subjects: []string{
			"an impossible architectural dream world",
			"floating symbolic objects over layered void spaces",
			"a dream logic environment with shifting scale",
		},
		Scenes: []string{
			"multi-plane composition with gravity-defying structures",
			"ethereal mist corridors and luminous portals",
			"fragmented horizon where objects overlap unrealistically",
		},
		StyleNotes: []string{
			"preserve surreal coherence through intentional focal anchors",
			"mix contrast and softness to imply dream tension",
			"avoid random chaos without structure",
		},
		Scope: "grand",
	},
	"minimal-flat-illustration": {
		Key: "minimal-flat-illustration",
		Subjects: []string{
			"a stylized anime-inspired scene reduced to essential shapes",
			"graphic character-environment interaction with minimal forms",
			"poster-like composition driven by color geometry",
		},
		Scenes: []string{
			"clean 3-5 color layout with strong negative space",
			"flat depth layering and bold shape rhythm",
			"highly simplified visual storytelling frame",
		},
		StyleNotes: []string{
			"enforce strict shape discipline",
			"keep edges crisp and hierarchy obvious",
			"avoid texture-heavy rendering",
		},
		Scope: "detailed",
	},
	"photoreal-portrait-reference": {
		Key: "photoreal-portrait-reference",
		Subjects: []string{
			"a photoreal head-and-shoulders portrait of a contemporary person",
			"a realistic portrait reference with natural expression and skin texture",
			"a high-fidelity face study suitable for portrait benchmarking",
		},
		Scenes: []string{
			"studio setup with neutral background and controlled key light",
			"window-side portrait with soft daylight falloff",
			"editorial portrait framing with subtle depth-of-field blur",
		},
		StyleNotes: []string{
			"focus on realistic skin pores, micro-contrast, and true-to-life lighting",
			"avoid anime stylization and keep facial proportions lifelike",
			"preserve texture realism in hair, eyelashes, and fabric",
		},
		Scope: "detailed",
	},
}

var defaultThemes = map[string]string{
	"character-portrait":           "hero identity card key visual",
	"ink-wash-character":           "traditional wuxia character poster",
	"anime-battle-clash":           "anime action showcase frame",
	"cyberpunk-streetscape":        "future city worldbuilding showcase",
	"watercolor-landscape":         "poetic nature scene illustration",
	"noir-cityscape":               "urban noir visual exploration",
	"mecha-hangar":                 "industrial sci-fi setting concept",
	"full-body-turnaround":         "character design turnaround board",
	"battle-action":                "combat choreography keyframe",
	"slice-of-life":                "cozy daily-life animation frame",
	"fantasy-epic":                 "magic realm cinematic matte",
	"cyberpunk-sci-fi":             "neon metropolis story moment",
	"mecha-design":                 "robot unit design sheet",
	"ghibli-warm-story":            "warm storybook countryside",
	"surreal-dreamscape":           "dream logic visual experiment",
	"minimal-flat-illustration":    "graphic minimal art direction board",
	"photoreal-portrait-reference": "realistic portrait benchmark reference",
}

var styleCategories = map[string]string{
	"fantasy-epic":                 "grand-scene",
	"cyberpunk-streetscape":        "grand-scene",
	"mecha-hangar":                 "grand-scene",
	"watercolor-landscape":         "grand-scene",
	"character-portrait":           "fine-detail",
	"full-body-turnaround":         "fine-detail",
	"photoreal-portrait-reference": "fine-detail",
	"ink-wash-character":           "abstract-art",
	"surreal-dreamscape":           "abstract-art",
	"minimal-flat-illustration":    "abstract-art",
}

var categoryInstructions = map[string]string{
	"grand-scene":  "Emphasize monumental scale, deep spatial layering, and cinematic environmental storytelling.",
	"fine-detail":  "Emphasize material realism, precise local details, and subtle texture transitions.",
	"abstract-art": "Emphasize artistic abstraction, symbolic composition, and intentional stylization.",
}

var categoryDescriptions = map[string]string{
	"grand-scene":  "monumental scale, deep spatial layering, cinematic environmental storytelling",
	"fine-detail":  "material realism, precise local detail, subtle texture transitions",
	"abstract-art": "artistic abstraction, symbolic composition, intentional stylization",
}

var subjectAnchors = []string{
	"celestial guardian",
	"urban courier",
	"arcane scholar",
	"desert engineer",
	"forest ranger",
	"street musician",
	"deep-sea explorer",
	"mountain cartographer",
	"clockwork artisan",
	"storm chaser",
	"lunar botanist",
	"retro pilot",
	"festival performer",
	"ruins archaeologist",
	"drift racer",
	"tea-house owner",
	"signal hacker",
	"museum conservator",
	"volcanic blacksmith",
	"ice-field researcher",
	"night market chef",
	"airship navigator",
	"temple caretaker",
	"bioluminescent diver",
}

var qualityFragments = []string{
	"high detail, coherent composition, clear focal hierarchy",
	"production-ready quality, clean structure, refined rendering",
	"strong readability, polished finish, balanced detail density",
}

var cameraVariants = []string{
	"cinematic framing",
	"storyboard-style framing",
	"dynamic lens perspective",
	"clear depth layering",
	"illustration-focused camera angle",
}

var moodVariants = []string{
	"strong visual storytelling",
	"emotionally readable scene intent",
	"clear narrative atmosphere",
	"high style coherence",
	"distinct art-direction identity",
}

var detailVariants = []string{
	"clean material rendering",
	"consistent edge quality",
	"well-structured focal hierarchy",
	"controlled texture density",
	"balanced detail distribution",
}

var displays = map[string]domain.StyleDisplay{
	"ink-wash-character":           {Title: "Ink Wash Character", Alt: "ink wash martial artist in misty mountains", StyleTag: "ink-wash"},
	"cyberpunk-streetscape":        {Title: "Cyberpunk Streetscape", Alt: "cyberpunk futuristic city street scene", StyleTag: "cyberpunk"},
	"anime-battle-clash":           {Title: "Anime Battle Clash", Alt: "anime battle clash with dynamic impact", StyleTag: "anime-action"},
	"watercolor-landscape":         {Title: "Watercolor Landscape", Alt: "watercolor natural landscape scene", StyleTag: "watercolor"},
	"noir-cityscape":               {Title: "Noir Cityscape", Alt: "neo-noir city alley atmosphere", StyleTag: "noir"},
	"mecha-hangar":                 {Title: "Mecha Hangar", Alt: "giant mecha in industrial hangar", StyleTag: "mecha"},
	"ghibli-warm-story":            {Title: "Warm Story Scene", Alt: "warm storybook countryside scene", StyleTag: "warm-story"},
	"surreal-dreamscape":           {Title: "Surreal Dreamscape", Alt: "surreal dream world with impossible architecture", StyleTag: "surreal"},
	"photoreal-portrait-reference": {Title: "Photoreal Portrait", Alt: "realistic portrait benchmark with natural skin texture", StyleTag: "photoreal-reference"},
}
