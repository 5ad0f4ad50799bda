package models

// CourseTemplate is a prefilled course skeleton. It carries every field of a
// [CourseSheet] except the identifier, the date and the media list.
type CourseTemplate struct {
	Label      string
	Discipline *Discipline
	WarmUp     *string
	Drills     *string
	Techniques *string
	Sparring   *string
	Stretching *string
	Notes      *string
}

var templateOrder = []string{"striking", "lutte", "sol", "mma", "debutant"}

var courseTemplates = map[string]CourseTemplate{
	"striking": {
		Label:      "Cours Striking",
		Discipline: disciplinePtr(Striking),
		WarmUp:     StringPtr("- Shadow boxing 3 rounds\n- Burpees 3x10\n- Jump rope 10 minutes"),
		Drills:     StringPtr("- Jab-cross sur pattes d'ours\n- Low kicks alternés\n- Combinations 1-2-3-2"),
		Techniques: StringPtr("- Perfectionnement du jab\n- Travail des esquives\n- Contre sur middle kick"),
		Sparring:   StringPtr("- Sparring technique léger 3x2 minutes\n- Focus sur la distance et le timing"),
		Stretching: StringPtr("- Étirements des jambes\n- Assouplissement des hanches\n- Relaxation 5 minutes"),
	},
	"lutte": {
		Label:      "Cours Lutte",
		Discipline: disciplinePtr(Lutte),
		WarmUp:     StringPtr("- Échauffement articulaire\n- Roulades avant/arrière\n- Déplacements en position de lutte"),
		Drills:     StringPtr("- Pénétrations simples et doubles\n- Changements de niveau\n- Sprawls répétés"),
		Techniques: StringPtr("- Single leg takedown\n- Double leg defense\n- Travail du clinch"),
		Sparring:   StringPtr("- Sparring lutte 5x3 minutes\n- Départs debout uniquement"),
		Stretching: StringPtr("- Étirements du dos\n- Assouplissement des épaules\n- Relaxation"),
	},
	"sol": {
		Label:      "Cours Sol/Grappling",
		Discipline: disciplinePtr(Sol),
		WarmUp:     StringPtr("- Échauffement général\n- Exercices de mobilité\n- Drill de shrimping"),
		Drills:     StringPtr("- Passages de garde\n- Arm drag depuis la garde\n- Hip escapes"),
		Techniques: StringPtr("- Triangle choke depuis garde fermée\n- Kimura depuis side control\n- Sweep depuis half guard"),
		Sparring:   StringPtr("- Sparring au sol 6x5 minutes\n- Positions de départ variées"),
		Stretching: StringPtr("- Étirements complets\n- Relaxation et respiration"),
	},
	"mma": {
		Label:      "Cours MMA Complet",
		Discipline: disciplinePtr(MMA),
		WarmUp:     StringPtr("- Échauffement cardio complet\n- Shadow MMA 3 rounds\n- Exercices fonctionnels"),
		Drills:     StringPtr("- Transitions debout-sol\n- GnP depuis le top control\n- Défense des takedowns avec frappes"),
		Techniques: StringPtr("- Combos debout vers takedown\n- Travail contre la cage\n- Elbows et frappes au sol"),
		Sparring:   StringPtr("- Sparring MMA 4x5 minutes\n- Règles compétition"),
		Stretching: StringPtr("- Étirements complets\n- Récupération active\n- Ice bath optionnel"),
	},
	"debutant": {
		Label:      "Cours Débutant",
		WarmUp:     StringPtr("- Échauffement progressif\n- Mobilité articulaire\n- Cardio léger 10 minutes"),
		Drills:     StringPtr("- Mouvements de base\n- Exercices techniques simples\n- Coordination"),
		Techniques: StringPtr("- Introduction aux fondamentaux\n- Position de garde\n- Mouvements de base"),
		Sparring:   StringPtr("- Sparring technique supervisé\n- Intensité contrôlée\n- Focus apprentissage"),
		Stretching: StringPtr("- Étirements guidés\n- Retour au calme\n- Questions/réponses"),
		Notes:      StringPtr("Premier cours ou reprise"),
	},
}

// TemplateNames returns the template keys in declaration order.
func TemplateNames() []string {
	return append([]string(nil), templateOrder...)
}

// Template returns the template registered under key.
func Template(key string) (CourseTemplate, bool) {
	t, ok := courseTemplates[key]
	return t, ok
}

// TemplateLabel returns the display label of key, or key itself when unknown.
func TemplateLabel(key string) string {
	if t, ok := courseTemplates[key]; ok {
		return t.Label
	}
	return key
}

func disciplinePtr(d Discipline) *Discipline {
	return &d
}

// Field returns the template text for field f.
func (t CourseTemplate) Field(f SheetField) *string {
	switch f {
	case FieldWarmUp:
		return t.WarmUp
	case FieldDrills:
		return t.Drills
	case FieldTechniques:
		return t.Techniques
	case FieldSparring:
		return t.Sparring
	case FieldStretching:
		return t.Stretching
	case FieldNotes:
		return t.Notes
	default:
		return nil
	}
}
