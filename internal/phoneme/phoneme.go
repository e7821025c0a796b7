package phoneme

// ArticulationPoint is the physical place in the vocal tract where a sound
// is produced (makhraj).
type ArticulationPoint string

const (
	ThroatDeep     ArticulationPoint = "throat_deep"
	ThroatMiddle   ArticulationPoint = "throat_middle"
	ThroatShallow  ArticulationPoint = "throat_shallow"
	TongueBack     ArticulationPoint = "tongue_back"
	TongueMiddle   ArticulationPoint = "tongue_middle"
	TongueEdge     ArticulationPoint = "tongue_edge"
	TongueTipUpper ArticulationPoint = "tongue_tip_upper"
	TongueTipTeeth ArticulationPoint = "tongue_tip_teeth"
	TongueTipGum   ArticulationPoint = "tongue_tip_gum"
	Lips           ArticulationPoint = "lips"
	LipTeeth       ArticulationPoint = "lip_teeth"
	Nasal          ArticulationPoint = "nasal"
)

// AllArticulationPoints returns the articulation points from the back of
// the throat to the lips.
func AllArticulationPoints() []ArticulationPoint {
	return []ArticulationPoint{
		ThroatDeep,
		ThroatMiddle,
		ThroatShallow,
		TongueBack,
		TongueMiddle,
		TongueEdge,
		TongueTipUpper,
		TongueTipTeeth,
		TongueTipGum,
		Lips,
		LipTeeth,
		Nasal,
	}
}

// ArticulationPointName returns the Arabic name of an articulation point.
func ArticulationPointName(p ArticulationPoint) string {
	switch p {
	case ThroatDeep:
		return "أقصى الحلق"
	case ThroatMiddle:
		return "وسط الحلق"
	case ThroatShallow:
		return "أدنى الحلق"
	case TongueBack:
		return "أقصى اللسان"
	case TongueMiddle:
		return "وسط اللسان"
	case TongueEdge:
		return "حافة اللسان"
	case TongueTipUpper:
		return "طرف اللسان مع أصول الثنايا"
	case TongueTipTeeth:
		return "طرف اللسان مع أطراف الثنايا"
	case TongueTipGum:
		return "طرف اللسان مع اللثة"
	case Lips:
		return "الشفتان"
	case LipTeeth:
		return "الشفة السفلى مع الثنايا العليا"
	case Nasal:
		return "الخيشوم"
	default:
		return string(p)
	}
}

// Characteristic is a phonetic feature of a phoneme.
type Characteristic string

const (
	Voiced      Characteristic = "voiced"
	Voiceless   Characteristic = "voiceless"
	Emphatic    Characteristic = "emphatic"
	NonEmphatic Characteristic = "non_emphatic"
	Stop        Characteristic = "stop"
	Fricative   Characteristic = "fricative"
	NasalSound  Characteristic = "nasal"
	Lateral     Characteristic = "lateral"
	Trill       Characteristic = "trill"
)

// Phoneme is a single Arabic consonant with its articulatory features.
type Phoneme struct {
	ID                      string
	Letter                  string
	Name                    string
	ArticulationPoint       ArticulationPoint
	ArticulationDescription string
	TrainingTip             string
	Characteristics         []Characteristic
	SimilarSounds           []string // letters, most confusable first
}

// Has reports whether the phoneme carries the given characteristic.
func (p Phoneme) Has(c Characteristic) bool {
	for _, pc := range p.Characteristics {
		if pc == c {
			return true
		}
	}
	return false
}

// IsEmphatic reports whether the phoneme is pronounced with tafkheem.
func (p Phoneme) IsEmphatic() bool {
	return p.Has(Emphatic)
}

// IsVoiced reports whether the phoneme is voiced.
func (p Phoneme) IsVoiced() bool {
	return p.Has(Voiced)
}
