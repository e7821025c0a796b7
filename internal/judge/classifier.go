package judge

import "github.com/abhisek/makhraj/internal/phoneme"

// ClassifyInput is a confused pair of letters.
type ClassifyInput struct {
	Target   string
	Selected string
}

// Classifier is a rule that names the feature a confused pair shares.
// Returns "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) ConfusionType
}

// DefaultClassifiers returns classifiers in priority order. A pair that
// shares an articulation point is reported as such even when it also
// differs only in voicing or emphasis.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&ArticulationClassifier{},
		&VoicingClassifier{},
		&EmphasisClassifier{},
	}
}

// RunClassifiers executes classifiers in order and returns the first match
// with the rule's name, or ConfusionOther when no rule applies.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ConfusionType, string) {
	for _, c := range classifiers {
		if ct := c.Classify(input); ct != "" {
			return ct, c.Name()
		}
	}
	return ConfusionOther, ""
}

// ArticulationClassifier matches pairs produced at the same place.
type ArticulationClassifier struct{}

func (c *ArticulationClassifier) Name() string { return "articulation" }

func (c *ArticulationClassifier) Classify(input *ClassifyInput) ConfusionType {
	if phoneme.SameArticulation(input.Target, input.Selected) {
		return ConfusionArticulation
	}
	return ""
}

// VoicingClassifier matches voiced/voiceless counterparts.
type VoicingClassifier struct{}

func (c *VoicingClassifier) Name() string { return "voicing" }

func (c *VoicingClassifier) Classify(input *ClassifyInput) ConfusionType {
	if phoneme.IsVoicingPair(input.Target, input.Selected) {
		return ConfusionVoicing
	}
	return ""
}

// EmphasisClassifier matches emphatic/plain counterparts.
type EmphasisClassifier struct{}

func (c *EmphasisClassifier) Name() string { return "emphasis" }

func (c *EmphasisClassifier) Classify(input *ClassifyInput) ConfusionType {
	if phoneme.IsEmphaticPair(input.Target, input.Selected) {
		return ConfusionEmphasis
	}
	return ""
}
