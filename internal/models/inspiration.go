package models

// Passage is one piece of devotional content: original Arabic text, its
// Urdu translation, and a citation reference.
type Passage struct {
	Arabic string `json:"arabic"`
	Urdu   string `json:"urdu"`
	Ref    string `json:"ref"`
}

// Empty reports whether the passage carries no content at all.
func (p Passage) Empty() bool {
	return p.Arabic == "" && p.Urdu == ""
}

// DailyInspiration is the devotional pair shown once per calendar day:
// one Quranic verse and one Hadith.
type DailyInspiration struct {
	Ayah   Passage `json:"ayah"`
	Hadith Passage `json:"hadith"`
}
